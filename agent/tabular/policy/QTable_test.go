package policy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func obs(rr, rc, tr, tc int) mat.Vector {
	return mat.NewVecDense(4, []float64{
		float64(rr), float64(rc), float64(tr), float64(tc),
	})
}

func TestNewQTableRejectsNonPositiveShapes(t *testing.T) {
	for _, shape := range [][3]int{{0, 5, 4}, {4, 0, 4}, {4, 5, 0}} {
		_, err := NewQTable(shape[0], shape[1], shape[2])
		assert.Error(t, err)
	}
}

func TestQTableStartsAtZero(t *testing.T) {
	q, err := NewQTable(4, 5, 4)
	require.NoError(t, err)

	require.Len(t, q.Values, 4*5*4*5*4)
	for rr := 0; rr < 4; rr++ {
		for a := 0; a < 4; a++ {
			assert.Zero(t, q.At(obs(rr, 0, 3, 4), a))
		}
	}
}

// Every distinct observation-action pair must map to a distinct cell
func TestQTableIndexingHasNoCollisions(t *testing.T) {
	const rows, cols, actions = 3, 4, 4

	q, err := NewQTable(rows, cols, actions)
	require.NoError(t, err)

	value := 1.0
	for rr := 0; rr < rows; rr++ {
		for rc := 0; rc < cols; rc++ {
			for tr := 0; tr < rows; tr++ {
				for tc := 0; tc < cols; tc++ {
					for a := 0; a < actions; a++ {
						q.Set(obs(rr, rc, tr, tc), a, value)
						value++
					}
				}
			}
		}
	}

	value = 1.0
	for rr := 0; rr < rows; rr++ {
		for rc := 0; rc < cols; rc++ {
			for tr := 0; tr < rows; tr++ {
				for tc := 0; tc < cols; tc++ {
					for a := 0; a < actions; a++ {
						require.Equal(t, value, q.At(obs(rr, rc, tr, tc), a))
						value++
					}
				}
			}
		}
	}
}

func TestQTableActionValuesIsAView(t *testing.T) {
	q, err := NewQTable(2, 2, 4)
	require.NoError(t, err)

	state := obs(1, 0, 1, 1)
	values := q.ActionValues(state)
	require.Len(t, values, 4)

	q.Set(state, 2, 7.5)
	assert.Equal(t, 7.5, values[2])
}

func TestGreedyActionBreaksTiesByLowestIndex(t *testing.T) {
	q, err := NewQTable(2, 2, 4)
	require.NoError(t, err)

	state := obs(0, 1, 1, 1)

	// All zero: action 0 wins
	assert.Equal(t, 0, q.GreedyAction(state))

	// Tie between actions 1 and 3: action 1 wins
	q.Set(state, 1, 2.0)
	q.Set(state, 3, 2.0)
	assert.Equal(t, 1, q.GreedyAction(state))
	assert.Equal(t, 2.0, q.MaxValue(state))

	q.Set(state, 3, 3.0)
	assert.Equal(t, 3, q.GreedyAction(state))
	assert.Equal(t, 3.0, q.MaxValue(state))
}

func TestQTableSaveLoadRoundTrip(t *testing.T) {
	q, err := NewQTable(4, 5, 4)
	require.NoError(t, err)

	q.Set(obs(0, 0, 3, 4), 2, 0.81)
	q.Set(obs(3, 4, 3, 4), 1, -1.25)
	q.Set(obs(2, 2, 1, 1), 0, 1e-9)

	filename := filepath.Join(t.TempDir(), "qtable.bin")
	require.NoError(t, q.Save(filename))

	got, err := Load(filename)
	require.NoError(t, err)

	assert.True(t, got.Matches(4, 5, 4))
	assert.Equal(t, q.Values, got.Values)
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-table.bin"))
	assert.Error(t, err)
}

func TestLoadRejectsInconsistentTables(t *testing.T) {
	q, err := NewQTable(4, 5, 4)
	require.NoError(t, err)

	// Claim a different shape than the stored values describe
	q.Rows = 5

	filename := filepath.Join(t.TempDir(), "qtable.bin")
	require.NoError(t, q.Save(filename))

	_, err = Load(filename)
	assert.Error(t, err)
}
