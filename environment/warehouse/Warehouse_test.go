package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWarehouse(t *testing.T, rows, cols int, seed uint64) *Warehouse {
	t.Helper()

	targets, err := NewUniformGoal(rows, cols, seed)
	require.NoError(t, err)

	w, err := New(rows, cols, targets)
	require.NoError(t, err)
	return w
}

// walk applies a sequence of actions, ignoring goal arrival
func walk(w *Warehouse, actions ...Action) {
	for _, a := range actions {
		w.Apply(a)
	}
}

func TestNewRejectsTooSmallGrids(t *testing.T) {
	targets, err := NewUniformGoal(4, 5, 0)
	require.NoError(t, err)

	_, err = New(1, 5, targets)
	assert.Error(t, err)

	_, err = New(4, 1, targets)
	assert.Error(t, err)

	_, err = NewUniformGoal(1, 5, 0)
	assert.Error(t, err)
}

func TestApplyMovesInterior(t *testing.T) {
	tests := []struct {
		action Action
		want   Position
	}{
		{Left, Position{1, 0}},
		{Down, Position{2, 1}},
		{Right, Position{1, 2}},
		{Up, Position{0, 1}},
	}

	for _, test := range tests {
		t.Run(test.action.String(), func(t *testing.T) {
			w := newTestWarehouse(t, 3, 3, 14)

			// Move the robot to the centre cell first
			walk(w, Down, Right)
			require.Equal(t, Position{1, 1}, w.Robot())

			w.Apply(test.action)
			assert.Equal(t, test.want, w.Robot())
		})
	}
}

func TestApplyClampsAtBoundaries(t *testing.T) {
	rows, cols := 4, 5

	tests := []struct {
		name   string
		corner []Action // moves placing the robot at the corner
		at     Position
	}{
		{"topLeft", nil, Position{0, 0}},
		{"topRight", []Action{Right, Right, Right, Right},
			Position{0, cols - 1}},
		{"bottomLeft", []Action{Down, Down, Down}, Position{rows - 1, 0}},
		{"bottomRight", []Action{Down, Down, Down, Right, Right, Right,
			Right}, Position{rows - 1, cols - 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for a := Left; a <= Up; a++ {
				w := newTestWarehouse(t, rows, cols, 14)
				walk(w, test.corner...)
				require.Equal(t, test.at, w.Robot())

				w.Apply(a)

				robot := w.Robot()
				assert.GreaterOrEqual(t, robot.Row, 0)
				assert.GreaterOrEqual(t, robot.Col, 0)
				assert.Less(t, robot.Row, rows)
				assert.Less(t, robot.Col, cols)
			}
		})
	}
}

func TestApplyPanicsOnIllegalAction(t *testing.T) {
	w := newTestWarehouse(t, 4, 5, 14)

	assert.Panics(t, func() { w.Apply(Action(4)) })
	assert.Panics(t, func() { w.Apply(Action(-1)) })
}

func TestResetPlacesTargetOffOrigin(t *testing.T) {
	w := newTestWarehouse(t, 4, 5, 37)

	for i := 0; i < 250; i++ {
		w.Reset()

		assert.Equal(t, Position{0, 0}, w.Robot())

		target := w.Target()
		assert.GreaterOrEqual(t, target.Row, 1)
		assert.GreaterOrEqual(t, target.Col, 1)
		assert.Less(t, target.Row, 4)
		assert.Less(t, target.Col, 5)
	}
}

func TestResetIsReproducibleGivenSeed(t *testing.T) {
	w1 := newTestWarehouse(t, 4, 5, 92)
	w2 := newTestWarehouse(t, 4, 5, 92)

	// Identically seeded warehouses draw identical target sequences
	for i := 0; i < 25; i++ {
		w1.Reset()
		w2.Reset()
		assert.Equal(t, w1.Target(), w2.Target())
	}

	// Reseeding replays the sequence from the start
	w1.Seed(92)
	w1.Reset()
	first := w1.Target()

	w1.Seed(92)
	w1.Reset()
	assert.Equal(t, first, w1.Target())
}

func TestApplyReturnsTrueIffAtTarget(t *testing.T) {
	w := newTestWarehouse(t, 6, 7, 5)
	target := w.Target()

	// Walk straight down, then straight right, to the target. The
	// robot only reaches the target cell on the very last move.
	var arrivals []bool
	for i := 0; i < target.Row; i++ {
		arrivals = append(arrivals, w.Apply(Down))
	}
	for i := 0; i < target.Col; i++ {
		arrivals = append(arrivals, w.Apply(Right))
	}

	for i, arrived := range arrivals[:len(arrivals)-1] {
		assert.False(t, arrived, "arrived at target on move %d", i)
	}
	assert.True(t, arrivals[len(arrivals)-1])
	assert.Equal(t, target, w.Robot())
}

func TestAtReportsTiles(t *testing.T) {
	w := newTestWarehouse(t, 4, 5, 5)
	target := w.Target()

	assert.Equal(t, Robot, w.At(0, 0))
	assert.Equal(t, Target, w.At(target.Row, target.Col))

	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			pos := Position{r, c}
			if pos == w.Robot() || pos == target {
				continue
			}
			assert.Equal(t, Floor, w.At(r, c))
		}
	}
}

func TestLastActionIsDisplayOnly(t *testing.T) {
	w := newTestWarehouse(t, 4, 5, 5)

	_, acted := w.LastAction()
	assert.False(t, acted)

	w.Apply(Right)
	last, acted := w.LastAction()
	assert.True(t, acted)
	assert.Equal(t, Right, last)

	w.Reset()
	_, acted = w.LastAction()
	assert.False(t, acted)
}

func TestActionAndTileLabels(t *testing.T) {
	assert.Equal(t, "LEFT", Left.String())
	assert.Equal(t, "DOWN", Down.String())
	assert.Equal(t, "RIGHT", Right.String())
	assert.Equal(t, "UP", Up.String())

	assert.Equal(t, "_", Floor.String())
	assert.Equal(t, "R", Robot.String())
	assert.Equal(t, "T", Target.String())
}
