// Package policy implements policies over tabular action values
package policy

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/samuelfneumann/gowarehouse/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// QTable stores action values for a warehouse gridworld as a dense
// 5-dimensional array indexed by (robot row, robot col, target row,
// target col, action) and flattened into a single backing slice in
// row-major order. All values start at zero.
//
// The fields are exported only so the table can be gob encoded; use
// the accessor methods for all reads and writes.
type QTable struct {
	Rows    int
	Cols    int
	Actions int
	Values  []float64
}

// NewQTable returns a new zero-initialized QTable for a grid with r
// rows and c columns and the given number of actions
func NewQTable(r, c, actions int) (*QTable, error) {
	if r < 1 || c < 1 || actions < 1 {
		return nil, fmt.Errorf("newQTable: non-positive shape "+
			"(%d, %d, %d)", r, c, actions)
	}

	values := make([]float64, r*c*r*c*actions)
	return &QTable{r, c, actions, values}, nil
}

// Matches returns whether the table was built for a grid with r rows,
// c columns, and the given number of actions
func (q *QTable) Matches(r, c, actions int) bool {
	return q.Rows == r && q.Cols == c && q.Actions == actions
}

// index flattens an observation-action pair into the backing slice.
// Observations hold the robot row and column followed by the target
// row and column.
func (q *QTable) index(obs mat.Vector, action int) int {
	i := int(obs.AtVec(0))
	i = i*q.Cols + int(obs.AtVec(1))
	i = i*q.Rows + int(obs.AtVec(2))
	i = i*q.Cols + int(obs.AtVec(3))
	return i*q.Actions + action
}

// At returns the value of taking the argument action in the state
// described by the argument observation
func (q *QTable) At(obs mat.Vector, action int) float64 {
	return q.Values[q.index(obs, action)]
}

// Set sets the value of taking the argument action in the state
// described by the argument observation
func (q *QTable) Set(obs mat.Vector, action int, value float64) {
	q.Values[q.index(obs, action)] = value
}

// ActionValues returns the values of all actions in the state
// described by the argument observation. The returned slice is a view
// into the table, not a copy.
func (q *QTable) ActionValues(obs mat.Vector) []float64 {
	base := q.index(obs, 0)
	return q.Values[base : base+q.Actions]
}

// GreedyAction returns the action with the highest value in the state
// described by the argument observation. Ties are broken by the lowest
// action index so that greedy selection is deterministic.
func (q *QTable) GreedyAction(obs mat.Vector) int {
	_, indices := floatutils.MaxSlice(q.ActionValues(obs))
	return indices[0]
}

// MaxValue returns the highest action value in the state described by
// the argument observation
func (q *QTable) MaxValue(obs mat.Vector) float64 {
	max, _ := floatutils.MaxSlice(q.ActionValues(obs))
	return max
}

// Save serializes the table, shape and values, to the file at filename
func (q *QTable) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create file: %v", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(q); err != nil {
		return fmt.Errorf("save: could not encode table: %v", err)
	}
	return nil
}

// Load reads a QTable previously written by Save from the file at
// filename. The loaded values round-trip exactly. Load validates that
// the stored values match the stored shape; validating the shape
// against a particular grid is the caller's responsibility.
func Load(filename string) (*QTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load: could not open file: %v", err)
	}
	defer file.Close()

	var q QTable
	if err := gob.NewDecoder(file).Decode(&q); err != nil {
		return nil, fmt.Errorf("load: could not decode table: %v", err)
	}

	if want := q.Rows * q.Cols * q.Rows * q.Cols * q.Actions; len(q.Values) != want {
		return nil, fmt.Errorf("load: table shape (%d, %d, %d, %d, %d) "+
			"does not match %d stored values", q.Rows, q.Cols, q.Rows,
			q.Cols, q.Actions, len(q.Values))
	}

	return &q, nil
}
