// Package warehouse implements the warehouse robot gridworld
// environment. A robot works on a rectangular grid of floor tiles with
// a single target cell placed randomly each episode. The robot always
// starts in the top-left corner and must navigate to the target.
package warehouse

import (
	"fmt"

	"github.com/samuelfneumann/gowarehouse/environment"
)

// Action enumerates the moves the robot can take. The integer values
// of the enumeration are the stable encoding used at the environment
// boundary: actions arrive as vectors holding a value in [0, 3].
type Action int

const (
	Left Action = iota
	Down
	Right
	Up
)

// NumActions is the size of the action enumeration
const NumActions int = 4

func (a Action) String() string {
	switch a {
	case Left:
		return "LEFT"
	case Down:
		return "DOWN"
	case Right:
		return "RIGHT"
	case Up:
		return "UP"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// GridTile enumerates what can occupy a cell of the warehouse floor.
// The String method returns the one-letter label used when rendering
// the floor to a console.
type GridTile int

const (
	Floor GridTile = iota
	Robot
	Target
)

func (g GridTile) String() string {
	switch g {
	case Robot:
		return "R"
	case Target:
		return "T"
	}
	return "_"
}

// Position is a cell of the grid, 0-indexed from the top-left corner.
// Positions are plain values compared by value; the robot and target
// positions never alias each other.
type Position struct {
	Row, Col int
}

// Warehouse implements the warehouse floor simulation: grid geometry,
// the robot position, the target position, and the deterministic
// transition function. It performs no I/O and knows nothing about
// rewards, episodes, or rendering.
type Warehouse struct {
	rows, cols int
	robot      Position
	target     Position
	targets    environment.Starter
	lastAction Action
	acted      bool
}

// New returns a new Warehouse with r rows and c columns whose target
// positions are drawn from the targets Starter. Both dimensions must
// be at least 2 so the target has room to be placed off the robot's
// starting row and column.
func New(r, c int, targets environment.Starter) (*Warehouse, error) {
	if r < 2 || c < 2 {
		return nil, fmt.Errorf("new: grid must be at least 2x2 to place "+
			"a target, got %dx%d", r, c)
	}

	w := &Warehouse{rows: r, cols: c, targets: targets}
	w.Reset()
	return w, nil
}

// Dims gets the rows and columns of the Warehouse
func (w *Warehouse) Dims() (r, c int) {
	return w.rows, w.cols
}

// Robot returns the current robot position
func (w *Warehouse) Robot() Position {
	return w.robot
}

// Target returns the current target position
func (w *Warehouse) Target() Position {
	return w.target
}

// LastAction returns the last action applied to the Warehouse and
// whether any action has been applied since the last Reset. The last
// action exists for display only and has no effect on transitions.
func (w *Warehouse) LastAction() (Action, bool) {
	return w.lastAction, w.acted
}

// At returns the tile occupying cell (r, c). When the robot stands on
// the target cell the robot is reported, matching how the floor is
// drawn.
func (w *Warehouse) At(r, c int) GridTile {
	pos := Position{r, c}
	switch {
	case pos == w.robot:
		return Robot
	case pos == w.target:
		return Target
	}
	return Floor
}

// Reset places the robot back at the origin and draws a fresh target
// position from the Warehouse's Starter.
func (w *Warehouse) Reset() {
	w.robot = Position{0, 0}

	target := w.targets.Start()
	w.target = Position{int(target.AtVec(0)), int(target.AtVec(1))}
	w.acted = false
}

// Seed reseeds the target position Starter so that subsequent Resets
// draw a reproducible sequence of target positions. Seeding target
// placement does not perturb any other random source in a run.
func (w *Warehouse) Seed(seed uint64) {
	w.targets.Seed(seed)
}

// Apply moves the robot one cell in the direction of action a, clamped
// at the grid boundaries: an action that would leave the grid leaves
// the robot where it stands rather than failing. Apply returns whether
// the robot occupies the target cell after the move.
func (w *Warehouse) Apply(a Action) bool {
	w.lastAction = a
	w.acted = true

	switch a {
	case Left:
		if w.robot.Col > 0 {
			w.robot.Col--
		}

	case Down:
		if w.robot.Row < w.rows-1 {
			w.robot.Row++
		}

	case Right:
		if w.robot.Col < w.cols-1 {
			w.robot.Col++
		}

	case Up:
		if w.robot.Row > 0 {
			w.robot.Row--
		}

	default:
		panic(fmt.Sprintf("apply: illegal action %v ∉ [0, %d)", int(a),
			NumActions))
	}

	return w.robot == w.target
}

// String returns a string representation of the Warehouse
func (w *Warehouse) String() string {
	str := "Warehouse | Robot: (%d, %d)  |  Target: (%d, %d)  |  " +
		"Bounds: (%d, %d)"
	return fmt.Sprintf(str, w.robot.Row, w.robot.Col, w.target.Row,
		w.target.Col, w.rows, w.cols)
}
