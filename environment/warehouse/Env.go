package warehouse

import (
	"fmt"

	env "github.com/samuelfneumann/gowarehouse/environment"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
	"gonum.org/v1/gonum/mat"
)

const (
	// ActionDims is the dimensionality of action vectors
	ActionDims int = 1

	// ObservationDims is the dimensionality of observation vectors:
	// robot row, robot col, target row, target col
	ObservationDims int = 4

	// Legal action bounds
	MinAction int = 0
	MaxAction int = 3
)

// Env presents a Warehouse as an environment.Environment so that
// interchangeable learning algorithms can drive the simulation without
// knowing its internals.
//
// Observations are 4-dimensional vectors holding the robot row and
// column followed by the target row and column. Each observation is a
// fresh snapshot constructed per call, never a reference into mutable
// simulation state.
//
// Actions are 1-dimensional and discrete in (0, 1, 2, 3):
//
//	Action	Meaning
//	  0		Move left
//	  1		Move down
//	  2		Move right
//	  3		Move up
//
// Moves that would leave the grid are absorbed at the boundary.
// Actions outside [0, 3] result in a panic.
//
// Env implements the environment.Environment interface.
type Env struct {
	env.Task
	world    *Warehouse
	discount float64
	renderer Renderer
	lastStep ts.TimeStep
}

// NewEnv creates a new Env wrapping the argument Warehouse with the
// argument task and discount. If r is non-nil, every Reset and Step
// renders the current floor state through it as a side effect. NewEnv
// returns the environment along with the first timestep of the first
// episode.
func NewEnv(w *Warehouse, t env.Task, discount float64,
	r Renderer) (*Env, ts.TimeStep, error) {
	if w == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: no warehouse given")
	}
	if t == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: no task given")
	}

	e := &Env{Task: t, world: w, discount: discount, renderer: r}
	firstStep := e.Reset()

	return e, firstStep, nil
}

// Reset resets the environment between episodes: the robot returns to
// the origin and a new target position is drawn. Reset returns the
// first timestep of the new episode.
func (e *Env) Reset() ts.TimeStep {
	e.world.Reset()

	startStep := ts.New(ts.First, 0, e.discount, e.observation(), 0)
	e.lastStep = startStep

	e.Render()
	return startStep
}

// Seed reseeds target placement so that episodes are reproducible.
// Exploration randomness is unaffected; agents own their own sources.
func (e *Env) Seed(seed uint64) {
	e.world.Seed(seed)
}

// Step takes one environmental step given action a and returns the
// next timestep along with a bool indicating whether the episode has
// ended. The reward of the returned timestep is GoalReward exactly
// when the action moved the robot onto the target, in which case the
// timestep is also the last of the episode. Step never truncates;
// see the wrappers package for step limits.
func (e *Env) Step(a *mat.VecDense) (ts.TimeStep, bool) {
	// Ensure action is 1-dimensional
	if a.Len() > ActionDims {
		panic("step: actions should be 1-dimensional")
	}

	// Ensure a legal action was selected
	action := int(a.AtVec(0))
	if action < MinAction || action > MaxAction {
		panic(fmt.Sprintf("step: illegal action %v ∉ [%d, %d]", action,
			MinAction, MaxAction))
	}

	e.world.Apply(Action(action))

	// Set up the next timestep
	nextObs := e.observation()
	reward := e.GetReward(e.lastStep.Observation, a, nextObs)
	nextStep := ts.New(ts.Mid, reward, e.discount, nextObs,
		e.lastStep.Number+1)

	// Check if the step is the last in the episode and adjust its
	// step type if necessary
	e.End(&nextStep)

	e.lastStep = nextStep

	e.Render()
	return nextStep, nextStep.Last()
}

// LastTimeStep returns the last timestep returned by Reset or Step
func (e *Env) LastTimeStep() ts.TimeStep {
	return e.lastStep
}

// Render forwards the current floor state to the configured Renderer.
// Render is a no-op when no Renderer is configured.
func (e *Env) Render() {
	if e.renderer != nil {
		e.renderer.Render(e.world)
	}
}

// DiscountSpec returns the discounting specification of the environment
func (e *Env) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{e.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

// ObservationSpec returns the observation specification of the
// environment. Each of the four components is bounded by the grid
// dimensions. The bounds describe conforming observations; they are
// not enforced on each runtime value.
func (e *Env) ObservationSpec() env.Spec {
	r, c := e.world.Dims()

	shape := mat.NewVecDense(ObservationDims, nil)
	lowerBound := mat.NewVecDense(ObservationDims, nil)
	upperBound := mat.NewVecDense(ObservationDims, []float64{
		float64(r - 1), float64(c - 1), float64(r - 1), float64(c - 1),
	})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// ActionSpec returns the action specification of the environment
func (e *Env) ActionSpec() env.Spec {
	shape := mat.NewVecDense(ActionDims, nil)
	lowerBound := mat.NewVecDense(ActionDims, []float64{float64(MinAction)})
	upperBound := mat.NewVecDense(ActionDims, []float64{float64(MaxAction)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// String returns a string representation of the environment
func (e *Env) String() string {
	return e.world.String()
}

// observation constructs a fresh observation snapshot from the current
// simulation state
func (e *Env) observation() *mat.VecDense {
	robot := e.world.Robot()
	target := e.world.Target()

	return mat.NewVecDense(ObservationDims, []float64{
		float64(robot.Row), float64(robot.Col),
		float64(target.Row), float64(target.Col),
	})
}
