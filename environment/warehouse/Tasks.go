package warehouse

import (
	"github.com/samuelfneumann/gowarehouse/environment"
	"github.com/samuelfneumann/gowarehouse/timestep"
	"gonum.org/v1/gonum/mat"
)

const (
	// GoalReward is the reward for the action which moves the robot
	// onto the target cell
	GoalReward float64 = 1.0

	// StepReward is the reward for every other action
	StepReward float64 = 0.0
)

// ReachGoal implements the task of navigating the robot to the target
// cell. Rewards are 0 on every timestep and 1 for the action which
// transitions the robot onto the target, at which point the episode
// ends.
//
// ReachGoal reads the target position out of observations, so it holds
// no state of its own and never aliases the Warehouse's internals.
type ReachGoal struct {
	goalReward float64
	stepReward float64
}

// NewReachGoal creates and returns a new ReachGoal task
func NewReachGoal() *ReachGoal {
	return &ReachGoal{GoalReward, StepReward}
}

// AtGoal returns whether the argument observation is a goal state,
// that is, whether the robot position equals the target position
func (g *ReachGoal) AtGoal(state mat.Matrix) bool {
	obs := state.(mat.Vector)
	return obs.AtVec(0) == obs.AtVec(2) && obs.AtVec(1) == obs.AtVec(3)
}

// GetReward returns the reward for a given state and action resulting
// in a given next state. The reward is GoalReward exactly when the
// next state has the robot on the target cell and StepReward otherwise.
func (g *ReachGoal) GetReward(state, _, nextState mat.Vector) float64 {
	if g.AtGoal(nextState) {
		return g.goalReward
	}
	return g.stepReward
}

// Min returns the minimum attainable reward over all timesteps
func (g *ReachGoal) Min() float64 { return g.stepReward }

// Max returns the maximum attainable reward over all timesteps
func (g *ReachGoal) Max() float64 { return g.goalReward }

// RewardSpec returns the reward specification of the Task
func (g *ReachGoal) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{g.Min()})
	upperBound := mat.NewVecDense(1, []float64{g.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Discrete)
}

// End determines if a timestep is the last in the episode. If so, it
// changes the TimeStep's StepType to timestep.Last and records that a
// terminal state was reached. The task itself never truncates
// episodes; a step cap belongs to a wrapping environment.
func (g *ReachGoal) End(t *timestep.TimeStep) bool {
	if g.AtGoal(t.Observation) {
		t.StepType = timestep.Last
		t.SetEnd(timestep.TerminalStateReached)
		return true
	}
	return false
}
