// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"github.com/samuelfneumann/gowarehouse/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution over grid positions and samples
// positions for environments. Starters own their random source, so
// seeding a Starter never perturbs any other randomness in a run.
type Starter interface {
	Start() *mat.VecDense
	Seed(uint64)
}

// Ender determines when episodes end. An Ender inspects a TimeStep
// and, if the episode should end at that step, modifies the TimeStep's
// StepType to timestep.Last and records the reason with SetEnd().
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some
// environment. A Task determines how much reward each transition
// generates, which states are goal states, and when episodes end.
type Task interface {
	Ender
	GetReward(state, action, nextState mat.Vector) float64
	AtGoal(state mat.Matrix) bool

	// Min and Max return the minimum and maximum attainable rewards
	// on any single timestep
	Min() float64
	Max() float64

	RewardSpec() Spec
}

// Environment implements a simulated environment, which includes a
// Task to complete. Environments are stepped with 1-dimensional action
// vectors and return TimeSteps describing the transition. The boolean
// returned by Step indicates whether the returned TimeStep is the last
// in the episode.
type Environment interface {
	Task
	Reset() timestep.TimeStep
	Step(action *mat.VecDense) (timestep.TimeStep, bool)
	LastTimeStep() timestep.TimeStep
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
