// Package wrappers provides environments that wrap other environments
// to modify their behaviour
package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gowarehouse/environment"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
	"gonum.org/v1/gonum/mat"
)

// StepLimit wraps an environment and cuts episodes off after a fixed
// number of steps. Episodes ended this way are truncated, not
// terminated: the final TimeStep has EndType timestep.StepLimitReached
// so that consumers can distinguish a cutoff from reaching a terminal
// state.
//
// StepLimit implements the environment.Environment interface.
type StepLimit struct {
	environment.Environment
	ender environment.StepLimit
}

// NewStepLimit wraps the environment e so that episodes last at most
// episodeSteps steps
func NewStepLimit(e environment.Environment,
	episodeSteps int) (environment.Environment, error) {
	if episodeSteps <= 0 {
		return nil, fmt.Errorf("newStepLimit: episodeSteps must be "+
			"positive, got %d", episodeSteps)
	}

	return &StepLimit{e, environment.NewStepLimit(episodeSteps)}, nil
}

// Step takes one step in the wrapped environment, additionally ending
// the episode if the step limit has been reached
func (s *StepLimit) Step(a *mat.VecDense) (ts.TimeStep, bool) {
	step, done := s.Environment.Step(a)

	if !done && s.ender.End(&step) {
		done = true
	}

	return step, done
}
