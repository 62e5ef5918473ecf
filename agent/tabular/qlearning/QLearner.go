package qlearning

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/gowarehouse/agent/tabular/policy"
	"github.com/samuelfneumann/gowarehouse/timestep"
	"gonum.org/v1/gonum/mat"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm: the one-step temporal difference update
//
//	Q(s, a) ← Q(s, a) + α·(r + γ·max_a' Q(s', a') − Q(s, a))
//
// with no eligibility traces and no experience replay. The discount γ
// is carried on each TimeStep by the environment.
type QLearner struct {
	table        *policy.QTable
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
}

// NewQLearner creates a new QLearner updating the argument table
func NewQLearner(table *policy.QTable, learningRate float64) *QLearner {
	return &QLearner{table: table, learningRate: learningRate}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearner) Observe(action mat.Vector, nextStep timestep.TimeStep) {
	if action.Len() != 1 {
		fmt.Fprintf(os.Stderr, "Warning: value-based methods should not "+
			"have multi-dimensional actions (action dim = %d)", action.Len())
	}
	q.step = q.nextStep
	q.action = int(action.AtVec(0))
	q.nextStep = nextStep
}

// Step updates the action value table for the last observed transition
func (q *QLearner) Step() {
	if q.step.Observation == nil {
		// No transition observed yet this episode
		return
	}

	currentEstimate := q.table.At(q.step.Observation, q.action)
	q.table.Set(q.step.Observation, q.action,
		currentEstimate+q.learningRate*q.tdError())
}

// TdError returns the temporal difference error of the last observed
// transition
func (q *QLearner) TdError() float64 {
	return q.tdError()
}

// EndEpisode performs cleanup at the end of an episode
func (q *QLearner) EndEpisode() {}

func (q *QLearner) tdError() float64 {
	target := q.nextStep.Reward +
		q.nextStep.Discount*q.table.MaxValue(q.nextStep.Observation)
	return target - q.table.At(q.step.Observation, q.action)
}
