// Package qlearning implements the tabular Q-Learning algorithm.
//
// A QLearning agent learns a dense table of action values with the
// one-step temporal difference update while behaving ε-greedily with
// respect to the table. Exploration follows a linear decay schedule:
// after each training episode the exploration rate drops by a fixed
// amount until it reaches 0, shifting the agent from exploration to
// exploitation over a run regardless of the rewards it receives.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/gowarehouse/agent"
	"github.com/samuelfneumann/gowarehouse/agent/tabular/policy"
	"github.com/samuelfneumann/gowarehouse/environment"
	"github.com/samuelfneumann/gowarehouse/utils/floatutils"
)

// QLearning implements the tabular Q-Learning algorithm. QLearning
// owns its action value table exclusively; environments never see it.
type QLearning struct {
	agent.Learner
	agent.Policy
	behaviour *policy.EGreedy
	decay     float64
	seed      uint64
}

// New creates a new QLearning agent for the argument environment with
// a zero-initialized action value table sized from the environment's
// observation and action specifications. The seed seeds action
// selection only; environment randomness is seeded separately.
func New(env environment.Environment, c Config,
	seed uint64) (*QLearning, error) {
	rows, cols, actions, err := tableShape(env)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	table, err := policy.NewQTable(rows, cols, actions)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	return NewFromTable(env, c, table, seed)
}

// NewFromTable creates a new QLearning agent using an existing action
// value table, usually one loaded from disk. The table shape must
// match the argument environment's grid dimensions; a mismatch is a
// configuration error and no agent is created.
func NewFromTable(env environment.Environment, c Config,
	table *policy.QTable, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newFromTable: invalid config: %v", err)
	}

	rows, cols, actions, err := tableShape(env)
	if err != nil {
		return nil, fmt.Errorf("newFromTable: %v", err)
	}
	if !table.Matches(rows, cols, actions) {
		return nil, fmt.Errorf("newFromTable: table shape (%d, %d, %d) "+
			"does not match environment shape (%d, %d, %d)", table.Rows,
			table.Cols, table.Actions, rows, cols, actions)
	}

	behaviour, err := policy.NewEGreedy(c.Epsilon, seed, table)
	if err != nil {
		return nil, fmt.Errorf("newFromTable: %v", err)
	}
	learner := NewQLearner(table, c.LearningRate)

	return &QLearning{learner, behaviour, behaviour, c.EpsilonDecay,
		seed}, nil
}

// Load creates a new QLearning agent from an action value table
// persisted with Save. Loading a table whose shape does not match the
// argument environment fails before any training or evaluation can
// proceed.
func Load(env environment.Environment, c Config, filename string,
	seed uint64) (*QLearning, error) {
	table, err := policy.Load(filename)
	if err != nil {
		return nil, fmt.Errorf("load: %v", err)
	}

	return NewFromTable(env, c, table, seed)
}

// Save persists the agent's action value table to the file at filename
func (q *QLearning) Save(filename string) error {
	return q.behaviour.Table().Save(filename)
}

// Table returns the agent's action value table
func (q *QLearning) Table() *policy.QTable {
	return q.behaviour.Table()
}

// Epsilon returns the current exploration rate of the behaviour policy
func (q *QLearning) Epsilon() float64 {
	return q.behaviour.Epsilon()
}

// Step updates the action value table for the last observed
// transition. In evaluation mode the table is frozen and Step is a
// no-op, so evaluating a loaded table never changes the behaviour it
// was persisted with.
func (q *QLearning) Step() {
	if q.IsEval() {
		return
	}
	q.Learner.Step()
}

// EndEpisode decays the exploration rate at the end of each training
// episode. The rate decreases linearly and never goes below 0. In
// evaluation mode the rate is left untouched.
func (q *QLearning) EndEpisode() {
	q.Learner.EndEpisode()

	if !q.IsEval() {
		q.behaviour.SetEpsilon(floatutils.Max(q.behaviour.Epsilon()-q.decay,
			0.0))
	}
}

// tableShape computes the action value table shape implied by an
// environment's observation and action specifications
func tableShape(env environment.Environment) (rows, cols,
	actions int, err error) {
	actionSpec := env.ActionSpec()
	if actionSpec.Shape.Len() != 1 {
		return 0, 0, 0, fmt.Errorf("actions must be 1-dimensional")
	}
	if actionSpec.Cardinality != environment.Discrete {
		return 0, 0, 0, fmt.Errorf("actions must be discrete")
	}

	obsSpec := env.ObservationSpec()
	if obsSpec.Shape.Len() != 4 {
		return 0, 0, 0, fmt.Errorf("observations must be 4-dimensional "+
			"(robot row, robot col, target row, target col), got %d",
			obsSpec.Shape.Len())
	}

	rows = int(obsSpec.UpperBound.AtVec(0)) + 1
	cols = int(obsSpec.UpperBound.AtVec(1)) + 1
	actions = int(actionSpec.UpperBound.AtVec(0)) + 1
	return rows, cols, actions, nil
}
