package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gowarehouse/timestep"
	"github.com/samuelfneumann/gowarehouse/utils/floatutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over tabular action values.
//
// With probability ε a uniformly random action is selected; otherwise
// the greedy action is selected, with ties broken by the lowest action
// index. In evaluation mode the policy always selects the greedy
// action and consumes no randomness.
//
// EGreedy owns its random source, separate from any randomness in the
// environment, so seeding one never perturbs the other.
type EGreedy struct {
	table   *QTable
	epsilon float64
	eval    bool
	source  rand.Source
}

// NewEGreedy constructs a new EGreedy policy over the argument table,
// where e = epsilon is the probability with which a random action is
// selected and seed seeds action selection
func NewEGreedy(e float64, seed uint64, table *QTable) (*EGreedy, error) {
	if e < 0.0 || e > 1.0 {
		return nil, fmt.Errorf("newEGreedy: epsilon %v ∉ [0, 1]", e)
	}
	if table == nil {
		return nil, fmt.Errorf("newEGreedy: no table given")
	}

	return &EGreedy{table, e, false, rand.NewSource(seed)}, nil
}

// Table returns the action value table underlying the policy. Learners
// share this table so that their updates change the actions the policy
// chooses.
func (p *EGreedy) Table() *QTable {
	return p.table
}

// Epsilon returns the policy's current exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the policy's exploration rate, clipped to [0, 1] so
// the rate stays a probability no matter what schedule drives it
func (p *EGreedy) SetEpsilon(e float64) {
	p.epsilon = floatutils.Clip(e, 0.0, 1.0)
}

// Eval sets the policy to evaluation mode, under which the greedy
// action is always selected
func (p *EGreedy) Eval() {
	p.eval = true
}

// Train sets the policy to training mode
func (p *EGreedy) Train() {
	p.eval = false
}

// IsEval indicates whether the policy is in evaluation mode
func (p *EGreedy) IsEval() bool {
	return p.eval
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) *mat.VecDense {
	// Find the greedy action, lowest index winning ties
	greedyAction := p.table.GreedyAction(t.Observation)

	if p.eval || p.epsilon == 0.0 {
		return mat.NewVecDense(1, []float64{float64(greedyAction)})
	}

	// Calculate the ε probability of choosing any action at random
	numActions := p.table.Actions
	prob := p.epsilon / float64(numActions)
	actionProbabilities := make([]float64, numActions)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedyAction] += 1.0 - p.epsilon

	// Construct a categorical distribution over actions using the
	// action probabilities and sample an action
	dist := distuv.NewCategorical(actionProbabilities, p.source)
	action := mat.NewVecDense(1, []float64{dist.Rand()})

	return action
}
