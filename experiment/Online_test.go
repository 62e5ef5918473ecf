package experiment

import (
	"testing"

	"github.com/samuelfneumann/gowarehouse/agent/tabular/qlearning"
	"github.com/samuelfneumann/gowarehouse/environment/warehouse"
	"github.com/samuelfneumann/gowarehouse/experiment/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExperimentEnv(t *testing.T, seed uint64) *warehouse.Env {
	t.Helper()

	targets, err := warehouse.NewUniformGoal(4, 5, seed)
	require.NoError(t, err)

	world, err := warehouse.New(4, 5, targets)
	require.NoError(t, err)

	e, _, err := warehouse.NewEnv(world, warehouse.NewReachGoal(), 0.9, nil)
	require.NoError(t, err)
	return e
}

func TestRunTracksEveryEpisode(t *testing.T) {
	const episodes = 25

	e := newExperimentEnv(t, 0)
	q, err := qlearning.New(e, qlearning.NewConfig(episodes), 1)
	require.NoError(t, err)

	lengths := tracker.NewEpisodeLength("unused").(*tracker.EpisodeLength)
	returns := tracker.NewReturn("unused").(*tracker.Return)
	exp := NewOnline(e, q, episodes, []tracker.Tracker{lengths, returns})

	exp.Run()

	require.Len(t, lengths.Lengths(), episodes)
	for _, l := range lengths.Lengths() {
		assert.GreaterOrEqual(t, l, 1.0)
	}

	// Every episode ends at the target, earning exactly the goal
	// reward once
	require.Len(t, returns.Returns(), episodes)
	for _, r := range returns.Returns() {
		assert.Equal(t, warehouse.GoalReward, r)
	}
}

func TestRunEpisodeReportsCompletion(t *testing.T) {
	e := newExperimentEnv(t, 3)
	q, err := qlearning.New(e, qlearning.NewConfig(2), 4)
	require.NoError(t, err)

	exp := NewOnline(e, q, 2, nil)

	assert.False(t, exp.RunEpisode())
	assert.True(t, exp.RunEpisode())
}

func TestRunDecaysExplorationOverTheExperiment(t *testing.T) {
	const episodes = 16

	e := newExperimentEnv(t, 7)
	q, err := qlearning.New(e, qlearning.NewConfig(episodes), 8)
	require.NoError(t, err)

	NewOnline(e, q, episodes, nil).Run()

	assert.Equal(t, 0.0, q.Epsilon())
}

func TestRegisteredTrackerFollowsTheEnvironment(t *testing.T) {
	const episodes = 5

	e := newExperimentEnv(t, 11)
	q, err := qlearning.New(e, qlearning.NewConfig(episodes), 12)
	require.NoError(t, err)

	lengths := tracker.NewEpisodeLength("unused").(*tracker.EpisodeLength)
	registered := tracker.Register(lengths, e)

	NewOnline(e, q, episodes, []tracker.Tracker{registered}).Run()

	assert.Len(t, lengths.Lengths(), episodes)
}

// Over a full training run the agent should find shorter routes to the
// target than its early random behaviour produced
func TestTrainingShortensEpisodes(t *testing.T) {
	const episodes = 300

	e := newExperimentEnv(t, 13)
	q, err := qlearning.New(e, qlearning.NewConfig(episodes), 14)
	require.NoError(t, err)

	lengths := tracker.NewEpisodeLength("unused").(*tracker.EpisodeLength)
	NewOnline(e, q, episodes, []tracker.Tracker{lengths}).Run()

	series := lengths.Lengths()
	require.Len(t, series, episodes)

	mean := func(values []float64) float64 {
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}

	early := mean(series[:50])
	late := mean(series[episodes-50:])
	assert.Less(t, late, early)

	// Greedy behaviour on a 4x5 grid needs at most 7 steps, so fully
	// annealed episodes should be short on average
	assert.Less(t, late, 10.0)
}
