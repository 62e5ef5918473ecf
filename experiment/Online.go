package experiment

import (
	"github.com/samuelfneumann/gowarehouse/agent"
	env "github.com/samuelfneumann/gowarehouse/environment"
	"github.com/samuelfneumann/gowarehouse/experiment/tracker"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
	"github.com/samuelfneumann/gowarehouse/utils/progressbar"
)

const progressBarWidth int = 25

// Online is an Experiment that runs an agent online for a fixed number
// of episodes. Each episode runs from Reset until the environment
// reports a last timestep; after the configured episode count the
// experiment is done. No offline evaluation is performed.
//
// The entire run is a single-threaded, synchronous loop: the
// experiment drives the agent, the agent drives the environment, and
// nothing is shared across goroutines.
type Online struct {
	env.Environment
	agent.Agent
	maxEpisodes     int
	currentEpisodes int
	trackers        []tracker.Tracker
	bar             *progressbar.ManualProgressBar
}

// NewOnline creates and returns a new online experiment running agent
// a on environment e for the given number of episodes. The t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, episodes int,
	t []tracker.Tracker) *Online {
	bar := progressbar.NewManualProgressBar(progressBarWidth, episodes)
	return &Online{e, a, episodes, 0, t, bar}
}

// Register registers a tracker.Tracker with the Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment: the environment
// is reset, then actions are selected and taken until the episode
// ends. RunEpisode returns whether the experiment has finished.
func (o *Online) RunEpisode() bool {
	step := o.Environment.Reset()
	o.Agent.ObserveFirst(step)
	o.track(step)

	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _ = o.Environment.Step(action)

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and update the agent
		o.Agent.Observe(action, step)
		o.Agent.Step()
	}

	// Episode cleanup, e.g. exploration rate decay
	o.Agent.EndEpisode()

	o.currentEpisodes++
	return o.currentEpisodes >= o.maxEpisodes
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() {
	ended := false

	for !ended {
		ended = o.RunEpisode()
		o.bar.Increment()
		o.bar.Display()
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
