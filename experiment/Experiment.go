// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/samuelfneumann/gowarehouse/experiment/tracker"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
)

// Experiment outlines structs that can run experiments. An experiment
// drives an agent through an environment episode by episode, sending
// every TimeStep to registered tracker.Trackers, which cache data in
// RAM until Save() writes it to disk. Run() runs all episodes to
// completion; RunEpisode() runs a single episode and reports whether
// the experiment has finished.
type Experiment interface {
	Run()
	RunEpisode() bool

	// Save all tracked data to disk
	Save()

	// Register adds a new tracker.Tracker to the (possibly already
	// running) experiment. Useful to track data only after a
	// specified event.
	Register(t tracker.Tracker)

	// track sends the current timestep to all registered Trackers
	track(ts.TimeStep)
}
