package tracker

import (
	"github.com/samuelfneumann/gowarehouse/environment"
	"github.com/samuelfneumann/gowarehouse/timestep"
)

// registeredTracker registers an Environment with some Tracker so that
// the Tracker tracks data from the registered Environment only.
// registeredTracker itself is a Tracker.
//
// The Track() and Save() methods call those of the embedded Tracker,
// except that Track() uses the most recent TimeStep of the registered
// Environment and ignores its argument. This is useful when an
// experiment runs on an environment wrapper but the data of the
// wrapped environment is what should be tracked.
type registeredTracker struct {
	Tracker
	env environment.Environment
}

// Register registers a new Tracker with an Environment, to track data
// from the registered Environment only. Register returns a copy of the
// argument Tracker that is registered with the argument Environment.
//
// Note: the underlying concrete type of the registered Tracker is lost
// when registering an Environment with a Tracker.
func Register(t Tracker, env environment.Environment) Tracker {
	return &registeredTracker{t, env}
}

// Track calls Track() on the embedded Tracker using the most recent
// TimeStep from the registered Environment.
//
// The TimeStep argument to this function is completely ignored and is
// only there so that Register follows the Tracker interface.
func (r *registeredTracker) Track(timestep.TimeStep) {
	step := r.env.LastTimeStep()
	r.Tracker.Track(step)
}
