package tracker

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/samuelfneumann/gowarehouse/timestep"
)

// EpisodeLength tracks and saves the number of steps taken in each
// episode of an experiment. Lengths are stored as float64 so that the
// saved series can be fed directly to downstream smoothing and
// reporting.
//
// Note that an episode must finish for this Tracker to record its
// data. If the last episode in an experiment does not finish, that
// episode's length will not be saved.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength Tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) Tracker {
	var t EpisodeLength
	t.filename = filename
	return &t
}

// Track tracks the episode lengths in an experiment. When this
// function is called with the last timestep in an episode, the episode
// length is cached for saving later. All other timesteps are ignored.
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Lengths returns the episode lengths recorded so far
func (e *EpisodeLength) Lengths() []float64 {
	return e.episodeLengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() {
	// Open the file to save to
	file, err := os.Create(e.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	// Encode and save the file
	en := gob.NewEncoder(file)
	if err = en.Encode(e.episodeLengths); err != nil {
		log.Fatalf("could not encode episode length data: %v", err)
	}
}
