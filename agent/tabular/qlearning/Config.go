package qlearning

import "fmt"

// Default hyperparameters
const (
	DefaultEpsilon      float64 = 1.0 // fully random behaviour at first
	DefaultLearningRate float64 = 0.9
)

// Config represents a configuration for the QLearning agent
type Config struct {
	// Epsilon is the initial exploration rate of the behaviour policy
	Epsilon float64

	// LearningRate is the step size α of the temporal difference
	// update
	LearningRate float64

	// EpsilonDecay is subtracted from the exploration rate after each
	// training episode, clipped so the rate never goes below 0. A
	// decay of 1/episodes anneals an initial rate of 1 to exactly 0
	// over a full run. Zero disables decay.
	EpsilonDecay float64
}

// NewConfig returns a Config with the default hyperparameters and an
// epsilon decay schedule annealing the exploration rate to 0 over the
// argument number of episodes
func NewConfig(episodes int) Config {
	return Config{
		Epsilon:      DefaultEpsilon,
		LearningRate: DefaultLearningRate,
		EpsilonDecay: 1.0 / float64(episodes),
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0.0 || c.Epsilon > 1.0 {
		return fmt.Errorf("epsilon %v ∉ [0, 1]", c.Epsilon)
	}
	if c.LearningRate <= 0.0 || c.LearningRate > 1.0 {
		return fmt.Errorf("learning rate %v ∉ (0, 1]", c.LearningRate)
	}
	if c.EpsilonDecay < 0.0 {
		return fmt.Errorf("epsilon decay %v cannot be negative",
			c.EpsilonDecay)
	}
	return nil
}
