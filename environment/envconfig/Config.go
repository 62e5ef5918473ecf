// Package envconfig provides configuration structs for configuring
// warehouse training and evaluation runs. Configurations in this
// package are JSON serializable.
package envconfig

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/gowarehouse/agent/tabular/qlearning"
	env "github.com/samuelfneumann/gowarehouse/environment"
	"github.com/samuelfneumann/gowarehouse/environment/warehouse"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
)

// RenderMode determines how a run is rendered
type RenderMode string

const (
	// RenderNone disables rendering entirely
	RenderNone RenderMode = ""

	// RenderHuman draws the warehouse floor to standard output after
	// every reset and step, capped at warehouse.DefaultFPS frames per
	// second
	RenderHuman RenderMode = "human"
)

// Config represents a specific configuration of a warehouse run.
// Invalid configurations abort a run before any training proceeds.
type Config struct {
	Rows     int
	Cols     int
	Episodes int

	Discount     float64
	Epsilon      float64
	LearningRate float64

	Seed       uint64
	RenderMode RenderMode
	Training   bool
}

// NewConfig returns a Config with the default warehouse grid and
// hyperparameters: a 4x5 grid trained for the argument number of
// episodes with α = 0.9, γ = 0.9, and ε annealing from 1 to 0.
func NewConfig(episodes int) Config {
	return Config{
		Rows:         4,
		Cols:         5,
		Episodes:     episodes,
		Discount:     0.9,
		Epsilon:      1.0,
		LearningRate: 0.9,
		Training:     true,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Rows < 2 || c.Cols < 2 {
		return fmt.Errorf("grid must be at least 2x2 to place a target, "+
			"got %dx%d", c.Rows, c.Cols)
	}
	if c.Episodes < 1 {
		return fmt.Errorf("episodes must be positive, got %d", c.Episodes)
	}
	if c.Discount < 0.0 || c.Discount > 1.0 {
		return fmt.Errorf("discount %v ∉ [0, 1]", c.Discount)
	}
	if c.Epsilon < 0.0 || c.Epsilon > 1.0 {
		return fmt.Errorf("epsilon %v ∉ [0, 1]", c.Epsilon)
	}
	if c.LearningRate <= 0.0 || c.LearningRate > 1.0 {
		return fmt.Errorf("learning rate %v ∉ (0, 1]", c.LearningRate)
	}
	if c.RenderMode != RenderNone && c.RenderMode != RenderHuman {
		return fmt.Errorf("no such render mode %q", c.RenderMode)
	}
	return nil
}

// CreateEnv returns the warehouse environment described by the Config
// along with the first timestep of the first episode. Target placement
// is seeded with the Config's seed.
func (c Config) CreateEnv() (env.Environment, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createEnv: invalid "+
			"config: %v", err)
	}

	targets, err := warehouse.NewUniformGoal(c.Rows, c.Cols, c.Seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createEnv: %v", err)
	}

	world, err := warehouse.New(c.Rows, c.Cols, targets)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createEnv: %v", err)
	}

	var renderer warehouse.Renderer
	if c.RenderMode == RenderHuman {
		renderer = warehouse.NewText(os.Stdout, warehouse.DefaultFPS)
	}

	return warehouse.NewEnv(world, warehouse.NewReachGoal(), c.Discount,
		renderer)
}

// CreateAgent returns the Q-learning agent described by the Config,
// acting on the argument environment. When the Config's Training flag
// is set, a fresh zero-initialized agent is created with the Config's
// hyperparameters and an exploration rate annealing to 0 over the
// configured episodes. Otherwise the table persisted at tableFile is
// loaded, validated against the environment's grid, and followed
// greedily with a frozen table.
func (c Config) CreateAgent(e env.Environment,
	tableFile string) (*qlearning.QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createAgent: invalid config: %v", err)
	}

	if c.Training {
		return qlearning.New(e, qlearning.Config{
			Epsilon:      c.Epsilon,
			LearningRate: c.LearningRate,
			EpsilonDecay: 1.0 / float64(c.Episodes),
		}, c.Seed)
	}

	q, err := qlearning.Load(e, qlearning.Config{
		Epsilon:      0.0,
		LearningRate: c.LearningRate,
	}, tableFile, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	q.Eval()

	return q, nil
}
