package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/samuelfneumann/gowarehouse/environment/envconfig"
	"github.com/samuelfneumann/gowarehouse/experiment"
	"github.com/samuelfneumann/gowarehouse/experiment/report"
	"github.com/samuelfneumann/gowarehouse/experiment/tracker"
)

func main() {
	var (
		rows     = flag.Int("rows", 4, "warehouse grid rows")
		cols     = flag.Int("cols", 5, "warehouse grid columns")
		episodes = flag.Int("episodes", 1000, "number of episodes to run")
		seed     = flag.Uint64("seed", 0, "seed for target placement and "+
			"exploration")
		train = flag.Bool("train", true, "train a new table; if false, "+
			"evaluate the persisted table greedily")
		render    = flag.Bool("render", false, "render the floor each step")
		tableFile = flag.String("table", "warehouse_solution.bin",
			"action value table artifact")
		dataFile = flag.String("data", "warehouse_steps.bin",
			"steps-per-episode artifact")
		plotFile = flag.String("plot", "warehouse_solution.png",
			"steps-per-episode chart")
	)
	flag.Parse()

	// Configure the run; an invalid configuration aborts before any
	// training proceeds
	conf := envconfig.NewConfig(*episodes)
	conf.Rows = *rows
	conf.Cols = *cols
	conf.Seed = *seed
	conf.Training = *train
	if *render {
		conf.RenderMode = envconfig.RenderHuman
	}

	e, _, err := conf.CreateEnv()
	if err != nil {
		log.Fatal(err)
	}

	// Create the learning algorithm. When evaluating, the persisted
	// table is loaded, validated against the grid, and followed
	// greedily without further updates.
	q, err := conf.CreateAgent(e, *tableFile)
	if err != nil {
		log.Fatal(err)
	}

	// Experiment
	lengths := tracker.NewEpisodeLength(*dataFile)
	exp := experiment.NewOnline(e, q, *episodes, []tracker.Tracker{lengths})
	exp.Run()
	exp.Save()
	fmt.Println()

	if conf.Training {
		if err := q.Save(*tableFile); err != nil {
			log.Fatal(err)
		}
	}

	// Report the smoothed steps-per-episode curve
	steps := tracker.LoadData(*dataFile)
	smoothed := report.MovingAverage(steps, report.DefaultWindow)

	var reporter report.Reporter = report.NewPlot(*plotFile,
		"Warehouse robot", "Episode", "Steps per episode")
	if err := reporter.Report(smoothed); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Smoothed steps on last episode: %.2f\n",
		smoothed[len(smoothed)-1])
}
