package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"voxlife/internal/app"
	"voxlife/internal/automaton"
	"voxlife/internal/world"
)

func main() {
	log.SetPrefix("rule-sweep: ")
	steps := flag.Int("steps", 100, "generations to simulate per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel rule evaluations")
	size := flag.Int("size", 20, "grid side length")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	minT := flag.Int("min", 0, "lowest threshold to try")
	maxT := flag.Int("max", 8, "highest threshold to try")
	var overrides app.KVList
	flag.Var(&overrides, "set", "automaton override in key=value form (repeatable)")
	flag.Parse()

	cfg := automaton.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Depth = *size, *size, *size
	cfg.Seed = *seed
	cfg.SeedShape = "random"
	cfg.SeedSize = *size / 2
	cfg.Apply(overrides.Map())

	if *minT < 0 || *maxT > automaton.MaxNeighbors || *minT > *maxT {
		log.Fatalf("threshold range [%d,%d] must lie within [0,%d]", *minT, *maxT, automaton.MaxNeighbors)
	}
	var thresholds []int
	for t := *minT; t <= *maxT; t++ {
		thresholds = append(thresholds, t)
	}

	results, err := world.Sweep(cfg, *steps, thresholds, thresholds, *workers)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("%s grid, %s seed (size %d), %d steps\n", cfg.Size(), cfg.SeedShape, cfg.SeedSize, *steps)
	fmt.Printf("%7s %5s %8s %8s %9s %9s %7s\n", "survive", "birth", "full", "decaying", "peakfull", "peakfaces", "extinct")
	for _, r := range results {
		extinct := "-"
		if r.ExtinctAt >= 0 {
			extinct = fmt.Sprint(r.ExtinctAt)
		}
		fmt.Printf("%7d %5d %8d %8d %9d %9d %7s\n", r.Survive, r.Birth, r.Final.Full, r.Final.Decaying, r.PeakFull, r.PeakFaces, extinct)
	}
}
