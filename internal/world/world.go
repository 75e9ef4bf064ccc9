// Package world owns one automaton grid and keeps its mesh installed in a
// sink.
package world

import (
	"fmt"
	"time"

	"voxlife/internal/automaton"
	"voxlife/internal/mesh"
	"voxlife/internal/sched"
)

// Stats is a snapshot of the world after the latest step and extraction.
type Stats struct {
	Tick     int
	Full     int
	Decaying int
	Faces    int
	LastStep automaton.StepStats
}

// World threads a grid through the stepper and the extractor. Stepping and
// extraction are never run concurrently; the scheduler that drives a World
// must be single-threaded.
type World struct {
	cfg       automaton.Config
	grid      *automaton.Grid
	stepper   *automaton.Stepper
	extractor *mesh.Extractor
	slot      *mesh.Slot

	tick     int
	faces    int
	lastStep automaton.StepStats
}

// New validates cfg, allocates the grid and seeds it. A nil sink discards
// meshes.
func New(cfg automaton.Config, sink mesh.Sink) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:       cfg,
		grid:      automaton.NewGrid(cfg),
		stepper:   automaton.NewStepper(cfg),
		extractor: mesh.NewExtractor(),
		slot:      mesh.NewSlot(sink),
	}
	if err := w.Reset(0); err != nil {
		return nil, err
	}
	return w, nil
}

// Config returns the active configuration, including threshold changes made
// through the parameter setters.
func (w *World) Config() automaton.Config { return w.cfg }

// Grid exposes the owned grid.
func (w *World) Grid() *automaton.Grid { return w.grid }

// Reset reseeds the grid and installs its mesh. A zero seed uses the
// configured one.
func (w *World) Reset(seed int64) error {
	if err := automaton.Seed(w.grid, w.cfg, seed); err != nil {
		return fmt.Errorf("world reset: %w", err)
	}
	w.tick = 0
	w.lastStep = automaton.StepStats{}
	w.ExtractOnce()
	return nil
}

// StepOnce applies one generation.
func (w *World) StepOnce() automaton.StepStats {
	w.lastStep = w.stepper.Step(w.grid)
	w.tick++
	return w.lastStep
}

// ExtractOnce rebuilds the mesh and replaces the installed one.
func (w *World) ExtractOnce() *mesh.Mesh {
	m := w.extractor.Extract(w.grid)
	w.faces = m.FaceCount
	w.slot.Replace(m)
	return m
}

// Tick steps once and then extracts.
func (w *World) Tick() {
	w.StepOnce()
	w.ExtractOnce()
}

// Attach registers stepping and extraction on s. Stepping is registered
// first so a tick that is due for both finishes the step before extracting.
func (w *World) Attach(s *sched.Scheduler, stepEvery, meshEvery time.Duration) {
	s.OnFixedInterval(stepEvery, func() { w.StepOnce() })
	s.OnFixedInterval(meshEvery, func() { w.ExtractOnce() })
}

// Stats reports the current counters.
func (w *World) Stats() Stats {
	full, decaying := w.grid.Population()
	return Stats{
		Tick:     w.tick,
		Full:     full,
		Decaying: decaying,
		Faces:    w.faces,
		LastStep: w.lastStep,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("tick %d: full %d, decaying %d, faces %d (births %d, withers %d, decays %d)",
		s.Tick, s.Full, s.Decaying, s.Faces, s.LastStep.Births, s.LastStep.Withers, s.LastStep.Decays)
}
