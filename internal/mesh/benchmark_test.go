package mesh

import (
	"testing"

	"voxlife/internal/automaton"
)

func BenchmarkExtract20(b *testing.B) {
	cfg := automaton.DefaultConfig()
	cfg.SeedShape = "random"
	cfg.SeedSize = 20
	cfg.SeedDensity = 0.5
	g := automaton.NewGrid(cfg)
	if err := automaton.Seed(g, cfg, 1); err != nil {
		b.Fatal(err)
	}
	e := NewExtractor()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Extract(g)
	}
}

func BenchmarkStepAndExtract20(b *testing.B) {
	cfg := automaton.DefaultConfig()
	g := automaton.NewGrid(cfg)
	stepper := automaton.NewStepper(cfg)
	e := NewExtractor()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%16 == 0 {
			b.StopTimer()
			if err := automaton.Seed(g, cfg, int64(i)); err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
		}
		stepper.Step(g)
		e.Extract(g)
	}
}
