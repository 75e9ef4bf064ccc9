package automaton

import "sync"

// StepStats summarises one pass.
type StepStats struct {
	// Births counts dead cells that became full.
	Births int
	// Withers counts full cells that lost a life point.
	Withers int
	// Decays counts decaying cells that lost a life point.
	Decays int
}

func (s *StepStats) add(o StepStats) {
	s.Births += o.Births
	s.Withers += o.Withers
	s.Decays += o.Decays
}

// Stepper applies the survive/birth/decay rule. All neighbor counts in a
// pass are taken from the grid as it was when the pass started; the new
// states are written to a private buffer and committed at the end.
type Stepper struct {
	Survive int
	Birth   int
	// Workers > 1 evaluates disjoint z-slabs concurrently.
	Workers int

	next []uint8
}

// NewStepper builds a stepper for cfg's thresholds.
func NewStepper(cfg Config) *Stepper {
	return &Stepper{Survive: cfg.Survive, Birth: cfg.Birth, Workers: cfg.Workers}
}

// Step advances every cell of g by one rule application.
func (s *Stepper) Step(g *Grid) StepStats {
	cur := g.Cells()
	if len(s.next) != len(cur) {
		s.next = make([]uint8, len(cur))
	}

	depth := g.Size().D
	workers := s.Workers
	if workers > depth {
		workers = depth
	}

	var stats StepStats
	if workers <= 1 {
		stats = s.slab(g, cur, 0, depth)
	} else {
		per := make([]StepStats, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			z0 := depth * i / workers
			z1 := depth * (i + 1) / workers
			wg.Add(1)
			go func(i, z0, z1 int) {
				defer wg.Done()
				per[i] = s.slab(g, cur, z0, z1)
			}(i, z0, z1)
		}
		wg.Wait()
		for _, st := range per {
			stats.add(st)
		}
	}

	s.next = g.vol.Swap(s.next)
	return stats
}

// slab computes next states for z in [z0, z1). It reads only cur and writes
// only the matching range of s.next.
func (s *Stepper) slab(g *Grid, cur []uint8, z0, z1 int) StepStats {
	var stats StepStats
	size := g.Size()
	full := g.Full()
	for z := z0; z < z1; z++ {
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				idx := size.Index(x, y, z)
				st := cur[idx]
				switch {
				case st == full:
					if g.countAround(cur, x, y, z) != s.Survive {
						st--
						stats.Withers++
					}
				case st == 0:
					if g.countAround(cur, x, y, z) == s.Birth {
						st = full
						stats.Births++
					}
				default:
					st--
					stats.Decays++
				}
				s.next[idx] = st
			}
		}
	}
	return stats
}
