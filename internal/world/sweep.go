package world

import (
	"sort"
	"sync"

	"voxlife/internal/automaton"
)

// SweepResult is the outcome of running one rule for a fixed number of steps.
type SweepResult struct {
	Survive int
	Birth   int
	Final   Stats
	// ExtinctAt is the first step after which no cell was alive, or -1.
	ExtinctAt int
	PeakFull  int
	PeakFaces int
}

// Sweep runs every survive/birth combination from base for steps
// generations. Each run owns its own world; workers bounds the number of runs
// in flight. Results are ordered by survive, then birth.
func Sweep(base automaton.Config, steps int, survive, birth []int, workers int) ([]SweepResult, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = 1
	}
	type job struct{ survive, birth int }
	jobs := make(chan job)
	results := make([]SweepResult, 0, len(survive)*len(birth))
	var mu sync.Mutex
	var firstErr error

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.Survive, cfg.Birth = j.survive, j.birth
				res, err := runRule(cfg, steps)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				if err == nil {
					results = append(results, res)
				}
				mu.Unlock()
			}
		}()
	}
	for _, s := range survive {
		for _, b := range birth {
			jobs <- job{survive: s, birth: b}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Survive != results[j].Survive {
			return results[i].Survive < results[j].Survive
		}
		return results[i].Birth < results[j].Birth
	})
	return results, nil
}

func runRule(cfg automaton.Config, steps int) (SweepResult, error) {
	w, err := New(cfg, nil)
	if err != nil {
		return SweepResult{}, err
	}
	res := SweepResult{Survive: cfg.Survive, Birth: cfg.Birth, ExtinctAt: -1}
	for i := 0; i < steps; i++ {
		w.Tick()
		st := w.Stats()
		res.PeakFull = max(res.PeakFull, st.Full)
		res.PeakFaces = max(res.PeakFaces, st.Faces)
		if st.Full == 0 && st.Decaying == 0 {
			res.ExtinctAt = st.Tick
			break
		}
	}
	res.Final = w.Stats()
	return res, nil
}
