package automaton

import (
	"fmt"

	"voxlife/internal/core"
)

// Seed clears g and writes the pattern named by cfg.SeedShape. A zero seed
// falls back to cfg.Seed.
func Seed(g *Grid, cfg Config, seed int64) error {
	seeder, ok := core.LookupSeeder(cfg.SeedShape)
	if !ok {
		return fmt.Errorf("automaton: unknown seed shape %q", cfg.SeedShape)
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	g.Clear()
	seeder(g, core.SeedOptions{
		Size:    cfg.SeedSize,
		Density: cfg.SeedDensity,
		Seed:    seed,
		State:   g.Full(),
	})
	return nil
}

// centered returns the start corner and clipped side of a cube of side n
// centered in s.
func centered(s core.Size3, n int) (x0, y0, z0, nx, ny, nz int) {
	clip := func(n, extent int) int {
		if n > extent {
			return extent
		}
		if n < 0 {
			return 0
		}
		return n
	}
	nx, ny, nz = clip(n, s.W), clip(n, s.H), clip(n, s.D)
	return (s.W - nx) / 2, (s.H - ny) / 2, (s.D - nz) / 2, nx, ny, nz
}

func seedCube(v core.Volume, opts core.SeedOptions) {
	x0, y0, z0, nx, ny, nz := centered(v.Size(), opts.Size)
	for z := z0; z < z0+nz; z++ {
		for y := y0; y < y0+ny; y++ {
			for x := x0; x < x0+nx; x++ {
				v.Set(x, y, z, opts.State)
			}
		}
	}
}

func seedRandom(v core.Volume, opts core.SeedOptions) {
	rng := core.NewRNG(opts.Seed)
	x0, y0, z0, nx, ny, nz := centered(v.Size(), opts.Size)
	for z := z0; z < z0+nz; z++ {
		for y := y0; y < y0+ny; y++ {
			for x := x0; x < x0+nx; x++ {
				if rng.Chance(opts.Density) {
					v.Set(x, y, z, opts.State)
				}
			}
		}
	}
}

// seedCross writes three axis-aligned bars through the grid center, each
// opts.Size cells long.
func seedCross(v core.Volume, opts core.SeedOptions) {
	s := v.Size()
	cx, cy, cz := s.W/2, s.H/2, s.D/2
	half := opts.Size / 2
	for d := -half; d < opts.Size-half; d++ {
		if x := cx + d; x >= 0 && x < s.W {
			v.Set(x, cy, cz, opts.State)
		}
		if y := cy + d; y >= 0 && y < s.H {
			v.Set(cx, y, cz, opts.State)
		}
		if z := cz + d; z >= 0 && z < s.D {
			v.Set(cx, cy, z, opts.State)
		}
	}
}

func init() {
	core.RegisterSeeder("cube", seedCube)
	core.RegisterSeeder("random", seedRandom)
	core.RegisterSeeder("cross", seedCross)
}
