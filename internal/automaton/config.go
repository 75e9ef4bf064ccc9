package automaton

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"voxlife/internal/core"
)

// MaxNeighbors is the size of the 3D Moore neighborhood.
const MaxNeighbors = 26

// Config controls the grid extent, the transition rule and the initial seed.
type Config struct {
	Width  int
	Height int
	Depth  int

	// Full is the full-life state; 1..Full-1 are decaying states.
	Full uint8
	// Survive is the exact neighbor count a full cell needs to stay full.
	Survive int
	// Birth is the exact neighbor count that turns a dead cell full.
	Birth int
	// DecayCountsAsAlive selects the liveness predicate: state != 0 when
	// true, state == Full when false.
	DecayCountsAsAlive bool

	SeedShape   string
	SeedSize    int
	SeedDensity float64
	Seed        int64

	// Workers splits each step into that many z-slabs.
	Workers int
}

// DefaultConfig returns the reference configuration: a 20³ grid, three
// states, 4/4 thresholds and a centered cube seed.
func DefaultConfig() Config {
	return Config{
		Width:              20,
		Height:             20,
		Depth:              20,
		Full:               3,
		Survive:            4,
		Birth:              4,
		DecayCountsAsAlive: true,
		SeedShape:          "cube",
		SeedSize:           4,
		SeedDensity:        0.35,
		Seed:               1337,
		Workers:            1,
	}
}

// Size returns the grid extent.
func (c Config) Size() core.Size3 {
	return core.Size3{W: c.Width, H: c.Height, D: c.Depth}
}

// Validate reports configurations that cannot form a grid or a rule.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
		errs = append(errs, fmt.Errorf("grid extent %s must be positive", c.Size()))
	}
	if c.Full == 0 {
		errs = append(errs, errors.New("full-life state must be at least 1"))
	}
	if c.Survive < 0 || c.Survive > MaxNeighbors {
		errs = append(errs, fmt.Errorf("survive threshold %d outside [0,%d]", c.Survive, MaxNeighbors))
	}
	if c.Birth < 0 || c.Birth > MaxNeighbors {
		errs = append(errs, fmt.Errorf("birth threshold %d outside [0,%d]", c.Birth, MaxNeighbors))
	}
	if _, ok := core.LookupSeeder(c.SeedShape); !ok {
		errs = append(errs, fmt.Errorf("unknown seed shape %q (have %s)", c.SeedShape, strings.Join(core.SeederNames(), ", ")))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("automaton config: %w", err)
	}
	return nil
}

// FromMap populates a Config from flag-style key/value pairs. Values that do
// not parse are ignored and the defaults kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields of c from key/value pairs.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width, c.Height, c.Depth = parsed, parsed, parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["d"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["full"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil && parsed > 0 {
			c.Full = uint8(parsed)
		}
	}
	if v, ok := cfg["survive"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxNeighbors {
			c.Survive = parsed
		}
	}
	if v, ok := cfg["birth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxNeighbors {
			c.Birth = parsed
		}
	}
	if v, ok := cfg["decay_alive"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.DecayCountsAsAlive = parsed
		}
	}
	if v, ok := cfg["seed_shape"]; ok && v != "" {
		c.SeedShape = v
	}
	if v, ok := cfg["seed_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SeedSize = parsed
		}
	}
	if v, ok := cfg["seed_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SeedDensity = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
}
