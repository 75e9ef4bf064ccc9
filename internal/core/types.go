package core

import "sort"

// Volume is the write surface a seeder needs.
type Volume interface {
	Size() Size3
	Set(x, y, z int, state uint8)
}

// SeedOptions parameterises an initial pattern.
type SeedOptions struct {
	// Size is the side length of the seeded region, in cells.
	Size int
	// Density is the fill probability for stochastic patterns.
	Density float64
	// Seed drives the RNG for stochastic patterns.
	Seed int64
	// State is the value written into seeded cells.
	State uint8
}

// Seeder writes an initial pattern into a volume that is already cleared.
type Seeder func(v Volume, opts SeedOptions)

var seeders = map[string]Seeder{}

// RegisterSeeder adds a seed pattern under the provided name.
func RegisterSeeder(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// LookupSeeder returns the seeder registered under name.
func LookupSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// SeederNames lists the registered seed patterns in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
