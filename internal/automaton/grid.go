package automaton

import (
	"fmt"

	"voxlife/internal/core"
)

// Grid is the dense cell-state array of the automaton. Coordinates outside
// the extent and states above the full-life value are caller bugs and panic.
type Grid struct {
	vol        *core.ByteVolume
	full       uint8
	decayAlive bool
}

// NewGrid allocates an all-dead grid for cfg. The extent and full-life value
// are fixed for the lifetime of the grid.
func NewGrid(cfg Config) *Grid {
	if cfg.Full == 0 {
		panic("automaton: full-life state must be at least 1")
	}
	return &Grid{
		vol:        core.NewByteVolume(cfg.Width, cfg.Height, cfg.Depth),
		full:       cfg.Full,
		decayAlive: cfg.DecayCountsAsAlive,
	}
}

// Size returns the grid extent.
func (g *Grid) Size() core.Size3 { return g.vol.Size3 }

// Full returns the full-life state.
func (g *Grid) Full() uint8 { return g.full }

// DecayCountsAsAlive reports which liveness predicate is active.
func (g *Grid) DecayCountsAsAlive() bool { return g.decayAlive }

// SetDecayCountsAsAlive switches the liveness predicate. Counting and meshing
// both read it, so they never disagree.
func (g *Grid) SetDecayCountsAsAlive(v bool) { g.decayAlive = v }

// Cells exposes the backing slice in x-fastest order. Callers must treat it
// as read-only; use Set to mutate.
func (g *Grid) Cells() []uint8 { return g.vol.Cells() }

// InBounds reports whether (x, y, z) addresses a cell.
func (g *Grid) InBounds(x, y, z int) bool { return g.vol.Contains(x, y, z) }

func (g *Grid) mustContain(x, y, z int) {
	if !g.vol.Contains(x, y, z) {
		panic(fmt.Sprintf("automaton: cell (%d,%d,%d) outside grid %s", x, y, z, g.vol.Size3))
	}
}

// Get returns the state of (x, y, z).
func (g *Grid) Get(x, y, z int) uint8 {
	g.mustContain(x, y, z)
	return g.vol.Cells()[g.vol.Index(x, y, z)]
}

// Set overwrites the state of (x, y, z).
func (g *Grid) Set(x, y, z int, state uint8) {
	g.mustContain(x, y, z)
	if state > g.full {
		panic(fmt.Sprintf("automaton: state %d at (%d,%d,%d) exceeds full-life %d", state, x, y, z, g.full))
	}
	g.vol.Cells()[g.vol.Index(x, y, z)] = state
}

// Alive applies the liveness predicate to a raw state.
func (g *Grid) Alive(state uint8) bool {
	if g.decayAlive {
		return state != 0
	}
	return state == g.full
}

// IsAlive applies the liveness predicate to the state of (x, y, z).
func (g *Grid) IsAlive(x, y, z int) bool {
	return g.Alive(g.Get(x, y, z))
}

// NeighborCount returns how many of the up to 26 surrounding cells are
// alive. Cells beyond the boundary are absent; the grid does not wrap.
func (g *Grid) NeighborCount(x, y, z int) int {
	g.mustContain(x, y, z)
	return g.countAround(g.vol.Cells(), x, y, z)
}

// countAround counts live neighbors of (x, y, z) in cells, which must have
// the grid's layout. Each axis is bounds-guarded on its own.
func (g *Grid) countAround(cells []uint8, x, y, z int) int {
	s := g.vol.Size3
	plane := s.W * s.H
	n := 0
	for dz := -1; dz <= 1; dz++ {
		nz := z + dz
		if nz < 0 || nz >= s.D {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			ny := y + dy
			if ny < 0 || ny >= s.H {
				continue
			}
			row := nz*plane + ny*s.W
			for dx := -1; dx <= 1; dx++ {
				nx := x + dx
				if nx < 0 || nx >= s.W {
					continue
				}
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				if g.Alive(cells[row+nx]) {
					n++
				}
			}
		}
	}
	return n
}

// Population counts full-life and decaying cells.
func (g *Grid) Population() (full, decaying int) {
	for _, st := range g.vol.Cells() {
		switch {
		case st == g.full:
			full++
		case st != 0:
			decaying++
		}
	}
	return full, decaying
}

// Clear kills every cell.
func (g *Grid) Clear() { g.vol.Clear() }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	s := g.vol.Size3
	c := &Grid{
		vol:        core.NewByteVolume(s.W, s.H, s.D),
		full:       g.full,
		decayAlive: g.decayAlive,
	}
	copy(c.vol.Cells(), g.vol.Cells())
	return c
}
