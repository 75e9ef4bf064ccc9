// Package ui draws the parameter and statistics panel.
package ui

import (
	"fmt"
	"strconv"

	"voxlife/internal/core"
	"voxlife/internal/world"
)

// Source is what the HUD reads from.
type Source interface {
	core.ParameterProvider
	Stats() world.Stats
}

// Lines renders the panel text. The control at index selected is marked.
func Lines(snap core.ParameterSnapshot, stats world.Stats, controls []core.ParameterControl, selected int, paused bool) []string {
	var lines []string
	state := "running"
	if paused {
		state = "paused"
	}
	lines = append(lines,
		fmt.Sprintf("tick %d (%s)", stats.Tick, state),
		fmt.Sprintf("full %d  decaying %d", stats.Full, stats.Decaying),
		fmt.Sprintf("faces %d", stats.Faces),
		fmt.Sprintf("+%d born  -%d withered", stats.LastStep.Births, stats.LastStep.Withers),
		"",
	)
	for _, g := range snap.Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	if len(controls) == 0 {
		return lines
	}
	lines = append(lines, "", "[Controls] up/down select, left/right change")
	for i, c := range controls {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		value := "--"
		if p, ok := snap.Lookup(c.Key); ok {
			value = p.Value
		}
		lines = append(lines, marker+c.Label+": "+value)
	}
	return lines
}

// nudge returns the new value of an int control after delta steps, clamped
// to its bounds.
func nudge(c core.ParameterControl, current string, delta int) (int, bool) {
	v, err := strconv.Atoi(current)
	if err != nil {
		return 0, false
	}
	step := int(c.Step)
	if step <= 0 {
		step = 1
	}
	v += delta * step
	if float64(v) < c.Min {
		v = int(c.Min)
	}
	if float64(v) > c.Max {
		v = int(c.Max)
	}
	return v, true
}
