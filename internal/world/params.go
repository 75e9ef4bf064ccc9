package world

import (
	"strconv"

	"voxlife/internal/automaton"
	"voxlife/internal/core"
)

// Parameters reports the rule and grid settings for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				intParam("d", "Depth", cfg.Depth),
				intParam("full", "Full life", int(cfg.Full)),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("survive", "Survive at", cfg.Survive),
				intParam("birth", "Birth at", cfg.Birth),
				boolParam("decay_alive", "Decay counts", cfg.DecayCountsAsAlive),
			},
		},
		{
			Name: "Seed",
			Params: []core.Parameter{
				{Key: "seed_shape", Label: "Shape", Type: core.ParamTypeString, Value: cfg.SeedShape},
				intParam("seed_size", "Size", cfg.SeedSize),
				floatParam("seed_density", "Density", cfg.SeedDensity),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(cfg.Seed, 10)},
			},
		},
	}}
}

// ParameterControls lists the settings that can change while running.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "survive", Label: "Survive at", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: automaton.MaxNeighbors},
		{Key: "birth", Label: "Birth at", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: automaton.MaxNeighbors},
		{Key: "decay_alive", Label: "Decay counts", Type: core.ParamTypeBool},
	}
}

// SetIntParameter changes a threshold; it applies from the next step.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	if value > automaton.MaxNeighbors {
		value = automaton.MaxNeighbors
	}
	switch key {
	case "survive":
		w.cfg.Survive = value
		w.stepper.Survive = value
	case "birth":
		w.cfg.Birth = value
		w.stepper.Birth = value
	default:
		return false
	}
	return true
}

// SetBoolParameter switches the liveness predicate for both counting and
// meshing.
func (w *World) SetBoolParameter(key string, value bool) bool {
	if key != "decay_alive" {
		return false
	}
	w.cfg.DecayCountsAsAlive = value
	w.grid.SetDecayCountsAsAlive(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
