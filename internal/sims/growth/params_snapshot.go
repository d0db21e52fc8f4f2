package growth

import (
	"strconv"

	"growfield/internal/core"
	"growfield/internal/field"
)

// Parameters reports the configuration and live population for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	stats := w.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Seed Entity",
			Params: []core.Parameter{
				{Key: "seed_kind", Label: "Kind", Type: core.ParamTypeString, Value: w.cfg.SeedKind.String()},
				intParam("seed_x", "X", w.cfg.SeedX),
				intParam("seed_y", "Y", w.cfg.SeedY),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("spawn_chance", "Spawn chance", w.sim.Rules.SpawnChance),
				boolParam("verbose", "Log spawns", w.sim.Rules.Logger != nil),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				int64Param("ticks", "Ticks", int64(stats.Ticks)),
				intParam("population", "Total", stats.Population),
				intParam("hearts", "Hearts", stats.Counts[field.KindHeart]),
				intParam("veins", "Veins", stats.Counts[field.KindVein]),
				intParam("zygs", "Zygotes", stats.Counts[field.KindZyg]),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust while running.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "spawn_chance",
		Label:  "Spawn chance",
		Step:   0.01,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}}
}

// SetFloatParameter updates a float parameter, clamping it to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "spawn_chance":
			w.cfg.SpawnChance = value
			w.sim.Rules.SpawnChance = value
			return true
		}
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
