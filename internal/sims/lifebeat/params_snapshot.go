package lifebeat

import (
	"strconv"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

// Parameters reports the current tunables for the HUD.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	p := a.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", a.cfg.Width),
				intParam("h", "Height", a.cfg.Height),
				int64Param("seed", "Seed", a.cfg.Seed),
				floatParam("seed_density", "Seed density", p.SeedDensity),
			},
		},
		{
			Name: "Audio rules",
			Params: []core.Parameter{
				floatParam("influence", "Audio influence", p.AudioInfluence),
				floatParam("ext_birth", "Extended birth weight", p.ExtendedBirthChance),
				floatParam("ext_survive", "Extended survive weight", p.ExtendedSurviveChance),
				floatParam("spark", "Spark weight", p.SparkChance),
			},
		},
		{
			Name: "Anti-stagnation",
			Params: []core.Parameter{
				intParam("sprinkle_interval", "Sprinkle interval", p.SprinkleInterval),
				floatParam("sprinkle_chance", "Sprinkle chance", p.SprinkleChance),
				floatParam("sprinkle_density", "Sprinkle density", p.SprinkleDensity),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable knobs.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "influence", Label: "Audio influence", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "seed_density", Label: "Seed density", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "ext_birth", Label: "Extended birth", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "ext_survive", Label: "Extended survive", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "sprinkle_interval", Label: "Sprinkle interval", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 600, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable.
func (a *Automaton) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		return false
	}
	switch key {
	case "influence":
		if value > 1 {
			return false
		}
		a.cfg.Params.AudioInfluence = value
	case "seed_density":
		if value > 1 {
			return false
		}
		a.cfg.Params.SeedDensity = value
	case "ext_birth":
		a.cfg.Params.ExtendedBirthChance = value
	case "ext_survive":
		a.cfg.Params.ExtendedSurviveChance = value
	case "spark":
		a.cfg.Params.SparkChance = value
	case "sprinkle_chance":
		a.cfg.Params.SprinkleChance = value
	case "sprinkle_density":
		a.cfg.Params.SprinkleDensity = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	switch key {
	case "sprinkle_interval":
		if value < 0 {
			return false
		}
		a.cfg.Params.SprinkleInterval = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
