package weather

import (
	"strconv"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

// Parameters reports the current tunables for the HUD.
func (s *Sketch) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Columns", s.cfg.Cols),
				intParam("h", "Rows", s.cfg.Rows),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Field",
			Params: []core.Parameter{
				floatParam("noise_scale", "Noise scale", p.NoiseScale),
				floatParam("time_rate", "Time rate", p.TimeRate),
				floatParam("ripple_amp", "Ripple amplitude", p.RippleAmp),
			},
		},
		{
			Name: "Contours",
			Params: []core.Parameter{
				floatParam("iso_step", "Isoband step", p.IsoStep),
				intParam("iso_count", "Isoband count", p.IsoCount),
				intParam("front_stride", "Front stride", p.FrontStride),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				intParam("particles", "Particle count", p.ParticleCount),
				intParam("barb_spacing", "Barb spacing", p.BarbSpacing),
				floatParam("flow_scale", "Flow noise scale", p.FlowScale),
			},
		},
		{
			Name: "Audio",
			Params: []core.Parameter{
				floatParam("influence", "Audio influence", p.AudioInfluence),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable knobs.
func (s *Sketch) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.005, Max: 0.2, HasMin: true, HasMax: true},
		{Key: "iso_step", Label: "Isoband step", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 1, HasMin: true, HasMax: true},
		{Key: "iso_count", Label: "Isoband count", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
		{Key: "front_stride", Label: "Front stride", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 16, HasMin: true, HasMax: true},
		{Key: "particles", Label: "Particles", Type: core.ParamTypeInt, Step: 20, Min: 0, Max: 2000, HasMin: true, HasMax: true},
		{Key: "influence", Label: "Audio influence", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable; changes take effect next frame.
func (s *Sketch) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "noise_scale":
		if value <= 0 {
			return false
		}
		s.cfg.Params.NoiseScale = value
	case "time_rate":
		if value < 0 {
			return false
		}
		s.cfg.Params.TimeRate = value
	case "ripple_amp":
		if value < 0 {
			return false
		}
		s.cfg.Params.RippleAmp = value
	case "iso_step":
		if value <= 0 {
			return false
		}
		s.cfg.Params.IsoStep = value
	case "flow_scale":
		if value <= 0 {
			return false
		}
		s.cfg.Params.FlowScale = value
	case "influence":
		if value < 0 || value > 1 {
			return false
		}
		s.cfg.Params.AudioInfluence = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable; grid and particle resizes are
// deferred to the next frame boundary.
func (s *Sketch) SetIntParameter(key string, value int) bool {
	switch key {
	case "iso_count":
		if value < 1 {
			return false
		}
		s.cfg.Params.IsoCount = value
	case "front_stride":
		if value < 1 {
			return false
		}
		s.cfg.Params.FrontStride = value
	case "barb_spacing":
		if value < 1 {
			return false
		}
		s.cfg.Params.BarbSpacing = value
	case "particles":
		if value < 0 {
			return false
		}
		s.ResizeParticles(value)
	case "w":
		if value < 2 {
			return false
		}
		s.ResizeGrid(value, s.cfg.Rows)
	case "h":
		if value < 2 {
			return false
		}
		s.ResizeGrid(s.cfg.Cols, value)
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
