package weather

import "strconv"

// Params holds the tunable knobs for the synoptic field sketch.
type Params struct {
	NoiseScale float64
	TimeRate   float64

	RippleAmp   float64
	RippleFreqX float64
	RippleFreqY float64
	RippleSpeed float64

	BassLift         float64
	MidDamp          float64
	TrebleRippleGain float64

	IsoStep  float64
	IsoCount int
	Baseline float64

	FrontStride    int
	FrontThreshold float64

	ParticleCount int
	FlowScale     float64
	BarbSpacing   int

	AudioInfluence float64
}

// Config controls the sketch dimensions and parameters.
type Config struct {
	Cols int
	Rows int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Cols: 120,
		Rows: 80,
		Seed: 1337,
		Params: Params{
			NoiseScale:       0.045,
			TimeRate:         0.35,
			RippleAmp:        0.12,
			RippleFreqX:      0.18,
			RippleFreqY:      0.11,
			RippleSpeed:      1.4,
			BassLift:         0.55,
			MidDamp:          0.3,
			TrebleRippleGain: 1.5,
			IsoStep:          0.25,
			IsoCount:         4,
			Baseline:         0,
			FrontStride:      6,
			FrontThreshold:   0.35,
			ParticleCount:    240,
			FlowScale:        0.035,
			BarbSpacing:      12,
			AudioInfluence:   1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 1 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 1 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["iso_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.IsoStep = parsed
		}
	}
	if v, ok := cfg["iso_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.IsoCount = parsed
		}
	}
	if v, ok := cfg["front_stride"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.FrontStride = parsed
		}
	}
	if v, ok := cfg["particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ParticleCount = parsed
		}
	}
	if v, ok := cfg["barb_spacing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.BarbSpacing = parsed
		}
	}
	if v, ok := cfg["influence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.AudioInfluence = parsed
		}
	}
	return c
}
