package lifebeat

import "strconv"

// Params holds the tunable probabilities and biases for the automaton.
type Params struct {
	// Classic rule tables indexed by live neighbor count.
	Birth   [9]bool
	Survive [9]bool

	// Audio-extended transition weights. Effective probabilities are the
	// weight times the matching band bias times AudioInfluence.
	ExtendedBirthChance   float64
	ExtendedSurviveChance float64
	SparkChance           float64

	SeedDensity    float64
	AudioInfluence float64

	// Anti-stagnation cadence and scaling.
	SprinkleInterval int
	SprinkleChance   float64
	SprinkleDensity  float64
}

// Config controls the automaton dimensions and parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// ClassicRule returns Conway's birth={3}, survive={2,3} tables.
func ClassicRule() (birth, survive [9]bool) {
	birth[3] = true
	survive[2] = true
	survive[3] = true
	return birth, survive
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	birth, survive := ClassicRule()
	return Config{
		Width:  150,
		Height: 100,
		Seed:   1337,
		Params: Params{
			Birth:                 birth,
			Survive:               survive,
			ExtendedBirthChance:   0.15,
			ExtendedSurviveChance: 0.25,
			SparkChance:           0.005,
			SeedDensity:           0.22,
			AudioInfluence:        1,
			SprinkleInterval:      90,
			SprinkleChance:        0.4,
			SprinkleDensity:       0.015,
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
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SeedDensity = parsed
		}
	}
	if v, ok := cfg["influence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.AudioInfluence = parsed
		}
	}
	return c
}
