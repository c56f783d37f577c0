package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sketch    string
	Scale     int
	TPS       int
	Seed      int64
	Audio     string
	Theme     string
	Influence float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sketch: "weather", Scale: 6, TPS: 60, Seed: 42, Theme: "synoptic", Influence: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sketch, "sketch", c.Sketch, "sketch to run (weather, lifebeat)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for sketch reset")
	fs.StringVar(&c.Audio, "audio", c.Audio, "audio file to react to (.wav or .ogg); procedural signal when empty")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme preset")
	fs.Float64Var(&c.Influence, "influence", c.Influence, "audio influence 0..1")
}
