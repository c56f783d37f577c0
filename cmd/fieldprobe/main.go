// fieldprobe steps the weather kernel headlessly under a synthetic audio
// envelope and prints per-layer statistics, for tuning parameters without a
// display.
package main

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/sims/weather"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 300, "number of frames to simulate")
	width := flag.Int("width", 120, "field columns")
	height := flag.Int("height", 80, "field rows")
	seed := flag.Int64("seed", 1337, "seed for deterministic runs")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per simulated frame")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg := weather.FromMap(kvMap(overrides))
	cfg.Cols = *width
	cfg.Rows = *height
	cfg.Seed = *seed

	sketch := weather.NewWithConfig(cfg)
	sketch.Reset(*seed)

	for i := 0; i < *steps; i++ {
		t := float64(i) * *dt
		frame := core.AudioFrame{
			Bass:   0.5 + 0.5*math.Sin(t*0.9),
			Mid:    0.5 + 0.5*math.Sin(t*0.37+1.3),
			Treble: 0.5 + 0.5*math.Sin(t*2.1+4.0),
			Level:  0.4 + 0.3*math.Sin(t*0.6),
		}
		sketch.Step(*dt, frame)
	}

	field := sketch.Field()
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range field.Values() {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	fmt.Printf("field: %dx%d, range [%.3f, %.3f], time %.2f\n",
		*width, *height, lo, hi, field.Time())

	segments := 0
	for _, level := range sketch.IsolineLevels() {
		segments += len(sketch.Isolines(level))
	}
	fmt.Printf("isolines: %d segments across %d levels\n",
		segments, len(sketch.IsolineLevels()))
	fmt.Printf("isobands: %d band cells\n", len(sketch.Isobands()))

	warm, cold, occluded := 0, 0, 0
	for _, m := range sketch.Fronts() {
		switch m.Kind {
		case weather.FrontWarm:
			warm++
		case weather.FrontCold:
			cold++
		default:
			occluded++
		}
	}
	fmt.Printf("fronts: %d warm, %d cold, %d occluded\n", warm, cold, occluded)

	units := 0
	barbs := sketch.Barbs()
	for _, b := range barbs {
		units += b.Pennants*50 + b.Full*10 + b.Half*5
	}
	mean := 0.0
	if len(barbs) > 0 {
		mean = float64(units) / float64(len(barbs))
	}
	fmt.Printf("barbs: %d glyphs, mean %.1f units\n", len(barbs), mean)
	fmt.Printf("particles: %d\n", len(sketch.Particles()))
}

func kvMap(list kvList) map[string]string {
	if len(list) == 0 {
		return nil
	}
	m := make(map[string]string, len(list))
	for _, kv := range list {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[parts[0]] = parts[1]
	}
	return m
}
