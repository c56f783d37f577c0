package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// AudioFrame carries the per-frame audio feature scalars the host extracts
// from the playing track. Band energies and Level are non-negative with a
// nominal 0..1 range after smoothing and gain control.
type AudioFrame struct {
	Bass   float64
	Mid    float64
	Treble float64
	Level  float64
}

// Energy returns the loudness composite used to scale simulation motion,
// clamped to [0.1, 3.0] so silence never freezes a sketch and clipping
// never runs it away.
func (f AudioFrame) Energy() float64 {
	e := f.Level + 0.5*(f.Bass+f.Mid+f.Treble)
	if e < 0.1 {
		return 0.1
	}
	if e > 3.0 {
		return 3.0
	}
	return e
}

// Sketch defines the contract an audio-reactive simulation must implement.
// Step is called once per rendered frame with the elapsed time and the
// current audio features; state exposed afterwards is a snapshot valid
// until the next Step.
type Sketch interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(dt float64, frame AudioFrame)
}

// Factory constructs a Sketch using an optional configuration map.
type Factory func(cfg map[string]string) Sketch

var sketches = map[string]Factory{}

// Register adds a sketch factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sketches[name] = f
}

// Sketches exposes the registry of available sketch factories.
func Sketches() map[string]Factory {
	return sketches
}
