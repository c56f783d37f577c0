// Package audio turns raw PCM sample windows into the small set of band
// energy scalars the sketches react to.
package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

// Config controls the analyzer window and band split points.
type Config struct {
	SampleRate int
	WindowSize int

	// Band edges in Hz. Bass covers [0, BassMaxHz), mid [BassMaxHz,
	// MidMaxHz), treble [MidMaxHz, TrebleMaxHz).
	BassMaxHz   float64
	MidMaxHz    float64
	TrebleMaxHz float64
}

// DefaultConfig returns the standard analyzer setup for 44.1 kHz audio.
func DefaultConfig() Config {
	return Config{
		SampleRate:  44100,
		WindowSize:  1024,
		BassMaxHz:   250,
		MidMaxHz:    2000,
		TrebleMaxHz: 8000,
	}
}

// Analyzer extracts smoothed bass/mid/treble energies and an RMS level from
// successive mono sample windows. It applies a Hann window before the FFT
// and slow-decay automatic gain control so quiet and loud tracks land in
// the same nominal 0..1 range.
type Analyzer struct {
	cfg  Config
	hann []float64
	work []float64

	maxLevel float64

	bass   float64
	mid    float64
	treble float64
	level  float64
}

// NewAnalyzer constructs an Analyzer for the provided configuration.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = 1024
	}
	if cfg.BassMaxHz <= 0 {
		cfg.BassMaxHz = 250
	}
	if cfg.MidMaxHz <= cfg.BassMaxHz {
		cfg.MidMaxHz = cfg.BassMaxHz * 8
	}
	if cfg.TrebleMaxHz <= cfg.MidMaxHz {
		cfg.TrebleMaxHz = cfg.MidMaxHz * 4
	}
	n := cfg.WindowSize
	hann := make([]float64, n)
	for i := range hann {
		hann[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return &Analyzer{
		cfg:      cfg,
		hann:     hann,
		work:     make([]float64, n),
		maxLevel: 0.1,
	}
}

// WindowSize reports how many samples Analyze expects per call.
func (a *Analyzer) WindowSize() int { return a.cfg.WindowSize }

// Analyze consumes one mono sample window and returns the updated feature
// frame. Shorter windows are zero-padded. The result depends only on the
// input sequence fed so far, never on wall-clock time or hardware.
func (a *Analyzer) Analyze(samples []float64) core.AudioFrame {
	n := a.cfg.WindowSize
	var sumSq float64
	for i := 0; i < n; i++ {
		var s float64
		if i < len(samples) {
			s = samples[i]
		}
		sumSq += s * s
		a.work[i] = s * a.hann[i]
	}
	spectrum := fft.FFTReal(a.work)

	binHz := float64(a.cfg.SampleRate) / float64(n)
	var bassSum, midSum, trebleSum float64
	var bassN, midN, trebleN int
	for i := 1; i < n/2; i++ {
		hz := float64(i) * binHz
		mag := cmplx.Abs(spectrum[i])
		switch {
		case hz < a.cfg.BassMaxHz:
			bassSum += mag
			bassN++
		case hz < a.cfg.MidMaxHz:
			midSum += mag
			midN++
		case hz < a.cfg.TrebleMaxHz:
			trebleSum += mag
			trebleN++
		}
	}
	bass := bandAverage(bassSum, bassN)
	mid := bandAverage(midSum, midN)
	treble := bandAverage(trebleSum, trebleN)

	// AGC: track the running peak with a slow decay, normalize by it.
	peak := math.Max(bass, math.Max(mid, treble))
	if peak > a.maxLevel {
		a.maxLevel = peak
	} else {
		a.maxLevel *= 0.999
		if a.maxLevel < 1e-4 {
			a.maxLevel = 1e-4
		}
	}
	gain := 1.0 / a.maxLevel
	if gain > 50 {
		gain = 50
	}

	a.bass = smooth(a.bass, clamp01(bass*gain))
	a.mid = smooth(a.mid, clamp01(mid*gain))
	a.treble = smooth(a.treble, clamp01(treble*gain))
	a.level = smooth(a.level, clamp01(math.Sqrt(sumSq/float64(n))*4))

	return core.AudioFrame{
		Bass:   a.bass,
		Mid:    a.mid,
		Treble: a.treble,
		Level:  a.level,
	}
}

func bandAverage(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func smooth(prev, next float64) float64 {
	return prev*0.9 + next*0.1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
