//go:build ebiten

package app

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/audio"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

const sourceSampleRate = 44100

// audioSource feeds the analyzer once per frame. With a file it decodes the
// whole track to mono samples, plays it on loop, and analyzes the window at
// an elapsed-time playhead; without one it synthesizes a drifting test
// signal so the sketches still move.
type audioSource struct {
	analyzer *audio.Analyzer

	samples []float64
	pos     float64

	player *eaudio.Player

	synth  bool
	synthT float64
	window []float64
}

// newAudioSource opens and decodes the given file, or sets up the
// procedural fallback when path is empty. A file that cannot be opened or
// decoded is a terminal setup failure reported to the caller.
func newAudioSource(path string) (*audioSource, error) {
	an := audio.NewAnalyzer(audio.DefaultConfig())
	src := &audioSource{
		analyzer: an,
		window:   make([]float64, an.WindowSize()),
	}
	if path == "" {
		src.synth = true
		return src, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sourceSampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sourceSampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, err
	}
	if len(pcm) < 4 {
		return nil, fmt.Errorf("audio file %q decoded to no samples", path)
	}

	// 16-bit little-endian stereo; average channels to mono.
	src.samples = make([]float64, len(pcm)/4)
	for i := range src.samples {
		l := int16(uint16(pcm[i*4]) | uint16(pcm[i*4+1])<<8)
		r := int16(uint16(pcm[i*4+2]) | uint16(pcm[i*4+3])<<8)
		src.samples[i] = (float64(l) + float64(r)) / (2 * 32768)
	}

	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(sourceSampleRate)
	}
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, err
	}
	src.player = player
	player.Play()
	return src, nil
}

// Frame advances the playhead by dt and returns the analyzed features.
func (s *audioSource) Frame(dt float64) core.AudioFrame {
	if s.synth {
		return s.analyzer.Analyze(s.synthWindow(dt))
	}

	s.pos += dt * sourceSampleRate
	total := float64(len(s.samples))
	if total > 0 {
		s.pos = math.Mod(s.pos, total)
	}
	start := int(s.pos)
	for i := range s.window {
		s.window[i] = s.samples[(start+i)%len(s.samples)]
	}
	return s.analyzer.Analyze(s.window)
}

// synthWindow writes a slowly evolving mix of a bass pulse, a mid tone, and
// treble bursts so every band sees motion without any input file.
func (s *audioSource) synthWindow(dt float64) []float64 {
	s.synthT += dt
	bassEnv := 0.5 + 0.5*math.Sin(s.synthT*0.9)
	midEnv := 0.5 + 0.5*math.Sin(s.synthT*0.37+1.3)
	trebleEnv := math.Pow(0.5+0.5*math.Sin(s.synthT*2.1+4.0), 3)

	for i := range s.window {
		t := s.synthT + float64(i)/sourceSampleRate
		v := 0.6 * bassEnv * math.Sin(2*math.Pi*55*t)
		v += 0.3 * midEnv * math.Sin(2*math.Pi*880*t)
		v += 0.2 * trebleEnv * math.Sin(2*math.Pi*5200*t)
		s.window[i] = v
	}
	return s.window
}
