// Package audio plays short synthesized cue sounds. Everything is
// generated at startup; no sound assets are loaded.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueBoost Cue = iota
	CueCrash
	CueFinish
)

// Player owns the speaker and the pre-generated cue buffers. A disabled
// player (config, or speaker init failure) swallows Play calls.
type Player struct {
	enabled bool
	log     zerolog.Logger
	cues    map[Cue][]float64
}

// NewPlayer initializes the speaker and synthesizes the cue set.
// Speaker failure is non-fatal: the game runs silent.
func NewPlayer(enabled bool, log zerolog.Logger) *Player {
	p := &Player{
		log: log.With().Str("component", "audio").Logger(),
	}
	if !enabled {
		return p
	}

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		p.log.Warn().Err(err).Msg("speaker init failed, audio disabled")
		return p
	}

	p.enabled = true
	p.cues = map[Cue][]float64{
		CueBoost:  generateBoostSound(),
		CueCrash:  generateCrashSound(),
		CueFinish: generateFinishSound(),
	}
	return p
}

// Play fires a cue. Safe to call on a disabled player.
func (p *Player) Play(cue Cue) {
	if !p.enabled {
		return
	}
	buf, ok := p.cues[cue]
	if !ok {
		return
	}
	speaker.Play(&bufferStreamer{buf: buf})
}

// bufferStreamer streams a mono buffer to both channels once.
type bufferStreamer struct {
	buf []float64
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
