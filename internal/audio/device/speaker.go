// Package device plays the runner's sound cues on the system audio
// device with beep.
package device

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dino-runner/internal/audio"
)

// Speaker plays cues through the system audio device.
type Speaker struct {
	mixer  *beep.Mixer
	volume float64
}

// Open initializes the audio device and returns a Sink for it. Any failure
// is logged once at warn level and yields Nop, so the game keeps running
// silently.
func Open(logger *log.Logger, volume float64) audio.Sink {
	if volume <= 0 {
		return audio.Nop{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		}
		return audio.Nop{}
	}

	s := &Speaker{mixer: &beep.Mixer{}, volume: math.Min(volume, 1)}
	speaker.Play(s.mixer)
	return s
}

func (s *Speaker) PlayJump()  { s.play(JumpTone(sampleRate)) }
func (s *Speaker) PlayHit()   { s.play(HitTone(sampleRate)) }
func (s *Speaker) PlayPoint() { s.play(PointTone(sampleRate)) }

// Close stops all queued sounds.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

func (s *Speaker) play(t *Tone) {
	// The mixer is read by the speaker goroutine
	speaker.Lock()
	s.mixer.Add(withVolume(t, s.volume))
	speaker.Unlock()
}

// withVolume scales a streamer linearly. A volume of 1 leaves it untouched.
func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol >= 1 {
		return st
	}
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}
