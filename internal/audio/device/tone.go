package device

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(22050)

// Tone is a finite sine streamer with an optional linear frequency sweep
// and linear fade out.
type Tone struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	amplitude float64
	fade      bool
	total     int
	pos       int
}

// NewTone creates a tone lasting d. When fade is set the amplitude falls
// linearly to zero over the duration.
func NewTone(sr beep.SampleRate, d time.Duration, startFreq, endFreq, amplitude float64, fade bool) *Tone {
	return &Tone{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		amplitude: amplitude,
		fade:      fade,
		total:     sr.N(d),
	}
}

// JumpTone is a rising 200 to 400 Hz chirp.
func JumpTone(sr beep.SampleRate) *Tone {
	return NewTone(sr, 200*time.Millisecond, 200, 400, 0.3, true)
}

// HitTone is a low 100 Hz thud.
func HitTone(sr beep.SampleRate) *Tone {
	return NewTone(sr, 500*time.Millisecond, 100, 100, 0.3, true)
}

// PointTone is a short 800 Hz beep.
func PointTone(sr beep.SampleRate) *Tone {
	return NewTone(sr, 100*time.Millisecond, 800, 800, 0.2, false)
}

// Len returns the tone length in samples.
func (t *Tone) Len() int {
	return t.total
}

// Stream fills samples with the next part of the tone and reports false
// once the tone is exhausted.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress
		sample := math.Sin(2*math.Pi*freq*float64(t.pos)/float64(t.sr)) * t.amplitude
		if t.fade {
			sample *= 1 - progress
		}

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) Err() error {
	return nil
}
