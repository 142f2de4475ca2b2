// Package audio defines how the game asks for sound effects. Playback is
// fire and forget: a Sink never blocks the game loop and never reports
// errors. The device subpackage provides the real speaker.
package audio

// Sink receives the game's sound cues.
type Sink interface {
	PlayJump()
	PlayHit()
	PlayPoint()
}

// Nop is a Sink that plays nothing. Used when audio is muted or unavailable.
type Nop struct{}

func (Nop) PlayJump()  {}
func (Nop) PlayHit()   {}
func (Nop) PlayPoint() {}

var _ Sink = Nop{}
