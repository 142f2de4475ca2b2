package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// keyBindings maps each action to the keys that trigger it.
type keyBindings struct {
	jump    []ebiten.Key
	duck    []ebiten.Key
	restart []ebiten.Key
	quit    []ebiten.Key
}

func defaultBindings() keyBindings {
	return keyBindings{
		jump:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		duck:    []ebiten.Key{ebiten.KeyC, ebiten.KeyArrowDown, ebiten.KeyS},
		restart: []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		quit:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
	}
}

// poll fills in with the actions whose keys changed this tick.
// Unlike a terminal, the window sees key releases, so DuckRelease is real.
func (b keyBindings) poll(in *core.InputFrame) {
	if anyJustPressed(b.jump) {
		in.Set(core.ActionJump)
	}
	if anyJustPressed(b.duck) {
		in.Set(core.ActionDuck)
	}
	if anyJustReleased(b.duck) && !anyPressed(b.duck) {
		in.Set(core.ActionDuckRelease)
	}
	if anyJustPressed(b.restart) {
		in.Set(core.ActionRestart)
	}
	if anyJustPressed(b.quit) {
		in.Set(core.ActionQuit)
	}
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
