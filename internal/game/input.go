package game

import (
	"screensaver/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// Events is everything that happened since the previous poll.
type Events struct {
	KeyDowns int  // keys that went down, each one toggles the mode
	Quit     bool // the window was asked to close
}

// Input is polled once per loop iteration.
type Input interface {
	Poll() Events
}

// ebitenInput reads the keyboard and window state from Ebitengine.
type ebitenInput struct {
	keys keytracker.AnyKeyTracker
}

func (in *ebitenInput) Poll() Events {
	return Events{
		KeyDowns: in.keys.JustPressed(),
		Quit:     ebiten.IsWindowBeingClosed(),
	}
}
