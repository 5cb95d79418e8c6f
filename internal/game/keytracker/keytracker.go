// keytracker.go - key-down detection for Ebiten v2.8.8
// Counts keys that went down since the previous poll, whichever keys they are.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AnyKeyTracker reports key-down events for every key on the keyboard.
type AnyKeyTracker struct {
	keys []ebiten.Key
}

// JustPressed returns how many keys went down this tick.
func (k *AnyKeyTracker) JustPressed() int {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	return len(k.keys)
}

// Keys returns the keys found by the last JustPressed call.
func (k *AnyKeyTracker) Keys() []ebiten.Key {
	return k.keys
}
