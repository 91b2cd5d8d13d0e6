package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/phyllotaxis/internal/config"
	"github.com/iburimskiy/phyllotaxis/internal/phyllo"
)

var repeatKeys = map[ebiten.Key]phyllo.Control{
	ebiten.KeyArrowUp:    phyllo.MorePoints,
	ebiten.KeyArrowDown:  phyllo.FewerPoints,
	ebiten.KeyArrowLeft:  phyllo.Tighten,
	ebiten.KeyArrowRight: phyllo.Loosen,
}

var groupKeys = map[ebiten.Key]int{
	ebiten.KeyDigit1: 1, ebiten.KeyDigit2: 2, ebiten.KeyDigit3: 3,
	ebiten.KeyDigit4: 4, ebiten.KeyDigit5: 5, ebiten.KeyDigit6: 6,
	ebiten.KeyDigit7: 7, ebiten.KeyDigit8: 8, ebiten.KeyDigit9: 9,
	ebiten.KeyNumpad1: 1, ebiten.KeyNumpad2: 2, ebiten.KeyNumpad3: 3,
	ebiten.KeyNumpad4: 4, ebiten.KeyNumpad5: 5, ebiten.KeyNumpad6: 6,
	ebiten.KeyNumpad7: 7, ebiten.KeyNumpad8: 8, ebiten.KeyNumpad9: 9,
}

var boundKeys = []ebiten.Key{
	ebiten.KeyW,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3,
	ebiten.KeyNumpad4, ebiten.KeyNumpad5, ebiten.KeyNumpad6,
	ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
}

// eventForKey maps a key to the control it triggers.
func eventForKey(k ebiten.Key) (phyllo.Event, bool) {
	if k == ebiten.KeyW {
		return phyllo.Event{Control: phyllo.ToggleWiggle}, true
	}
	if c, ok := repeatKeys[k]; ok {
		return phyllo.Event{Control: c}, true
	}
	if n, ok := groupKeys[k]; ok {
		return phyllo.Event{Control: phyllo.EnsureGroups, Groups: n}, true
	}
	return phyllo.Event{}, false
}

// fires reports whether a key held for d ticks emits an event this tick.
// Arrow keys auto repeat like a held keyboard key.
func fires(d int, repeats bool) bool {
	if d == 1 {
		return true
	}
	if !repeats || d < config.RepeatDelay {
		return false
	}
	return (d-config.RepeatDelay)%config.RepeatInterval == 0
}

func pollEvents() []phyllo.Event {
	var evs []phyllo.Event
	for _, k := range boundKeys {
		_, repeats := repeatKeys[k]
		if !fires(inpututil.KeyPressDuration(k), repeats) {
			continue
		}
		if ev, ok := eventForKey(k); ok {
			evs = append(evs, ev)
		}
	}
	return evs
}
