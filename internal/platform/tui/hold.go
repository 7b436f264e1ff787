package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Terminals report only key presses, repeated while a key is held. A key is
// considered released once no repeat arrives within its timeout.
const (
	// holdInitial covers the OS delay before auto-repeat starts.
	holdInitial = 500 * time.Millisecond
	// holdRepeat covers the gap between auto-repeat events.
	holdRepeat = 100 * time.Millisecond
)

// holdable lists the actions tracked as held keys, in release order.
var holdable = [...]core.Action{core.ActionLeft, core.ActionRight}

type heldKey struct {
	down     bool
	deadline time.Time
}

// holdTracker synthesizes key-up events for held directional keys.
type holdTracker struct {
	keys    [len(holdable)]heldKey
	initial time.Duration
	repeat  time.Duration
}

func newHoldTracker() *holdTracker {
	return &holdTracker{initial: holdInitial, repeat: holdRepeat}
}

func holdIndex(a core.Action) int {
	for i, h := range holdable {
		if h == a {
			return i
		}
	}
	return -1
}

// press records a press of a at now and returns the transitions to deliver.
// Pressing one direction releases the other. Actions that are not held keys
// return nil.
func (h *holdTracker) press(a core.Action, now time.Time) []core.KeyEvent {
	idx := holdIndex(a)
	if idx < 0 {
		return nil
	}

	var events []core.KeyEvent
	for i := range h.keys {
		if i != idx && h.keys[i].down {
			h.keys[i].down = false
			events = append(events, core.Release(holdable[i]))
		}
	}

	k := &h.keys[idx]
	if k.down {
		k.deadline = now.Add(h.repeat)
		return events
	}
	k.down = true
	k.deadline = now.Add(h.initial)
	return append(events, core.Press(a))
}

// expire releases every held key whose deadline has passed.
func (h *holdTracker) expire(now time.Time) []core.KeyEvent {
	var events []core.KeyEvent
	for i := range h.keys {
		k := &h.keys[i]
		if k.down && now.After(k.deadline) {
			k.down = false
			events = append(events, core.Release(holdable[i]))
		}
	}
	return events
}

// releaseAll releases every held key.
func (h *holdTracker) releaseAll() []core.KeyEvent {
	var events []core.KeyEvent
	for i := range h.keys {
		if h.keys[i].down {
			h.keys[i].down = false
			events = append(events, core.Release(holdable[i]))
		}
	}
	return events
}
