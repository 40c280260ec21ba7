package tui

import (
	"time"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// HeldKeys approximates key-up events. Terminals only report presses (and
// auto-repeat), so a direction counts as held for a window of ticks after
// its latest press.
type HeldKeys struct {
	hold int
	tick uint64
	last map[core.Action]uint64
}

// NewHeldKeys creates a tracker holding each press for hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold < 1 {
		hold = 1
	}
	return &HeldKeys{hold: hold, last: make(map[core.Action]uint64)}
}

// HoldTicks converts a hold duration to ticks at the given rate, at least one.
func HoldTicks(hold time.Duration, tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	tick := time.Second / time.Duration(tickRate)
	n := int((hold + tick - 1) / tick)
	if n < 1 {
		n = 1
	}
	return n
}

// Press records a press of a. Pressing one direction releases the opposite.
func (h *HeldKeys) Press(a core.Action) {
	h.last[a] = h.tick
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
}

// Frame returns the actions held at the current tick.
func (h *HeldKeys) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, at := range h.last {
		if h.tick-at < uint64(h.hold) { //#nosec G115 -- hold is positive
			f.Set(a)
		}
	}
	return f
}

// Advance moves to the next tick and forgets expired presses.
func (h *HeldKeys) Advance() {
	h.tick++
	for a, at := range h.last {
		if h.tick-at >= uint64(h.hold) { //#nosec G115 -- hold is positive
			delete(h.last, a)
		}
	}
}

// Release forgets every press.
func (h *HeldKeys) Release() {
	clear(h.last)
}
