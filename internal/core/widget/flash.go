package widget

import (
	"math/rand/v2"
	"time"
)

// DefaultFlashColors are the background colors picked on a key press.
var DefaultFlashColors = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFBE0B", "#FB5607", "#8338EC"}

// KeyFlash sets a random background color on every key press. The caller
// schedules Reset after the flash duration.
type KeyFlash struct {
	colors  []string
	pick    func(n int) int
	current string
}

// NewKeyFlash creates a flash over colors. A nil pick uses math/rand.
func NewKeyFlash(colors []string, pick func(n int) int) *KeyFlash {
	if len(colors) == 0 {
		colors = DefaultFlashColors
	}
	if pick == nil {
		pick = rand.IntN
	}
	return &KeyFlash{colors: colors, pick: pick}
}

// Trigger picks a new color and returns it.
func (f *KeyFlash) Trigger() string {
	f.current = f.colors[f.pick(len(f.colors))]
	return f.current
}

// Reset clears the color.
func (f *KeyFlash) Reset() { f.current = "" }

// Color returns the active color, or "" when none is set.
func (f *KeyFlash) Color() string { return f.current }

// DoubleClick detects two activations within a window.
type DoubleClick struct {
	window time.Duration
	now    func() time.Time
	last   time.Time
}

// NewDoubleClick creates a detector. A nil now uses time.Now.
func NewDoubleClick(window time.Duration, now func() time.Time) *DoubleClick {
	if now == nil {
		now = time.Now
	}
	return &DoubleClick{window: window, now: now}
}

// Click records an activation and reports whether it completes a double
// click. A completed double click starts a fresh sequence.
func (d *DoubleClick) Click() bool {
	t := d.now()
	if !d.last.IsZero() && t.Sub(d.last) <= d.window {
		d.last = time.Time{}
		return true
	}
	d.last = t
	return false
}
