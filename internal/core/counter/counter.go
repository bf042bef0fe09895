// Package counter provides the owned integer behind the counter game.
package counter

// Tone describes the sign of the counter value and drives its display color.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Counter is an integer that can be incremented, decremented, and reset.
// The zero value is ready to use and starts at 0.
type Counter struct {
	value int
}

func (c *Counter) Increment() int { c.value++; return c.value }
func (c *Counter) Decrement() int { c.value--; return c.value }
func (c *Counter) Reset()         { c.value = 0 }
func (c *Counter) Value() int     { return c.value }

// Tone returns the tone for the current value.
func (c *Counter) Tone() Tone {
	switch {
	case c.value > 0:
		return TonePositive
	case c.value < 0:
		return ToneNegative
	default:
		return ToneNeutral
	}
}
