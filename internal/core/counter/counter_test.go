package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var c Counter
		assert.Equal(t, 0, c.Value())
		assert.Equal(t, ToneNeutral, c.Tone())
	})

	t.Run("increment and decrement", func(t *testing.T) {
		var c Counter
		assert.Equal(t, 1, c.Increment())
		assert.Equal(t, 2, c.Increment())
		assert.Equal(t, TonePositive, c.Tone())

		c.Decrement()
		c.Decrement()
		assert.Equal(t, -1, c.Decrement())
		assert.Equal(t, ToneNegative, c.Tone())
	})

	t.Run("reset", func(t *testing.T) {
		var c Counter
		c.Decrement()
		c.Reset()
		assert.Equal(t, 0, c.Value())
		assert.Equal(t, ToneNeutral, c.Tone())
	})
}

func TestTone_String(t *testing.T) {
	assert.Equal(t, "positive", TonePositive.String())
	assert.Equal(t, "negative", ToneNegative.String())
	assert.Equal(t, "neutral", ToneNeutral.String())
}
