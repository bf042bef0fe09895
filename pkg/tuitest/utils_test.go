package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[31mred\x1b[0m   \nplain  \n\n"
	assert.Equal(t, "red\nplain", StripANSI(in))
}

func TestType(t *testing.T) {
	msgs := Type("ab")
	require.Len(t, msgs, 2)

	first, ok := msgs[0].(tea.KeyMsg)
	require.True(t, ok)
	assert.Equal(t, "a", first.String())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "enter", KeyEnter().String())
	assert.Equal(t, "tab", KeyTab().String())
	assert.Equal(t, "shift+tab", KeyShiftTab().String())
	assert.Equal(t, "backspace", KeyBackspace().String())
}

func TestMouse(t *testing.T) {
	click := MouseClick(3, 4)
	assert.Equal(t, 3, click.X)
	assert.Equal(t, 4, click.Y)
	assert.Equal(t, "left press", click.String())

	assert.Equal(t, tea.MouseActionMotion, MouseMove(0, 0).Action)
}
