// Package widget holds the state of the interactive page elements: boolean
// toggles, the FAQ accordion, the tab set, and the key flash.
package widget

// Toggle is a boolean visual state with a caption for each side.
type Toggle struct {
	on         bool
	onCaption  string
	offCaption string
}

// NewToggle returns a toggle that starts off.
func NewToggle(onCaption, offCaption string) *Toggle {
	return &Toggle{onCaption: onCaption, offCaption: offCaption}
}

// Toggle flips the state and returns the new value.
func (t *Toggle) Toggle() bool {
	t.on = !t.on
	return t.on
}

func (t *Toggle) Set(on bool) { t.on = on }
func (t *Toggle) On() bool    { return t.on }

// Caption returns the caption for the current state.
func (t *Toggle) Caption() string {
	if t.on {
		return t.onCaption
	}
	return t.offCaption
}
