package form

import tea "github.com/charmbracelet/bubbletea"

// Field is the interface implemented by all form field types. The dialog
// drives its fields only through it.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(v string)
	Label() string

	// SetError sets the message slot and the error flag.
	SetError(msg string, flagged bool)
	Error() string
	Flagged() bool
}
