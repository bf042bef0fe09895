package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pagekit/internal/core/styles"
)

var _ Field = (*TextField)(nil)

// TextField is a single-line text input with an error message slot and an
// error flag that changes its border.
type TextField struct {
	input   textinput.Model
	label   string
	focused bool
	errMsg  string
	flagged bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	return &TextField{
		input: ti,
		label: label,
	}
}

// Masked hides the typed characters, for password inputs.
func (f *TextField) Masked() *TextField {
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	titleStyle := styles.TextMuted
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	parts := []string{titleStyle.Render(f.label), f.input.View()}

	borderStyle := styles.FormFieldStyle
	switch {
	case f.flagged:
		borderStyle = styles.FormFieldErrorStyle
	case f.focused:
		borderStyle = styles.FormFieldFocusedStyle
	}

	field := borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if f.errMsg == "" {
		return field
	}
	return lipgloss.JoinVertical(lipgloss.Left, field, styles.FormErrorStyle.Render(f.errMsg))
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetValue replaces the input contents.
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }

// SetError sets the message slot and the error flag.
func (f *TextField) SetError(msg string, flagged bool) {
	f.errMsg = msg
	f.flagged = flagged
}

func (f *TextField) Error() string { return f.errMsg }
func (f *TextField) Flagged() bool { return f.flagged }
func (f *TextField) Focused() bool { return f.focused }
func (f *TextField) Value() string { return f.input.Value() }
func (f *TextField) Label() string { return f.label }
