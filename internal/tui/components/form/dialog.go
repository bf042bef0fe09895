package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pagekit/internal/core/registration"
	"github.com/colonyops/pagekit/internal/core/styles"
)

// SuccessNotice is shown after a valid submission.
const SuccessNotice = "Form submitted successfully!"

// SubmittedMsg is sent after the dialog submits the registration form.
type SubmittedMsg struct {
	Result registration.Result
}

// CorrectedMsg is sent when a live check clears a field's error.
type CorrectedMsg struct {
	Field registration.FieldID
}

// Dialog binds a set of text fields to a registration form. It manages focus
// cycling across the fields and the submit button, forwards every keystroke
// to the live check, and submits on enter over the button or ctrl+s.
type Dialog struct {
	form         *registration.Form
	fields       []Field
	ids          []registration.FieldID
	focusedField int // len(fields) is the submit button
	Title        string
}

// NewDialog creates a dialog for form. The first field is focused.
func NewDialog(title string, form *registration.Form) *Dialog {
	d := &Dialog{form: form, Title: title}

	for _, spec := range registration.Specs() {
		f := NewTextField(spec.Label, placeholders[spec.ID])
		if spec.ID == registration.FieldPassword || spec.ID == registration.FieldConfirmPassword {
			f.Masked()
		}
		d.fields = append(d.fields, f)
		d.ids = append(d.ids, spec.ID)
	}

	d.fields[0].Focus()
	d.Sync()
	return d
}

var placeholders = map[registration.FieldID]string{
	registration.FieldName:            "Your name",
	registration.FieldEmail:           "you@example.com",
	registration.FieldPassword:        "At least 8 characters",
	registration.FieldConfirmPassword: "Repeat your password",
	registration.FieldAge:             "13-120",
}

// Update handles key input for the dialog.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return d.advanceFocus()
	case "shift+tab", "up":
		return d.retreatFocus()
	case "ctrl+s":
		return d, d.Submit()
	case "enter":
		if d.onSubmitButton() {
			return d, d.Submit()
		}
		return d.advanceFocus()
	}

	return d.updateFocusedField(msg)
}

// Submit evaluates the whole form and reflects the outcome in the fields.
func (d *Dialog) Submit() tea.Cmd {
	res := d.form.Submit()
	d.Sync()
	return func() tea.Msg { return SubmittedMsg{Result: res} }
}

// Sync copies values, messages, and flags from the form into the fields.
func (d *Dialog) Sync() {
	for i, id := range d.ids {
		f := d.fields[i]
		if f.Value() != d.form.Value(id) {
			f.SetValue(d.form.Value(id))
		}
		f.SetError(d.form.Message(id), d.form.HasError(id))
	}
}

// View renders the fields, the submit button, the notice, and help text.
func (d *Dialog) View() string {
	parts := []string{styles.FormTitleStyle.Render(d.Title), ""}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	button := styles.FormButtonStyle
	if d.onSubmitButton() {
		button = styles.FormButtonFocusStyle
	}
	parts = append(parts, "", button.Render("Submit"))

	if d.form.NoticeVisible() {
		parts = append(parts, "", styles.FormSuccessStyle.Render(styles.IconCheck+" "+SuccessNotice))
	}

	help := styles.FormHelpStyle.Render("tab: next  shift+tab: prev  enter: next/submit  ctrl+s: submit")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Field returns the field bound to id, or nil.
func (d *Dialog) Field(id registration.FieldID) Field {
	for i, fid := range d.ids {
		if fid == id {
			return d.fields[i]
		}
	}
	return nil
}

// FocusedField returns the id of the focused field. The boolean is false
// when the submit button has focus.
func (d *Dialog) FocusedField() (registration.FieldID, bool) {
	if d.onSubmitButton() {
		return "", false
	}
	return d.ids[d.focusedField], true
}

// Blur removes focus from every field, keeping the focus position.
func (d *Dialog) Blur() {
	if !d.onSubmitButton() {
		d.fields[d.focusedField].Blur()
	}
}

// Focus restores focus to the remembered position.
func (d *Dialog) Focus() tea.Cmd {
	if d.onSubmitButton() {
		return nil
	}
	return d.fields[d.focusedField].Focus()
}

// Typing reports whether keystrokes currently go to a text field.
func (d *Dialog) Typing() bool {
	return !d.onSubmitButton() && d.fields[d.focusedField].Focused()
}

func (d *Dialog) onSubmitButton() bool {
	return d.focusedField == len(d.fields)
}

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	return d.moveFocus((d.focusedField + 1) % (len(d.fields) + 1))
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	n := len(d.fields) + 1
	return d.moveFocus((d.focusedField - 1 + n) % n)
}

func (d *Dialog) moveFocus(next int) (*Dialog, tea.Cmd) {
	d.Blur()
	d.focusedField = next
	return d, d.Focus()
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if d.onSubmitButton() {
		return d, nil
	}

	f := d.fields[d.focusedField]
	before := f.Value()

	var cmd tea.Cmd
	_, cmd = f.Update(msg)

	if f.Value() == before {
		return d, cmd
	}

	id := d.ids[d.focusedField]
	if d.form.Input(id, f.Value()) {
		f.SetError(d.form.Message(id), d.form.HasError(id))
		return d, tea.Batch(cmd, func() tea.Msg { return CorrectedMsg{Field: id} })
	}
	return d, cmd
}
