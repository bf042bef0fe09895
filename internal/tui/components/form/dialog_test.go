package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pagekit/internal/core/registration"
	"github.com/colonyops/pagekit/pkg/tuitest"
)

func newDialog() (*Dialog, *registration.Form) {
	form := registration.NewForm()
	return NewDialog("Registration", form), form
}

func typeInto(d *Dialog, s string) {
	for _, msg := range tuitest.Type(s) {
		d.Update(msg)
	}
}

func focus(t *testing.T, d *Dialog, id registration.FieldID) {
	t.Helper()
	for range len(registration.Fields) + 1 {
		if got, ok := d.FocusedField(); ok && got == id {
			return
		}
		d.Update(tuitest.KeyTab())
	}
	t.Fatalf("could not focus %s", id)
}

func fillValid(t *testing.T, d *Dialog) {
	t.Helper()
	values := map[registration.FieldID]string{
		registration.FieldName:            "Jo",
		registration.FieldEmail:           "a@b.co",
		registration.FieldPassword:        "12345678",
		registration.FieldConfirmPassword: "12345678",
		registration.FieldAge:             "30",
	}
	for _, id := range registration.Fields {
		focus(t, d, id)
		typeInto(d, values[id])
	}
}

func submittedResult(t *testing.T, cmd tea.Cmd) registration.Result {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(SubmittedMsg)
	require.True(t, ok)
	return msg.Result
}

func TestDialog_Focus(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		d, _ := newDialog()
		id, ok := d.FocusedField()
		require.True(t, ok)
		assert.Equal(t, registration.FieldName, id)
		assert.True(t, d.Typing())
	})

	t.Run("tab cycles through fields and the button", func(t *testing.T) {
		d, _ := newDialog()
		for _, want := range registration.Fields[1:] {
			d.Update(tuitest.KeyTab())
			got, ok := d.FocusedField()
			require.True(t, ok)
			assert.Equal(t, want, got)
		}

		d.Update(tuitest.KeyTab())
		_, ok := d.FocusedField()
		assert.False(t, ok, "submit button has focus")
		assert.False(t, d.Typing())

		d.Update(tuitest.KeyTab())
		got, _ := d.FocusedField()
		assert.Equal(t, registration.FieldName, got, "focus wraps")
	})

	t.Run("shift+tab wraps backwards", func(t *testing.T) {
		d, _ := newDialog()
		d.Update(tuitest.KeyShiftTab())
		_, ok := d.FocusedField()
		assert.False(t, ok)

		d.Update(tuitest.KeyShiftTab())
		got, _ := d.FocusedField()
		assert.Equal(t, registration.FieldAge, got)
	})

	t.Run("enter on a field advances", func(t *testing.T) {
		d, _ := newDialog()
		d.Update(tuitest.KeyEnter())
		got, _ := d.FocusedField()
		assert.Equal(t, registration.FieldEmail, got)
	})

	t.Run("blur and refocus keep position", func(t *testing.T) {
		d, _ := newDialog()
		d.Update(tuitest.KeyTab())
		d.Blur()
		assert.False(t, d.Typing())

		d.Focus()
		assert.True(t, d.Typing())
		got, _ := d.FocusedField()
		assert.Equal(t, registration.FieldEmail, got)
	})
}

func TestDialog_Submit(t *testing.T) {
	t.Run("empty submit flags fields", func(t *testing.T) {
		d, _ := newDialog()

		res := submittedResult(t, d.Submit())

		assert.False(t, res.Valid)
		assert.Equal(t, registration.MsgNameRequired, d.Field(registration.FieldName).Error())
		assert.True(t, d.Field(registration.FieldAge).Flagged())
		assert.False(t, d.Field(registration.FieldConfirmPassword).Flagged())

		view := tuitest.StripANSI(d.View())
		assert.Contains(t, view, registration.MsgEmailRequired)
		assert.NotContains(t, view, SuccessNotice)
	})

	t.Run("enter on the button submits", func(t *testing.T) {
		d, _ := newDialog()
		d.Update(tuitest.KeyShiftTab())

		_, cmd := d.Update(tuitest.KeyEnter())

		res := submittedResult(t, cmd)
		assert.False(t, res.Valid)
	})

	t.Run("ctrl+s submits from a field", func(t *testing.T) {
		d, _ := newDialog()
		_, cmd := d.Update(tuitest.Key(tea.KeyCtrlS))
		submittedResult(t, cmd)
	})

	t.Run("valid submit clears inputs and shows notice", func(t *testing.T) {
		d, form := newDialog()
		fillValid(t, d)

		res := submittedResult(t, d.Submit())

		assert.True(t, res.Valid)
		assert.True(t, form.NoticeVisible())
		for _, id := range registration.Fields {
			assert.Empty(t, d.Field(id).Value(), "field %s should be reset", id)
			assert.False(t, d.Field(id).Flagged())
		}
		assert.Contains(t, tuitest.StripANSI(d.View()), SuccessNotice)
	})
}

func TestDialog_LiveCorrection(t *testing.T) {
	t.Run("typing a valid value clears only that field", func(t *testing.T) {
		d, _ := newDialog()
		d.Submit()
		require.True(t, d.Field(registration.FieldName).Flagged())

		typeInto(d, "J")

		assert.False(t, d.Field(registration.FieldName).Flagged())
		assert.Empty(t, d.Field(registration.FieldName).Error())
		assert.True(t, d.Field(registration.FieldEmail).Flagged())
	})

	t.Run("partial input keeps the error", func(t *testing.T) {
		d, _ := newDialog()
		d.Submit()
		focus(t, d, registration.FieldEmail)

		typeInto(d, "a@b")

		assert.True(t, d.Field(registration.FieldEmail).Flagged())
		assert.Equal(t, registration.MsgEmailRequired, d.Field(registration.FieldEmail).Error())

		typeInto(d, ".co")
		assert.False(t, d.Field(registration.FieldEmail).Flagged())
	})

	t.Run("confirm clears once it matches", func(t *testing.T) {
		d, _ := newDialog()
		focus(t, d, registration.FieldPassword)
		typeInto(d, "abcdefgh")
		d.Submit()
		require.True(t, d.Field(registration.FieldConfirmPassword).Flagged())

		focus(t, d, registration.FieldConfirmPassword)
		typeInto(d, "abcdefg")
		assert.True(t, d.Field(registration.FieldConfirmPassword).Flagged())

		typeInto(d, "h")
		assert.False(t, d.Field(registration.FieldConfirmPassword).Flagged())
	})

	t.Run("deleting back to empty does not raise an error", func(t *testing.T) {
		d, _ := newDialog()
		typeInto(d, "J")
		d.Update(tuitest.KeyBackspace())

		assert.Empty(t, d.Field(registration.FieldName).Value())
		assert.False(t, d.Field(registration.FieldName).Flagged())
	})
}

func TestDialog_FieldsInDeclaredOrder(t *testing.T) {
	d, _ := newDialog()

	for _, spec := range registration.Specs() {
		f := d.Field(spec.ID)
		require.NotNil(t, f, spec.ID)
		assert.Equal(t, spec.Label, f.Label())
	}
	assert.Nil(t, d.Field("nickname"))

	first, ok := d.FocusedField()
	require.True(t, ok)
	assert.Equal(t, registration.FieldName, first)
	assert.True(t, d.Field(first).Focused())
}
