package registration

// Form is the display state of the registration form: the current values,
// one message slot and one error flag per field, and the success notice.
//
// Errors are only ever set by Submit. Input can clear them but never sets
// them.
type Form struct {
	values   Values
	messages map[FieldID]string
	flags    map[FieldID]bool
	notice   bool
}

// NewForm returns an empty form with no errors and the notice hidden.
func NewForm() *Form {
	return &Form{
		values:   make(Values, len(Fields)),
		messages: make(map[FieldID]string, len(Fields)),
		flags:    make(map[FieldID]bool, len(Fields)),
	}
}

// Input records a new value for a field and runs the live check for that
// field only. It returns true when the check cleared an error indicator.
func (f *Form) Input(id FieldID, value string) bool {
	if _, ok := Spec(id); !ok {
		return false
	}
	f.values[id] = value

	if !Passes(id, f.values) {
		return false
	}

	cleared := f.flags[id] || f.messages[id] != ""
	f.messages[id] = ""
	f.flags[id] = false
	return cleared
}

// Submit clears every message and flag, evaluates all fields, and marks the
// failing ones. A valid submission resets all values and shows the notice.
func (f *Form) Submit() Result {
	for _, id := range Fields {
		f.messages[id] = ""
		f.flags[id] = false
	}

	res := Validate(f.values)
	for _, o := range res.Outcomes {
		if !o.Valid {
			f.messages[o.Field] = o.Message
			f.flags[o.Field] = true
		}
	}

	if res.Valid {
		for _, id := range Fields {
			f.values[id] = ""
		}
		f.notice = true
	}

	return res
}

func (f *Form) Value(id FieldID) string   { return f.values[id] }
func (f *Form) Message(id FieldID) string { return f.messages[id] }
func (f *Form) HasError(id FieldID) bool  { return f.flags[id] }

// Values returns a copy of the current values.
func (f *Form) Values() Values {
	out := make(Values, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// NoticeVisible reports whether the success notice is shown.
func (f *Form) NoticeVisible() bool { return f.notice }

// HideNotice hides the success notice.
func (f *Form) HideNotice() { f.notice = false }
