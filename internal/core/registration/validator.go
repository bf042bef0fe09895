package registration

import (
	"errors"

	"github.com/hay-kot/criterio"
)

// Outcome is the evaluation of one field. Message is the first failing
// rule's message and is empty when Valid.
type Outcome struct {
	Field   FieldID `json:"field"`
	Valid   bool    `json:"valid"`
	Message string  `json:"message,omitempty"`
}

// Result aggregates the outcome of every field.
type Result struct {
	Valid    bool      `json:"valid"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome returns the outcome for a single field.
func (r Result) Outcome(id FieldID) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Field == id {
			return o, true
		}
	}
	return Outcome{}, false
}

// Err returns the failures as criterio.FieldErrors, or nil when valid.
func (r Result) Err() error {
	var errs criterio.FieldErrorsBuilder
	for _, o := range r.Outcomes {
		if !o.Valid {
			errs = errs.Append(string(o.Field), errors.New(o.Message))
		}
	}
	return errs.ToError()
}

// Validate evaluates every field against the current values.
func Validate(v Values) Result {
	res := Result{Valid: true, Outcomes: make([]Outcome, 0, len(specs))}
	for _, s := range specs {
		o := s.Evaluate(v)
		if !o.Valid {
			res.Valid = false
		}
		res.Outcomes = append(res.Outcomes, o)
	}
	return res
}

// Passes reports whether a single field satisfies its full rule set.
// Unknown fields never pass.
func Passes(id FieldID, v Values) bool {
	s, ok := Spec(id)
	if !ok {
		return false
	}
	return s.Evaluate(v).Valid
}
