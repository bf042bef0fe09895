// Package registration implements the registration form rules, submit-time
// evaluation, and live per-field correction.
package registration

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

// FieldID identifies a validated input slot.
type FieldID string

const (
	FieldName            FieldID = "name"
	FieldEmail           FieldID = "email"
	FieldPassword        FieldID = "password"
	FieldConfirmPassword FieldID = "confirm-password"
	FieldAge             FieldID = "age"
)

// Fields lists every field in declared order.
var Fields = []FieldID{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldAge,
}

// Error messages shown in a field's message slot.
const (
	MsgNameRequired     = "Name is required"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordRequired = "Password is required"
	MsgPasswordShort    = "Password must be at least 8 characters"
	MsgPasswordMismatch = "Passwords do not match"
	MsgAgeRequired      = "Age is required"
	MsgAgeRange         = "Age must be between 13 and 120"
)

const (
	MinPasswordLength = 8
	MinAge            = 13
	MaxAge            = 120
)

// jsSpace matches the characters a browser regex treats as \s. RE2's \s
// omits \v and every non-ASCII space.
const jsSpace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// isJSSpace reports whether r is in the jsSpace set, which is also what a
// browser's String.prototype.trim removes.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00a0, 0x1680,
		0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// jsTrim trims the jsSpace set from both ends of s.
func jsTrim(s string) string { return strings.TrimFunc(s, isJSSpace) }

// jsLength is the length of s in UTF-16 code units.
func jsLength(s string) int { return len(utf16.Encode([]rune(s))) }

// EmailPattern is a coarse local@domain.tld check, not an address parser.
var EmailPattern = regexp.MustCompile(`^[^` + jsSpace + `@]+@[^` + jsSpace + `@]+\.[^` + jsSpace + `@]+$`)

// Values holds the current raw value of each field.
type Values map[FieldID]string

// Rule is a predicate over the form values. Message is shown when Check
// returns false.
type Rule struct {
	Message string
	Check   func(v Values) bool
}

// FieldSpec is one validated field and its ordered rule set.
type FieldSpec struct {
	ID    FieldID
	Label string
	Rules []Rule
}

// Evaluate applies the rules in order and reports the first failure.
func (s FieldSpec) Evaluate(v Values) Outcome {
	for _, r := range s.Rules {
		if !r.Check(v) {
			return Outcome{Field: s.ID, Message: r.Message}
		}
	}
	return Outcome{Field: s.ID, Valid: true}
}

var specs = []FieldSpec{
	{
		ID:    FieldName,
		Label: "Name",
		Rules: []Rule{
			{Message: MsgNameRequired, Check: func(v Values) bool {
				return jsTrim(v[FieldName]) != ""
			}},
		},
	},
	{
		ID:    FieldEmail,
		Label: "Email",
		Rules: []Rule{
			{Message: MsgEmailRequired, Check: nonEmpty(FieldEmail)},
			{Message: MsgEmailInvalid, Check: func(v Values) bool {
				return EmailPattern.MatchString(v[FieldEmail])
			}},
		},
	},
	{
		ID:    FieldPassword,
		Label: "Password",
		Rules: []Rule{
			{Message: MsgPasswordRequired, Check: nonEmpty(FieldPassword)},
			{Message: MsgPasswordShort, Check: func(v Values) bool {
				return jsLength(v[FieldPassword]) >= MinPasswordLength
			}},
		},
	},
	{
		ID:    FieldConfirmPassword,
		Label: "Confirm Password",
		Rules: []Rule{
			{Message: MsgPasswordMismatch, Check: func(v Values) bool {
				return v[FieldConfirmPassword] == v[FieldPassword]
			}},
		},
	},
	{
		ID:    FieldAge,
		Label: "Age",
		Rules: []Rule{
			{Message: MsgAgeRequired, Check: nonEmpty(FieldAge)},
			{Message: MsgAgeRange, Check: func(v Values) bool {
				age, ok := ParseAge(v[FieldAge])
				return ok && age >= MinAge && age <= MaxAge
			}},
		},
	},
}

func nonEmpty(id FieldID) func(Values) bool {
	return func(v Values) bool { return v[id] != "" }
}

// ParseAge coerces an age string to a number. Surrounding whitespace is
// ignored; anything else that is not a finite number reports false.
func ParseAge(s string) (float64, bool) {
	s = jsTrim(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Specs returns the field specs in declared order.
func Specs() []FieldSpec {
	out := make([]FieldSpec, len(specs))
	copy(out, specs)
	return out
}

// Spec returns the FieldSpec for a single field.
func Spec(id FieldID) (FieldSpec, bool) {
	for _, s := range specs {
		if s.ID == id {
			return s, true
		}
	}
	return FieldSpec{}, false
}
