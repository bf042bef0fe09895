package registration

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func valuesGen() gopter.Gen {
	pick := func(options ...string) gopter.Gen {
		gens := make([]gopter.Gen, len(options))
		for i, o := range options {
			gens[i] = gen.Const(o)
		}
		return gen.OneGenOf(gens...)
	}

	return gopter.CombineGens(
		gen.OneGenOf(pick("", " ", "Jo"), gen.AlphaString()),
		gen.OneGenOf(pick("", "bad", "a@b.co", "a@b"), gen.RegexMatch(`^[a-z]{1,5}@[a-z]{1,5}\.[a-z]{2,3}$`)),
		pick("", "short", "abcdefgh", "12345678"),
		pick("", "short", "abcdefgh", "12345678"),
		gen.OneGenOf(pick("", "abc"), gen.IntRange(0, 200).Map(strconv.Itoa)),
	).Map(func(vals []any) Values {
		return Values{
			FieldName:            vals[0].(string),
			FieldEmail:           vals[1].(string),
			FieldPassword:        vals[2].(string),
			FieldConfirmPassword: vals[3].(string),
			FieldAge:             vals[4].(string),
		}
	})
}

func TestFormProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("flag set iff field fails after submit", prop.ForAll(
		func(v Values) bool {
			f := NewForm()
			fill(f, v)
			f.Submit()

			for _, id := range Fields {
				fails := !Passes(id, v)
				if f.HasError(id) != fails {
					return false
				}
				if fails != (f.Message(id) != "") {
					return false
				}
			}
			return true
		},
		valuesGen(),
	))

	properties.Property("live input never raises an error", prop.ForAll(
		func(v Values) bool {
			f := NewForm()
			fill(f, v)
			for _, id := range Fields {
				if f.HasError(id) || f.Message(id) != "" {
					return false
				}
			}
			return true
		},
		valuesGen(),
	))

	properties.Property("submit is idempotent for unchanged values", prop.ForAll(
		func(v Values) bool {
			a := NewForm()
			fill(a, v)
			first := a.Submit()
			if first.Valid {
				return true
			}
			second := a.Submit()
			return !second.Valid && len(first.Outcomes) == len(second.Outcomes)
		},
		valuesGen(),
	))

	properties.TestingRun(t)
}
