// Package validate provides scalar checks shared by config validation.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hay-kot/criterio"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Required fails when s is empty after trimming whitespace.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// HexColor fails unless s is a #RRGGBB color.
func HexColor(s string) error {
	if !hexColor.MatchString(s) {
		return fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	return nil
}

// RequiredField returns a criterio validator for a required value.
func RequiredField(field, s string) error {
	return criterio.Run(field, s, Required)
}

// HexColorField returns a criterio validator for a color value.
func HexColorField(field, s string) error {
	return criterio.Run(field, s, HexColor)
}
