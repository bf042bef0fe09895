// Package styles provides shared lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pagekit/internal/core/counter"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// CurrentTheme is the name of the active theme.
var CurrentTheme string

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	AppStyle     lipgloss.Style
	HeaderStyle  lipgloss.Style
	TextStyle    lipgloss.Style
	TextMuted    lipgloss.Style
	SectionTitle lipgloss.Style

	SectionTabStyle       lipgloss.Style
	SectionTabActiveStyle lipgloss.Style

	// Event boxes. The cursor style wraps whichever box is selected.
	BoxStyle         lipgloss.Style
	BoxCursorStyle   lipgloss.Style
	BoxActiveStyle   lipgloss.Style
	BoxHoverStyle    lipgloss.Style
	BoxEnlargedStyle lipgloss.Style

	CounterStyle lipgloss.Style
	ButtonStyle  lipgloss.Style

	FAQQuestionStyle       lipgloss.Style
	FAQQuestionCursorStyle lipgloss.Style
	FAQAnswerStyle         lipgloss.Style

	TabButtonStyle       lipgloss.Style
	TabButtonActiveStyle lipgloss.Style
	TabPaneStyle         lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormFieldErrorStyle   lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
	FormButtonStyle       lipgloss.Style
	FormButtonFocusStyle  lipgloss.Style
	FormSuccessStyle      lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(name string, p Palette) {
	CurrentTheme = name
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	AppStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Padding(1, 2)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TextStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TextMuted = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SectionTitle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1)

	SectionTabStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ColorMuted)
	SectionTabActiveStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(1, 2).
		Width(46)
	BoxCursorStyle = BoxStyle.
		BorderForeground(ColorPrimary)
	BoxActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorSecondary)
	BoxHoverStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary)
	BoxEnlargedStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(1, 0)

	CounterStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2)
	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorForeground)

	FAQQuestionStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	FAQQuestionCursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FAQAnswerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingLeft(4)

	TabButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ColorMuted).
		Background(ColorSurface)
	TabButtonActiveStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ColorBackground).
		Background(ColorSecondary).
		Bold(true)
	TabPaneStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(ColorSurface).
		Padding(1, 2).
		Width(60)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = FormFieldStyle.
		BorderForeground(ColorPrimary)
	FormFieldErrorStyle = FormFieldStyle.
		BorderForeground(ColorError)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormButtonStyle = lipgloss.NewStyle().
		Padding(0, 3).
		Background(ColorSurface).
		Foreground(ColorMuted)
	FormButtonFocusStyle = lipgloss.NewStyle().
		Padding(0, 3).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	FormSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
}

// CounterColor returns the palette color for a counter tone.
func CounterColor(t counter.Tone) lipgloss.Color {
	switch t {
	case counter.TonePositive:
		return CurrentPalette.CounterPositive
	case counter.ToneNegative:
		return CurrentPalette.CounterNegative
	default:
		return CurrentPalette.CounterNeutral
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(DefaultTheme, themes[DefaultTheme])
}
