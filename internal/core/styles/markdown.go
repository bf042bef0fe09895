package styles

import (
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// GlamourStyle returns a Glamour style config derived from the active theme.
// The document margin is removed so rendered text lines up with the
// surrounding lipgloss styles.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.LightStyleConfig
	if CurrentTheme == ThemeDark {
		cfg = glamourstyles.DarkStyleConfig
	}

	fg := colorPtr(ColorForeground)
	primary := colorPtr(ColorPrimary)
	secondary := colorPtr(ColorSecondary)
	muted := colorPtr(ColorMuted)

	noMargin := uint(0)
	cfg.Document.Margin = &noMargin
	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary
	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}

func colorPtr(c lipgloss.Color) *string {
	s := string(c)
	return &s
}
