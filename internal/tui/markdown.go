package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/colonyops/pagekit/internal/core/styles"
)

// markdownWidth is the wrap width for FAQ answers and tab bodies.
const markdownWidth = 56

// markdown renders config-supplied text with glamour. Output is cached per
// theme since the same handful of strings is drawn on every frame.
type markdown struct {
	log      zerolog.Logger
	theme    string
	renderer *glamour.TermRenderer
	cache    map[string]string
}

func newMarkdown(log zerolog.Logger) *markdown {
	return &markdown{log: log, cache: make(map[string]string)}
}

// render returns text as rendered markdown, or text unchanged when glamour
// fails.
func (md *markdown) render(text string) string {
	if md.theme != styles.CurrentTheme {
		md.theme = styles.CurrentTheme
		md.renderer = nil
		clear(md.cache)
	}

	if out, ok := md.cache[text]; ok {
		return out
	}

	if md.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(markdownWidth),
		)
		if err != nil {
			md.log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw text")
			return text
		}
		md.renderer = r
	}

	rendered, err := md.renderer.Render(text)
	if err != nil {
		md.log.Debug().Err(err).Msg("failed to render markdown, showing raw text")
		return text
	}

	out := strings.TrimSpace(rendered)
	md.cache[text] = out
	return out
}
