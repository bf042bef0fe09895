// Package jsoncolor renders JSON documents with theme colors for terminal
// output.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pagekit/internal/core/styles"
)

type tokenStyles struct {
	key, str, num, yes, no, null, punct lipgloss.Style
}

func currentStyles() tokenStyles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return tokenStyles{
		key:   fg(styles.ColorPrimary),
		str:   fg(styles.ColorForeground),
		num:   fg(styles.ColorWarning),
		yes:   fg(styles.ColorSuccess),
		no:    fg(styles.ColorError),
		null:  fg(styles.ColorMuted),
		punct: fg(styles.ColorMuted),
	}
}

// Colorize pretty-prints data with the active theme. Booleans are colored as
// outcomes: true in the success color, false in the error color. Invalid JSON
// is returned unchanged.
func Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	st := currentStyles()
	raw := buf.String()

	var out strings.Builder
	for i := 0; i < len(raw); {
		rest := raw[i:]
		switch ch := raw[i]; {
		case ch == '"':
			end := findStringEnd(raw, i)
			str := raw[i : end+1]
			if after := strings.TrimLeft(raw[end+1:], " \t"); strings.HasPrefix(after, ":") {
				out.WriteString(st.key.Render(str))
			} else {
				out.WriteString(st.str.Render(str))
			}
			i = end + 1
		case ch == '-' || (ch >= '0' && ch <= '9'):
			end := i + 1
			for end < len(raw) && strings.IndexByte("0123456789.eE+-", raw[end]) >= 0 {
				end++
			}
			out.WriteString(st.num.Render(raw[i:end]))
			i = end
		case strings.HasPrefix(rest, "true"):
			out.WriteString(st.yes.Render("true"))
			i += len("true")
		case strings.HasPrefix(rest, "false"):
			out.WriteString(st.no.Render("false"))
			i += len("false")
		case strings.HasPrefix(rest, "null"):
			out.WriteString(st.null.Render("null"))
			i += len("null")
		case strings.IndexByte("{}[]:,", ch) >= 0:
			out.WriteString(st.punct.Render(string(ch)))
			i++
		default:
			out.WriteByte(ch)
			i++
		}
	}

	return out.String()
}

// findStringEnd returns the index of the closing quote for a JSON string starting at pos.
func findStringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == '"' {
			return i
		}
	}
	return len(s) - 1
}
