package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pagekit/internal/core/styles"
)

func (m Model) handleInteractiveKey(keyStr string) (tea.Model, tea.Cmd) {
	if n, ok := tabShortcut(keyStr); ok {
		m.selectTab(n)
		return m, nil
	}

	switch keyStr {
	case "t":
		m.theme.Toggle()
		m.applyTheme()
		m.log.Debug().Ctx(m.ctx).Str("theme", styles.CurrentTheme).Msg("theme toggled")
	case "+", "=":
		m.counter.Increment()
	case "-", "_":
		m.counter.Decrement()
	case "0":
		m.counter.Reset()
	case "up", "k":
		if m.faqCursor > 0 {
			m.faqCursor--
		}
	case "down", "j":
		if m.faqCursor < m.faq.Len()-1 {
			m.faqCursor++
		}
	case "enter", " ":
		m.faq.Toggle(m.faqCursor)
	case "left", "h":
		m.tabs.Prev()
	case "right", "l":
		m.tabs.Next()
	}
	return m, nil
}

// tabShortcut maps alt+1 through alt+9 to a tab position starting at 1.
func tabShortcut(keyStr string) (int, bool) {
	d, ok := strings.CutPrefix(keyStr, "alt+")
	if !ok || len(d) != 1 || d[0] < '1' || d[0] > '9' {
		return 0, false
	}
	return int(d[0] - '0'), true
}

// selectTab activates the nth tab by its id.
func (m Model) selectTab(n int) {
	tabs := m.tabs.Tabs()
	if n > len(tabs) {
		m.log.Debug().Ctx(m.ctx).Int("tab", n).Msg("no tab at position")
		return
	}

	id := tabs[n-1].ID
	if err := m.tabs.Activate(id); err != nil {
		m.log.Warn().Ctx(m.ctx).Err(err).Msg("select tab")
		return
	}
	m.log.Debug().Ctx(m.ctx).Str("tab", id).Msg("tab selected")
}

func (m Model) interactiveView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.SectionTitle.Render("Theme"),
		m.themeView(),
		"",
		styles.SectionTitle.Render("Counter"),
		m.counterView(),
		"",
		styles.SectionTitle.Render("FAQ"),
		m.faqView(),
		"",
		styles.SectionTitle.Render("Tabs"),
		m.tabsView(),
	)
}

func (m Model) themeView() string {
	icon := styles.IconSun
	if m.theme.On() {
		icon = styles.IconMoon
	}
	return styles.ButtonStyle.Render("t") + " " + styles.TextStyle.Render(icon+" Current mode: "+m.theme.Caption())
}

func (m Model) counterView() string {
	v := m.counter.Value()
	value := styles.CounterStyle.Foreground(styles.CounterColor(m.counter.Tone())).Render(strconv.Itoa(v))
	return lipgloss.JoinHorizontal(lipgloss.Center,
		styles.ButtonStyle.Render("-"), value, styles.ButtonStyle.Render("+"),
		"  ", styles.TextMuted.Render("0 to reset"),
	)
}

func (m Model) faqView() string {
	var b strings.Builder
	for i, item := range m.faq.Items() {
		if i > 0 {
			b.WriteString("\n")
		}
		line := item.Icon() + " " + item.Question
		if i == m.faqCursor {
			b.WriteString(styles.FAQQuestionCursorStyle.Render(styles.IconCursor + " " + line))
		} else {
			b.WriteString(styles.FAQQuestionStyle.Render("  " + line))
		}
		if item.Open() {
			b.WriteString("\n")
			b.WriteString(styles.FAQAnswerStyle.Render(m.markdown.render(item.Answer)))
		}
	}
	return b.String()
}

func (m Model) tabsView() string {
	tabs := m.tabs.Tabs()
	if len(tabs) == 0 {
		return ""
	}

	buttons := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if m.tabs.IsActive(tab.ID) {
			buttons = append(buttons, styles.TabButtonActiveStyle.Render(tab.Title))
		} else {
			buttons = append(buttons, styles.TabButtonStyle.Render(tab.Title))
		}
	}

	active, _ := m.tabs.Active()
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		styles.TabPaneStyle.Render(m.markdown.render(active.Body)),
	)
}
