package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pagekit/internal/core/styles"
)

// View renders the app. While a key flash color is set it fills the
// background of the whole screen.
func (m Model) View() string {
	var body string
	switch m.section {
	case SectionEvents:
		body = m.eventsView()
	case SectionInteractive:
		body = m.interactiveView()
	case SectionForm:
		body = m.dialog.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		"",
		body,
		"",
		m.help.ShortHelpView(m.keys.sectionHelp(m.section, m.typing())),
	)

	app := styles.AppStyle
	if m.theme.On() {
		app = app.Background(styles.ColorBackground)
	}
	if color := m.flash.Color(); color != "" {
		app = app.Background(lipgloss.Color(color))
	}
	if m.width > 0 {
		app = app.Width(m.width).Height(m.height)
	}
	return app.Render(content)
}

func (m Model) headerView() string {
	title := styles.HeaderStyle.Render("pagekit")
	if m.build.Version != "" {
		title += styles.TextMuted.Render(" " + m.build.Version)
	}

	tabs := make([]string, 0, len(Sections))
	for i, s := range Sections {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == m.section {
			tabs = append(tabs, styles.SectionTabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, styles.SectionTabStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, append([]string{title, "  "}, tabs...)...)
}
