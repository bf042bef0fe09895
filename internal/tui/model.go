// Package tui implements the interactive terminal app: an events page, an
// interactive components page, and the registration form.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/pagekit/internal/core/config"
	"github.com/colonyops/pagekit/internal/core/counter"
	"github.com/colonyops/pagekit/internal/core/logging"
	"github.com/colonyops/pagekit/internal/core/registration"
	"github.com/colonyops/pagekit/internal/core/schedule"
	"github.com/colonyops/pagekit/internal/core/styles"
	"github.com/colonyops/pagekit/internal/core/widget"
	"github.com/colonyops/pagekit/internal/tui/components/form"
)

// Options configures the TUI model.
type Options struct {
	BuildInfo BuildInfo

	// Now and PickColor replace the clock and the random source. Both default
	// to the real implementations when nil.
	Now       func() time.Time
	PickColor func(n int) int
}

// Model is the root bubbletea model.
type Model struct {
	cfg     *config.Config
	keys    keyMap
	help    help.Model
	log     zerolog.Logger
	ctx     context.Context
	build   BuildInfo
	width   int
	height  int
	section Section

	// Events section.
	boxCursor      eventBox
	pointerOnHover bool
	clickBox       *widget.Toggle
	hoverBox       *widget.Toggle
	enlargeBox     *widget.Toggle
	doubleClick    *widget.DoubleClick
	flash          *widget.KeyFlash
	keyInput       textinput.Model

	// Interactive section.
	theme     *widget.Toggle
	counter   *counter.Counter
	faq       *widget.Accordion
	faqCursor int
	tabs      *widget.TabSet
	markdown  *markdown

	// Form section.
	form   *registration.Form
	dialog *form.Dialog

	tasks *schedule.Registry
}

// New creates the root model from cfg.
func New(ctx context.Context, cfg *config.Config, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	faqItems := make([]widget.AccordionItem, 0, len(cfg.FAQ))
	for _, e := range cfg.FAQ {
		faqItems = append(faqItems, widget.AccordionItem{Question: e.Question, Answer: e.Answer})
	}

	tabs := make([]widget.Tab, 0, len(cfg.Tabs))
	for _, e := range cfg.Tabs {
		tabs = append(tabs, widget.Tab{ID: e.ID, Title: e.Title, Body: e.Body})
	}

	keyInput := textinput.New()
	keyInput.Placeholder = "Type something..."
	keyInput.Width = 20

	reg := registration.NewForm()
	dialog := form.NewDialog("Registration", reg)
	dialog.Blur()

	log := logging.Component("tui")

	m := Model{
		cfg:         cfg,
		keys:        defaultKeyMap(),
		help:        help.New(),
		log:         log,
		build:       opts.BuildInfo,
		clickBox:    widget.NewToggle("Clicked! Box is now active.", "Click this box to change its color"),
		hoverBox:    widget.NewToggle("Hovering!", "Hover over this box"),
		enlargeBox:  widget.NewToggle("Double-clicked! Box is now enlarged.", "Double-click this box to toggle its size"),
		doubleClick: widget.NewDoubleClick(cfg.Timings.DoubleClick, now),
		flash:       widget.NewKeyFlash(cfg.FlashColors, opts.PickColor),
		keyInput:    keyInput,
		theme:       widget.NewToggle("Dark", "Light"),
		counter:     &counter.Counter{},
		faq:         widget.NewAccordion(faqItems),
		tabs:        widget.NewTabSet(tabs),
		markdown:    newMarkdown(log),
		form:        reg,
		dialog:      dialog,
		tasks:       schedule.NewRegistry(),
	}

	m.theme.Set(cfg.Theme == config.ThemeDark)
	m.applyTheme()
	m.ctx = logging.WithSection(ctx, m.section.String())

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.log.Debug().Ctx(m.ctx).Str("version", m.build.Version).Msg("tui started")
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case taskFiredMsg:
		return m.handleTaskFired(msg)

	case form.SubmittedMsg:
		return m.handleSubmitted(msg)
	case form.CorrectedMsg:
		m.log.Debug().Ctx(m.ctx).Str("field", string(msg.Field)).Msg("field corrected")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.section == SectionEvents {
			return m.handleEventsMouse(msg)
		}
		return m, nil
	}

	return m.handleFallthrough(msg)
}

// handleFallthrough forwards non-key messages, like cursor blinks, to the
// focused input.
func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.section {
	case SectionEvents:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case SectionForm:
		_, cmd = m.dialog.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch keyStr {
	case "ctrl+c":
		return m.quit()
	case "ctrl+n":
		return m.switchSection(m.section.next())
	case "ctrl+p":
		return m.switchSection(m.section.prev())
	}

	if !m.typing() {
		switch keyStr {
		case "q":
			return m.quit()
		case "1", "2", "3":
			return m.switchSection(Section(keyStr[0] - '1'))
		}
	}

	switch m.section {
	case SectionEvents:
		return m.handleEventsKey(msg, keyStr)
	case SectionInteractive:
		return m.handleInteractiveKey(keyStr)
	case SectionForm:
		return m.handleFormKey(msg, keyStr)
	}
	return m, nil
}

// quit drops every pending task so nothing acts on a model that is shutting
// down.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.tasks.CancelAll()
	m.log.Debug().Ctx(m.ctx).Msg("quit")
	return m, tea.Quit
}

// typing reports whether keystrokes currently go to a text input.
func (m Model) typing() bool {
	switch m.section {
	case SectionEvents:
		return m.boxCursor == boxKeyInput && m.keyInput.Focused()
	case SectionForm:
		return m.dialog.Typing()
	}
	return false
}

func (m Model) switchSection(next Section) (tea.Model, tea.Cmd) {
	if next == m.section {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.section {
	case SectionEvents:
		m.leaveBox(m.boxCursor)
		m.trackPointer(false)
	case SectionForm:
		m.dialog.Blur()
	}

	m.section = next
	m.ctx = logging.WithSection(m.ctx, next.String())

	switch next {
	case SectionEvents:
		cmd = m.enterBox(m.boxCursor)
	case SectionForm:
		cmd = m.dialog.Focus()
	}

	m.log.Debug().Ctx(m.ctx).Msg("section changed")
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	if !m.dialog.Typing() {
		if _, onField := m.dialog.FocusedField(); onField && keyStr == "enter" {
			return m, m.dialog.Focus()
		}
	} else if keyStr == "esc" {
		m.dialog.Blur()
		return m, nil
	}

	_, cmd := m.dialog.Update(msg)
	return m, cmd
}

func (m Model) handleSubmitted(msg form.SubmittedMsg) (tea.Model, tea.Cmd) {
	if !msg.Result.Valid {
		ev := m.log.Debug().Ctx(m.ctx)
		for _, o := range msg.Result.Outcomes {
			if !o.Valid {
				ev = ev.Str(string(o.Field), o.Message)
			}
		}
		ev.Msg("submission rejected")
		return m, nil
	}

	m.log.Info().Ctx(m.ctx).Msg("form submitted")
	return m, m.schedule(taskNoticeHide, m.cfg.Timings.NoticeHide)
}

// applyTheme activates the palette matching the theme toggle.
func (m Model) applyTheme() {
	name := styles.ThemeLight
	if m.theme.On() {
		name = styles.ThemeDark
	}
	p, _ := styles.GetPalette(name)
	styles.SetTheme(name, p)
}
