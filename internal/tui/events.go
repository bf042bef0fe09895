package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pagekit/internal/core/styles"
)

// eventBox identifies a box on the events page.
type eventBox int

const (
	boxClick eventBox = iota
	boxHover
	boxKeyInput
	boxDoubleClick
	boxCount
)

var boxTitles = [...]string{
	boxClick:       "Click Event",
	boxHover:       "Mouseover Event",
	boxKeyInput:    "Keyboard Event",
	boxDoubleClick: "Double-click Event",
}

func (m Model) handleEventsKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	if m.typing() {
		// Every key pressed in the input flashes, including the ones that
		// then move focus away from it.
		color := m.flash.Trigger()
		m.log.Debug().Ctx(m.ctx).Str("key", keyStr).Str("color", color).Msg("key flash")
		reset := m.schedule(taskFlashReset, m.cfg.Timings.FlashReset)

		var cmd tea.Cmd
		switch keyStr {
		case "esc":
			m.keyInput.Blur()
			return m, reset
		case "tab":
			var next tea.Model
			next, cmd = m.moveBox(1)
			return next, tea.Batch(reset, cmd)
		case "shift+tab":
			var next tea.Model
			next, cmd = m.moveBox(-1)
			return next, tea.Batch(reset, cmd)
		}

		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, tea.Batch(cmd, reset)
	}

	switch keyStr {
	case "left", "h", "shift+tab":
		return m.moveBox(-1)
	case "right", "l", "tab":
		return m.moveBox(1)
	case "enter", " ":
		return m.activateBox()
	}
	return m, nil
}

func (m Model) moveBox(delta int) (tea.Model, tea.Cmd) {
	next := eventBox((int(m.boxCursor) + delta + int(boxCount)) % int(boxCount))
	cmd := m.moveCursor(next)
	return m, cmd
}

func (m *Model) moveCursor(b eventBox) tea.Cmd {
	if b == m.boxCursor {
		return nil
	}
	m.leaveBox(m.boxCursor)
	m.boxCursor = b
	return m.enterBox(b)
}

// handleEventsMouse maps pointer motion onto the hover box and left presses
// onto box activation. A press also moves the box cursor to the pressed box.
func (m Model) handleEventsMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	b, over := m.boxAt(msg.X, msg.Y)
	m.trackPointer(over && b == boxHover)

	if !over || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	cmd := m.moveCursor(b)
	next, activate := m.activateBox()
	return next, tea.Batch(cmd, activate)
}

// trackPointer applies mouseover and mouseout to the hover box.
func (m *Model) trackPointer(onHover bool) {
	if onHover == m.pointerOnHover {
		return
	}
	m.pointerOnHover = onHover
	m.hoverBox.Set(onHover)
}

// boxRect is the screen area covered by a rendered box.
type boxRect struct {
	x, y, w, h int
}

func (r boxRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// boxRects lays the boxes out the same way eventsView and View do.
func (m Model) boxRects() [boxCount]boxRect {
	var rendered [boxCount]string
	for b := range boxCount {
		rendered[b] = m.renderBox(b)
	}

	x0 := styles.AppStyle.GetPaddingLeft()
	y0 := styles.AppStyle.GetPaddingTop() + lipgloss.Height(m.headerView()) + 1

	var rects [boxCount]boxRect
	row := func(left, right eventBox, y int) int {
		lw, lh := lipgloss.Size(rendered[left])
		rw, rh := lipgloss.Size(rendered[right])
		rects[left] = boxRect{x: x0, y: y, w: lw, h: lh}
		rects[right] = boxRect{x: x0 + lw + 1, y: y, w: rw, h: rh}
		return max(lh, rh)
	}
	h := row(boxClick, boxHover, y0)
	row(boxKeyInput, boxDoubleClick, y0+h)
	return rects
}

// boxAt returns the box under the screen cell x, y.
func (m Model) boxAt(x, y int) (eventBox, bool) {
	for b, r := range m.boxRects() {
		if r.contains(x, y) {
			return eventBox(b), true
		}
	}
	return 0, false
}

// enterBox is the pointer-enter transition for the box under the cursor.
func (m *Model) enterBox(b eventBox) tea.Cmd {
	switch b {
	case boxHover:
		m.hoverBox.Set(true)
	case boxKeyInput:
		return m.keyInput.Focus()
	}
	return nil
}

// leaveBox is the pointer-leave transition for the box under the cursor.
func (m *Model) leaveBox(b eventBox) {
	switch b {
	case boxHover:
		m.hoverBox.Set(false)
	case boxKeyInput:
		m.keyInput.Blur()
	}
}

func (m Model) activateBox() (tea.Model, tea.Cmd) {
	switch m.boxCursor {
	case boxClick:
		m.clickBox.Toggle()
	case boxKeyInput:
		cmd := m.keyInput.Focus()
		return m, cmd
	case boxDoubleClick:
		if m.doubleClick.Click() {
			m.enlargeBox.Toggle()
		}
	}
	return m, nil
}

func (m Model) eventsView() string {
	boxes := make([]string, 0, boxCount)
	for b := range boxCount {
		boxes = append(boxes, m.renderBox(b))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, boxes[boxClick], " ", boxes[boxHover])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, boxes[boxKeyInput], " ", boxes[boxDoubleClick])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m Model) renderBox(b eventBox) string {
	var body string
	switch b {
	case boxClick:
		body = m.clickBox.Caption()
		if m.clickBox.On() {
			body = styles.BoxActiveStyle.Render(body)
		}
	case boxHover:
		body = m.hoverBox.Caption()
		if m.hoverBox.On() {
			body = styles.BoxHoverStyle.Render(body)
		}
	case boxKeyInput:
		body = "Type in the field below\n" + m.keyInput.View()
	case boxDoubleClick:
		body = m.enlargeBox.Caption()
		if m.enlargeBox.On() {
			body = styles.BoxEnlargedStyle.Render(body)
		}
	}

	title := styles.TextMuted.Render(boxTitles[b])
	box := styles.BoxStyle
	if b == m.boxCursor {
		title = styles.HeaderStyle.Render(styles.IconCursor + " " + boxTitles[b])
		box = styles.BoxCursorStyle
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}
