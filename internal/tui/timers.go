package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/pagekit/internal/core/schedule"
)

const (
	taskFlashReset schedule.Kind = "flash-reset"
	taskNoticeHide schedule.Kind = "notice-hide"
)

// taskFiredMsg is delivered when a scheduled task's delay elapses.
type taskFiredMsg struct {
	id uint64
}

// schedule registers a task and returns the tick command that reports it.
// Every call gets its own task; pending tasks of the same kind are left alone.
func (m Model) schedule(kind schedule.Kind, delay time.Duration) tea.Cmd {
	task := m.tasks.Schedule(kind, delay)
	return tea.Tick(task.Delay, func(time.Time) tea.Msg {
		return taskFiredMsg{id: task.ID}
	})
}

func (m Model) handleTaskFired(msg taskFiredMsg) (tea.Model, tea.Cmd) {
	task, ok := m.tasks.Fire(msg.id)
	if !ok {
		return m, nil
	}

	switch task.Kind {
	case taskFlashReset:
		m.flash.Reset()
	case taskNoticeHide:
		m.form.HideNotice()
	default:
		m.log.Warn().Str("kind", string(task.Kind)).Uint64("task", task.ID).Msg("unhandled task")
	}
	return m, nil
}
