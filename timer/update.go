package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/homegym/spotter/session"
)

// handleTimerTick advances the rest countdown by one second. Ticks from a
// previous rest period, or arriving after the rest was skipped, are dropped
// so that their loop ends.
func (m *Model) handleTimerTick(msg btimer.TickMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.clock.ID() || m.engine.State().Phase != session.Resting {
		return m, nil
	}

	var cmd tea.Cmd
	m.clock, cmd = m.clock.Update(msg)

	if err := m.engine.Tick(); err != nil {
		m.log.Error("rest tick rejected", slog.Any("error", err))
		return m, nil
	}

	if m.engine.State().Phase != session.Resting {
		return m, nil
	}

	return m, cmd
}

func (m *Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.confirm):
		if err := m.guard.Confirm(); err != nil {
			m.log.Error("unable to end workout", slog.Any("error", err))
			return m, nil
		}

		// the guard allows exactly one navigation after a confirmed exit
		return m, m.leave(m.attempt)

	case key.Matches(msg, m.keys.cancel):
		m.guard.Cancel()
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.guard.Prompting() {
		return m.handlePrompt(msg)
	}

	switch {
	case key.Matches(msg, m.keys.complete):
		return m, m.completeSet()

	case key.Matches(msg, m.keys.skip):
		if m.engine.State().Phase != session.Resting {
			return m, nil
		}

		if err := m.engine.SkipRest(); err != nil {
			m.log.Error("unable to skip rest", slog.Any("error", err))
		}

		return m, nil

	case key.Matches(msg, m.keys.back):
		return m, m.leave(session.ExitBack)

	case key.Matches(msg, m.keys.tab):
		return m, m.leave(session.ExitTabSwitch)

	case key.Matches(msg, m.keys.quit):
		return m, m.leave(session.ExitQuit)
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case btimer.TickMsg:
		return m.handleTimerTick(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		m.help.Width = msg.Width

		return m, nil
	}

	return m, nil
}
