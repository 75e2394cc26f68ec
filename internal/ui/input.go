package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tarbetu/portfolio/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		events.App.Quit()
		return tea.Quit
	}
	if !m.machine.Phase.IsActive() {
		// Any key skips the rest of the intro.
		m.machine.Skip()
		events.Intro.Skip(keyMsg.String())
		return nil
	}
	m.handleNavKey(keyMsg)
	return nil
}

// handleNavKey applies the active-phase key contract. Unrecognized keys are
// no-ops; recognized ones that cannot take effect in the current mode
// (Enter while locked, Esc while unlocked) are too.
func (m *Model) handleNavKey(msg tea.KeyMsg) {
	total := len(m.sections)
	lines := len(m.selected().Lines())

	switch {
	case key.Matches(msg, m.keys.LockIn):
		if m.selection.LockIn() {
			events.Nav.LockIn(m.selection.Index)
		}
	case key.Matches(msg, m.keys.Unlock):
		if m.selection.Unlock() {
			events.Nav.Unlock(m.selection.Index)
		}
	case key.Matches(msg, m.keys.Up):
		if m.selection.MoveUp(total, lines) {
			m.traceMove()
		}
	case key.Matches(msg, m.keys.Down):
		if m.selection.MoveDown(total, lines) {
			m.traceMove()
		}
	case key.Matches(msg, m.keys.Title):
		m.titleIndex = (m.titleIndex + 1) % len(m.titles)
		events.Nav.Title(m.titleIndex, m.title())
	}
}

func (m *Model) traceMove() {
	if m.selection.LockedIn {
		events.Nav.Scroll(m.selection.Scroll)
		return
	}
	events.Nav.Cursor(m.selection.Index, m.selected().Label)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.App.Resize(m.width, m.height)
	return nil
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(tickMsg)
	if !ok {
		return nil
	}
	wasFinalized := m.machine.Finalized
	if m.machine.Advance(time.Time(tick)) {
		if !m.machine.Finalized && wasFinalized {
			events.Intro.Replay(m.machine.Phase.String())
		} else {
			events.Intro.Advance(m.machine.Phase.String(), m.machine.Finalized)
		}
	}
	if m.machine.Finalized {
		m.mosaicStep = (m.mosaicStep + 1) % 3
	}
	return m.tickCmd()
}
