package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/julianstephens/motivnation/internal/errors"
	"github.com/julianstephens/motivnation/internal/tui/components/memberlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLogHabit:
		return m.updateLogForm(msg)
	case StateJoin:
		return m.updateJoinForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tickMsg:
		// Picks up the day rollover and the countdown.
		m.refresh()
		return m, tick()

	case memberlist.SelectMemberMsg:
		member, err := m.session.Select(msg.ID)
		if err != nil {
			m.setFlash(apperrors.Format(err), true)
			return m, nil
		}
		m.setFlash(fmt.Sprintf("✓ Now logging as %s", member.Name), false)
		m.refresh()
		return m, nil

	case memberlist.JoinMsg:
		return m.startJoin()

	case memberlist.LeaveMsg:
		if m.current == nil {
			return m, nil
		}
		name := m.current.Name
		if err := m.session.Leave(); err != nil {
			m.setFlash(apperrors.Format(err), true)
			return m, nil
		}
		m.setFlash(fmt.Sprintf("Signed out %s", name), false)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			m.setFlash("Refreshed", false)
			return m, nil
		case key.Matches(msg, m.keys.Log):
			return m.startLog()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateLeaderboard:
		m.leaderboard, cmd = m.leaderboard.Update(msg)
	case StateCommunity:
		m.feed, cmd = m.feed.Update(msg)
	case StateMembers:
		m.members, cmd = m.members.Update(msg)
	}
	return m, cmd
}

func (m Model) filtering() bool {
	switch m.state {
	case StateCommunity:
		return m.feed.Filtering()
	case StateMembers:
		return m.members.Filtering()
	}
	return false
}
