package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/utils"
)

const barWidth = 24

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateLeaderboard:
		content = docStyle.Render(m.leaderboard.View())
	case StateCommunity:
		content = docStyle.Render(m.feed.View())
	case StateRewards:
		content = m.viewRewards()
	case StateMembers:
		content = docStyle.Render(m.members.View())
	case StateLogHabit, StateJoin:
		content = docStyle.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatusLine(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if m.state >= tabCount {
		active = m.previousState
	}

	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}

	who := mutedStyle.Render("  no member selected")
	if m.current != nil {
		who = mutedStyle.Render("  " + m.current.Name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, who)...)
}

func (m Model) viewStatusLine() string {
	switch {
	case m.loadError != "":
		return warningStyle.Render(m.loadError)
	case m.flash == "":
		return ""
	case m.flashIsError:
		return dangerStyle.Render(m.flash)
	default:
		return successStyle.Render(m.flash)
	}
}

func (m Model) viewToday() string {
	if m.current == nil {
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Welcome to MotivNation!"),
			"",
			"No member is selected.",
			mutedStyle.Render("Open the Members tab to join or pick who is logging."),
		))
	}
	if m.status == nil {
		return docStyle.Render(m.current.Name)
	}

	st := m.status
	lines := []string{
		titleStyle.Render(st.Member.Name) + "  " + st.Rank.String(),
		"",
		fmt.Sprintf("⚡ %d XP    🔥 %d day streak    🏆 best %d", st.Member.XP, st.DisplayStreak, st.Member.BestStreak),
		"",
	}

	if st.LoggedToday() {
		lines = append(lines, successStyle.Render(fmt.Sprintf("✅ Logged today, +%d XP", st.XPToday())))
		for _, l := range st.TodayLogs {
			line := fmt.Sprintf("   %s %g %s (+%d)", l.Habit.Emoji(), l.Quantity, l.Habit.Unit(), l.XPEarned)
			if l.Photo != "" {
				line += " 📷"
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, warningStyle.Render(fmt.Sprintf("⏰ %s left to keep your streak", utils.FormatCountdown(st.UntilMidnight))))
	}

	lines = append(lines, "", mutedStyle.Render("Press a to log a habit."))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func progressBar(pct int) string {
	filled := max(0, min(pct, 100)) * barWidth / 100
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}

func (m Model) viewRewards() string {
	if m.current == nil {
		return docStyle.Render("Select a member to see their rewards.")
	}

	lines := []string{titleStyle.Render("Rewards for " + m.current.Name), ""}
	for _, p := range m.rewards {
		state := "🔒"
		if p.Unlocked {
			state = "✅"
		}
		lines = append(lines,
			fmt.Sprintf("%s %s %s  %s", state, p.Achievement.Icon, p.Achievement.Name, mutedStyle.Render(p.Achievement.Description)),
			fmt.Sprintf("   %s %3d%%  %d/%d %s", progressBar(p.Percent()), p.Percent(),
				min(p.Current, p.Achievement.Requirement), p.Achievement.Requirement, requirementUnit(p.Achievement.Type)),
			"",
		)
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func requirementUnit(t models.AchievementType) string {
	if t == models.AchievementStreak {
		return "days"
	}
	return "XP"
}
