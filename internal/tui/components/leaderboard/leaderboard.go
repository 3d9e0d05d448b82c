package leaderboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/progression"
)

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

type Model struct {
	table     table.Model
	standings []progression.Standing
	catalog   []models.Achievement
}

func columns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Member", Width: 20},
		{Title: "Rank", Width: 10},
		{Title: "XP", Width: 6},
		{Title: "Streak", Width: 7},
		{Title: "Best", Width: 5},
		{Title: "Badges", Width: 12},
	}
}

func New(catalog []models.Achievement, width, height int) Model {
	t := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t, catalog: catalog}
}

// Position renders a podium medal for the top three, else "#N".
func Position(pos int) string {
	if medal, ok := medals[pos]; ok {
		return medal
	}
	return fmt.Sprintf("#%d", pos)
}

// Badges renders the icons of the given achievement ids.
func Badges(ids []string, catalog []models.Achievement) string {
	var icons []string
	for _, id := range ids {
		if a, ok := models.FindAchievement(catalog, id); ok {
			icons = append(icons, a.Icon)
		}
	}
	return strings.Join(icons, "")
}

func (m *Model) SetStandings(standings []progression.Standing) {
	m.standings = standings
	rows := make([]table.Row, len(standings))
	for i, s := range standings {
		rows[i] = table.Row{
			Position(s.Position),
			s.Member.Name,
			s.Rank.String(),
			fmt.Sprintf("%d", s.Member.XP),
			fmt.Sprintf("🔥 %d", s.DisplayStreak),
			fmt.Sprintf("%d", s.Member.BestStreak),
			Badges(s.Achievements, m.catalog),
		}
	}
	m.table.SetRows(rows)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.standings) == 0 {
		return "\n  The leaderboard is empty.\n  Join from the Members tab to get started."
	}
	return m.table.View()
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	m.table.SetHeight(max(height, 3))
}
