package memberlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/progression"
)

type JoinMsg struct{}

type SelectMemberMsg struct {
	ID string
}

type LeaveMsg struct{}

type Item struct {
	Member  models.Member
	Current bool
}

func (i Item) Title() string {
	if i.Current {
		return "▶ " + i.Member.Name
	}
	return i.Member.Name
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | %d XP | 🔥 %d (best %d) | joined %s",
		progression.RankFromXP(i.Member.XP), i.Member.XP,
		i.Member.CurrentStreak, i.Member.BestStreak, i.Member.JoinDate)
}

func (i Item) FilterValue() string { return i.Member.Name }

type KeyMap struct {
	Join   key.Binding
	Select key.Binding
	Leave  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Join: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "join"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Leave: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "leave"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(members []models.Member, currentID string, width, height int) Model {
	l := list.New(items(members, currentID), list.NewDefaultDelegate(), width, height)
	l.Title = "Members"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Join, keys.Select, keys.Leave}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func items(members []models.Member, currentID string) []list.Item {
	out := make([]list.Item, len(members))
	for i, m := range members {
		out[i] = Item{Member: m, Current: m.ID == currentID}
	}
	return out
}

func (m *Model) SetMembers(members []models.Member, currentID string) {
	m.list.SetItems(items(members, currentID))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Join):
			return m, func() tea.Msg { return JoinMsg{} }
		case key.Matches(msg, m.keys.Leave):
			return m, func() tea.Msg { return LeaveMsg{} }
		case key.Matches(msg, m.keys.Select):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return SelectMemberMsg{ID: i.Member.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No members yet.\n  Press 'n' to join."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the user is typing a filter query.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
