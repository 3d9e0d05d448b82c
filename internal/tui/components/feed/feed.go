package feed

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/motivnation/internal/progression"
)

type Item struct {
	Entry progression.FeedItem
}

func (i Item) Title() string {
	l := i.Entry.Log
	return fmt.Sprintf("%s %s · %g %s", l.Habit.Emoji(), i.Entry.MemberName, l.Quantity, l.Habit.Unit())
}

func (i Item) Description() string {
	l := i.Entry.Log
	desc := fmt.Sprintf("%s | +%d XP | 📷 %s", l.Date, l.XPEarned, l.Photo)
	if l.Notes != "" {
		desc += " | " + l.Notes
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.MemberName }

type Model struct {
	list list.Model
}

func New(entries []progression.FeedItem, width, height int) Model {
	l := list.New(items(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Community"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

func items(entries []progression.FeedItem) []list.Item {
	out := make([]list.Item, len(entries))
	for i, e := range entries {
		out[i] = Item{Entry: e}
	}
	return out
}

func (m *Model) SetEntries(entries []progression.FeedItem) {
	m.list.SetItems(items(entries))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No photos shared yet.\n  Add a photo when logging a habit to show up here."
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
