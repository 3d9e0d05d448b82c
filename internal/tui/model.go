package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/motivnation/internal/logger"
	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/progression"
	"github.com/julianstephens/motivnation/internal/tracker"
	"github.com/julianstephens/motivnation/internal/tui/components/feed"
	"github.com/julianstephens/motivnation/internal/tui/components/leaderboard"
	"github.com/julianstephens/motivnation/internal/tui/components/memberlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateLeaderboard
	StateCommunity
	StateRewards
	StateMembers
	StateLogHabit
	StateJoin
)

// tabCount is the number of states reachable with tab; forms come after them.
const tabCount = 5

var tabTitles = [tabCount]string{"Today", "Leaderboard", "Community", "Rewards", "Members"}

// chromeHeight is the space taken by the tab bar, status line and help.
const chromeHeight = 6

type LogFormModel struct {
	Habit    string
	Quantity string
	Photo    string
	Notes    string
}

type JoinFormModel struct {
	Name string
}

type tickMsg time.Time

type Model struct {
	session       *tracker.Session
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	leaderboard   leaderboard.Model
	feed          feed.Model
	members       memberlist.Model
	form          *huh.Form
	logForm       *LogFormModel
	joinForm      *JoinFormModel
	current       *models.Member
	status        *tracker.Status
	rewards       []progression.Progress
	flash         string
	flashIsError  bool
	loadError     string
	quitting      bool
	width         int
	height        int
}

func NewModel(session *tracker.Session) Model {
	m := Model{
		session:     session,
		state:       StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		leaderboard: leaderboard.New(session.Catalog, 0, 0),
		feed:        feed.New(nil, 0, 0),
		members:     memberlist.New(nil, "", 0, 0),
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Log, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	if m.state == StateLogHabit || m.state == StateJoin {
		keys = []key.Binding{m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state == StateLogHabit || m.state == StateJoin {
		return [][]key.Binding{{m.keys.Cancel}}
	}
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	actions := []key.Binding{m.keys.Log, m.keys.Refresh}
	if m.state == StateMembers {
		mk := memberlist.DefaultKeyMap()
		actions = append(actions, mk.Join, mk.Select, mk.Leave)
	}
	return [][]key.Binding{global, navigation, actions}
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// refresh reloads every view from the store.
func (m *Model) refresh() {
	m.loadError = ""
	fail := func(what string, err error) {
		logger.Warn("Failed to load "+what, "error", err)
		if m.loadError == "" {
			m.loadError = fmt.Sprintf("⚠ Failed to load %s: %v", what, err)
		}
	}

	if standings, err := m.session.Leaderboard(); err != nil {
		fail("leaderboard", err)
	} else {
		m.leaderboard.SetStandings(standings)
	}

	if entries, err := m.session.Feed(); err != nil {
		fail("community feed", err)
	} else {
		m.feed.SetEntries(entries)
	}

	m.current, m.status, m.rewards = nil, nil, nil
	currentID := ""
	member, err := m.session.Current()
	switch {
	case err == nil:
		currentID = member.ID
		m.current = &member
		if st, err := m.session.Status(member.ID); err != nil {
			fail("status", err)
		} else {
			m.status = &st
		}
		if rewards, err := m.session.Rewards(member.ID); err != nil {
			fail("rewards", err)
		} else {
			m.rewards = rewards
		}
	case !errors.Is(err, models.ErrNoCurrentMember):
		fail("current member", err)
	}

	if members, err := m.session.Store.ListMembers(); err != nil {
		fail("members", err)
	} else {
		m.members.SetMembers(members, currentID)
	}
}

func (m *Model) resize() {
	w := max(m.width-4, 0)
	h := max(m.height-chromeHeight, 0)
	m.leaderboard.SetSize(w, h)
	m.feed.SetSize(w, h)
	m.members.SetSize(w, h)
}

func (m *Model) setFlash(msg string, isError bool) {
	m.flash = msg
	m.flashIsError = isError
}
