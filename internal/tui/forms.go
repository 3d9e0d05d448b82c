package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	apperrors "github.com/julianstephens/motivnation/internal/errors"
	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/tracker"
)

func habitOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.HabitKinds))
	for _, h := range models.HabitKinds {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s (%s)", h.Emoji(), h, h.Unit()), string(h)))
	}
	return opts
}

func validateQuantity(s string) error {
	q, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || q < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

func (m Model) startLog() (tea.Model, tea.Cmd) {
	if m.current == nil {
		m.setFlash("Join or select a member before logging", true)
		m.state = StateMembers
		return m, nil
	}

	m.logForm = &LogFormModel{Habit: string(models.HabitHydration)}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Habit").
				Options(habitOptions()...).
				Value(&m.logForm.Habit),
			huh.NewInput().
				Title("Quantity").
				Value(&m.logForm.Quantity).
				Validate(validateQuantity),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Photo").
				Description("Optional. Logs with a photo appear in the community feed.").
				Value(&m.logForm.Photo),
			huh.NewInput().
				Title("Notes").
				Value(&m.logForm.Notes),
		),
	).WithShowHelp(true)

	m.previousState = m.state
	m.state = StateLogHabit
	return m, m.form.Init()
}

func (m Model) startJoin() (tea.Model, tea.Cmd) {
	m.joinForm = &JoinFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Value(&m.joinForm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}
					return nil
				}),
		),
	).WithShowHelp(true)

	m.previousState = m.state
	m.state = StateJoin
	return m, m.form.Init()
}

// updateForm forwards msg to the active form and reports whether it finished.
func (m *Model) updateForm(msg tea.Msg) (done bool, cmd tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return false, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return true, cmd
	case huh.StateAborted:
		m.state = m.previousState
	}
	return false, cmd
}

func (m Model) updateLogForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := m.updateForm(msg)
	if done {
		m.submitLog(*m.logForm)
	}
	return m, cmd
}

func (m Model) updateJoinForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := m.updateForm(msg)
	if done {
		m.join(m.joinForm.Name)
	}
	return m, cmd
}

// submitLog records a habit for the current member and lands on the Today tab.
func (m *Model) submitLog(f LogFormModel) {
	m.state = StateToday
	if m.current == nil {
		m.setFlash("Join or select a member before logging", true)
		return
	}

	result, err := m.session.SubmitLog(tracker.Submission{
		MemberID: m.current.ID,
		Habit:    f.Habit,
		Quantity: f.Quantity,
		Photo:    f.Photo,
		Notes:    f.Notes,
	})
	if err != nil {
		m.setFlash(apperrors.Format(err), true)
		return
	}

	msg := fmt.Sprintf("✓ %s +%d XP · 🔥 %d", result.Log.Habit.Emoji(), result.Log.XPEarned, result.Member.CurrentStreak)
	for _, a := range result.NewAchievements {
		msg += fmt.Sprintf(" · 🏅 %s %s unlocked!", a.Icon, a.Name)
	}
	m.setFlash(msg, false)
	m.refresh()
}

func (m *Model) join(name string) {
	m.state = StateToday
	member, err := m.session.Join(name)
	if err != nil {
		m.state = StateMembers
		m.setFlash(apperrors.Format(err), true)
		return
	}
	m.setFlash(fmt.Sprintf("✓ Welcome to MotivNation, %s!", member.Name), false)
	m.refresh()
}
