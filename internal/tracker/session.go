// Package tracker ties the habit engine and progression views to a Record
// Store. A Session replaces any notion of a process-wide current member:
// the selection lives in storage and every operation names its member.
package tracker

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/motivnation/internal/engine"
	"github.com/julianstephens/motivnation/internal/logger"
	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/progression"
	"github.com/julianstephens/motivnation/internal/storage"
	"github.com/julianstephens/motivnation/internal/utils"
)

type Session struct {
	Store    storage.Provider
	Catalog  []models.Achievement
	Location *time.Location
	// Now and NewID default to the wall clock and random UUIDs.
	Now   func() time.Time
	NewID func() string
}

func New(store storage.Provider, loc *time.Location) *Session {
	return &Session{
		Store:    store,
		Catalog:  models.DefaultAchievements,
		Location: loc,
	}
}

func (s *Session) now() time.Time {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return now
}

func (s *Session) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Today returns the current calendar date in the session's timezone.
func (s *Session) Today() string {
	return utils.FormatDate(s.now())
}

// Join creates a member and makes it the current member.
func (s *Session) Join(name string) (models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Member{}, fmt.Errorf("%w: name", models.ErrMissingRequiredField)
	}

	member := models.NewMember(s.newID(), name, s.Today())
	if err := s.Store.UpsertMember(member); err != nil {
		return models.Member{}, fmt.Errorf("failed to save member: %w", err)
	}
	if err := s.Store.SetCurrentMemberID(member.ID); err != nil {
		return models.Member{}, fmt.Errorf("failed to select member: %w", err)
	}

	logger.Info("Member joined", "id", member.ID, "name", member.Name)
	return member, nil
}

// FindMember resolves a member by id, or failing that by case-insensitive name.
func (s *Session) FindMember(ref string) (models.Member, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Member{}, fmt.Errorf("%w: member", models.ErrMissingRequiredField)
	}

	members, err := s.Store.ListMembers()
	if err != nil {
		return models.Member{}, err
	}
	for _, m := range members {
		if m.ID == ref {
			return m, nil
		}
	}

	var match *models.Member
	for i := range members {
		if strings.EqualFold(members[i].Name, ref) {
			if match != nil {
				return models.Member{}, fmt.Errorf("more than one member is named %q, select by id", ref)
			}
			match = &members[i]
		}
	}
	if match == nil {
		return models.Member{}, fmt.Errorf("%w: %s", models.ErrMemberNotFound, ref)
	}
	return *match, nil
}

// Select makes the referenced member current.
func (s *Session) Select(ref string) (models.Member, error) {
	member, err := s.FindMember(ref)
	if err != nil {
		return models.Member{}, err
	}
	if err := s.Store.SetCurrentMemberID(member.ID); err != nil {
		return models.Member{}, fmt.Errorf("failed to select member: %w", err)
	}
	return member, nil
}

// Leave clears the current member selection.
func (s *Session) Leave() error {
	return s.Store.SetCurrentMemberID("")
}

// Current returns the selected member. A selection pointing at a member
// that no longer exists is treated as no selection.
func (s *Session) Current() (models.Member, error) {
	id, err := s.Store.GetCurrentMemberID()
	if err != nil {
		return models.Member{}, err
	}
	if id == "" {
		return models.Member{}, models.ErrNoCurrentMember
	}

	member, err := s.Store.GetMember(id)
	if errors.Is(err, models.ErrMemberNotFound) {
		logger.Warn("Current member no longer exists", "id", id)
		return models.Member{}, models.ErrNoCurrentMember
	}
	return member, err
}

// Submission is a habit log as entered by a user. Quantity is kept as text
// so that an empty field and an unparseable one are distinct errors.
type Submission struct {
	MemberID string
	Habit    string
	Quantity string
	Photo    string
	Notes    string
}

// Result is the outcome of a successful submission.
type Result struct {
	Member          models.Member
	Log             models.HabitLog
	NewAchievements []models.Achievement
}

func parseQuantity(raw string) (float64, error) {
	q, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidQuantity, raw)
	}
	if q < 0 {
		return 0, fmt.Errorf("%w: must not be negative", models.ErrInvalidQuantity)
	}
	return q, nil
}

// SubmitLog validates a submission, awards XP, advances the member's
// streak and achievements, and stores the member and the new log
// together. Nothing is written when any step fails.
func (s *Session) SubmitLog(sub Submission) (Result, error) {
	var missing []string
	if strings.TrimSpace(sub.MemberID) == "" {
		missing = append(missing, "member")
	}
	if strings.TrimSpace(sub.Habit) == "" {
		missing = append(missing, "habit")
	}
	if strings.TrimSpace(sub.Quantity) == "" {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return Result{}, fmt.Errorf("%w: %s", models.ErrMissingRequiredField, strings.Join(missing, ", "))
	}

	habit, err := models.ParseHabitKind(sub.Habit)
	if err != nil {
		return Result{}, err
	}
	quantity, err := parseQuantity(sub.Quantity)
	if err != nil {
		return Result{}, err
	}

	member, err := s.Store.GetMember(strings.TrimSpace(sub.MemberID))
	if err != nil {
		return Result{}, err
	}

	xp, err := engine.ComputeXP(habit, quantity)
	if err != nil {
		return Result{}, err
	}

	date := s.Today()
	updated, err := engine.ApplyCheckIn(member, date, xp)
	if err != nil {
		return Result{}, err
	}

	before := updated.Achievements
	updated.Achievements = progression.EvaluateAchievements(updated, s.Catalog)

	log := models.HabitLog{
		ID:       s.newID(),
		MemberID: member.ID,
		Date:     date,
		Habit:    habit,
		Quantity: quantity,
		XPEarned: xp,
		Photo:    strings.TrimSpace(sub.Photo),
		Notes:    strings.TrimSpace(sub.Notes),
	}

	if err := s.Store.RecordCheckIn(updated, log); err != nil {
		return Result{}, err
	}

	var unlocked []models.Achievement
	for _, id := range progression.NewlyUnlocked(before, updated.Achievements) {
		if a, ok := models.FindAchievement(s.Catalog, id); ok {
			unlocked = append(unlocked, a)
		}
	}

	logger.Info("Habit logged",
		"member", member.ID, "habit", habit, "quantity", quantity,
		"xp", xp, "streak", updated.CurrentStreak)
	return Result{Member: updated, Log: log, NewAchievements: unlocked}, nil
}

// Status summarizes a member's day.
type Status struct {
	Member        models.Member
	Date          string
	TodayLogs     []models.HabitLog
	DisplayStreak int
	Rank          progression.Rank
	UntilMidnight time.Duration
}

// LoggedToday reports whether the member has any log dated today.
func (st Status) LoggedToday() bool {
	return len(st.TodayLogs) > 0
}

// XPToday sums the XP earned by today's logs.
func (st Status) XPToday() int {
	total := 0
	for _, l := range st.TodayLogs {
		total += l.XPEarned
	}
	return total
}

func (s *Session) Status(memberID string) (Status, error) {
	member, err := s.Store.GetMember(memberID)
	if err != nil {
		return Status{}, err
	}

	now := s.now()
	date := utils.FormatDate(now)
	todayLogs, err := s.Store.LogsForMemberOnDate(member.ID, date)
	if err != nil {
		return Status{}, err
	}

	streak, err := progression.DisplayStreak(member, todayLogs, date)
	if err != nil {
		return Status{}, err
	}

	return Status{
		Member:        member,
		Date:          date,
		TodayLogs:     todayLogs,
		DisplayStreak: streak,
		Rank:          progression.RankFromXP(member.XP),
		UntilMidnight: utils.UntilMidnight(now),
	}, nil
}

// Leaderboard ranks every member as of today. It never writes.
func (s *Session) Leaderboard() ([]progression.Standing, error) {
	members, err := s.Store.ListMembers()
	if err != nil {
		return nil, err
	}
	logs, err := s.Store.ListLogs()
	if err != nil {
		return nil, err
	}
	return progression.BuildLeaderboard(members, logs, s.Today(), s.Catalog)
}

// Feed returns the community photo feed, newest first.
func (s *Session) Feed() ([]progression.FeedItem, error) {
	logs, err := s.Store.ListLogs()
	if err != nil {
		return nil, err
	}
	members, err := s.Store.ListMembers()
	if err != nil {
		return nil, err
	}
	return progression.CommunityFeed(logs, members), nil
}

// Rewards reports progress toward every catalog achievement.
func (s *Session) Rewards(memberID string) ([]progression.Progress, error) {
	member, err := s.Store.GetMember(memberID)
	if err != nil {
		return nil, err
	}
	return progression.AchievementProgress(member, s.Catalog), nil
}
