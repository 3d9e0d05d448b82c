package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/motivnation/internal/engine"
	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/utils"
)

// ConflictType represents the type of integrity problem
type ConflictType string

const (
	ConflictDuplicateMemberID    ConflictType = "duplicate_member_id"
	ConflictDuplicateLogID       ConflictType = "duplicate_log_id"
	ConflictMissingName          ConflictType = "missing_name"
	ConflictNegativeValue        ConflictType = "negative_value"
	ConflictBestBelowCurrent     ConflictType = "best_streak_below_current"
	ConflictDuplicateAchievement ConflictType = "duplicate_achievement"
	ConflictInvalidDate          ConflictType = "invalid_date"
	ConflictInvalidHabit         ConflictType = "invalid_habit"
	ConflictOrphanLog            ConflictType = "orphan_log"
	ConflictXPMismatch           ConflictType = "xp_mismatch"
)

// Conflict is one integrity problem found in stored records
type Conflict struct {
	Type        ConflictType
	Description string
	MemberID    string // if applicable
	LogID       string // if applicable
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns how many conflicts have the given type
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	var b strings.Builder
	b.WriteString("Problems detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks stored members and logs for broken invariants
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

func (vr *ValidationResult) add(c Conflict) {
	vr.Conflicts = append(vr.Conflicts, c)
}

// ValidateMembers checks each member record on its own and for id collisions.
func (v *Validator) ValidateMembers(members []models.Member) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m.ID] {
			result.add(Conflict{
				Type:        ConflictDuplicateMemberID,
				Description: fmt.Sprintf("Member id %q is used more than once", m.ID),
				MemberID:    m.ID,
			})
		}
		seen[m.ID] = true

		label := m.Name
		if strings.TrimSpace(m.Name) == "" {
			label = m.ID
			result.add(Conflict{
				Type:        ConflictMissingName,
				Description: fmt.Sprintf("Member %s has no name", m.ID),
				MemberID:    m.ID,
			})
		}

		if m.XP < 0 || m.CurrentStreak < 0 || m.BestStreak < 0 {
			result.add(Conflict{
				Type:        ConflictNegativeValue,
				Description: fmt.Sprintf("Member %q has negative progress (xp %d, streak %d, best %d)", label, m.XP, m.CurrentStreak, m.BestStreak),
				MemberID:    m.ID,
			})
		}

		if m.BestStreak < m.CurrentStreak {
			result.add(Conflict{
				Type:        ConflictBestBelowCurrent,
				Description: fmt.Sprintf("Member %q has best streak %d below current streak %d", label, m.BestStreak, m.CurrentStreak),
				MemberID:    m.ID,
			})
		}

		if len(compactIDs(m.Achievements)) != len(m.Achievements) {
			result.add(Conflict{
				Type:        ConflictDuplicateAchievement,
				Description: fmt.Sprintf("Member %q lists an achievement more than once", label),
				MemberID:    m.ID,
			})
		}

		if !utils.ValidateDate(m.JoinDate) {
			result.add(Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Member %q has invalid join date: %q", label, m.JoinDate),
				MemberID:    m.ID,
			})
		}
		if m.LastCheckIn != "" && !utils.ValidateDate(m.LastCheckIn) {
			result.add(Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Member %q has invalid last check-in: %q", label, m.LastCheckIn),
				MemberID:    m.ID,
			})
		}
	}

	return result
}

// ValidateLogs checks each log and its link to a member.
func (v *Validator) ValidateLogs(logs []models.HabitLog, members []models.Member) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := make(map[string]bool, len(members))
	for _, m := range members {
		known[m.ID] = true
	}

	seen := make(map[string]bool, len(logs))
	for _, l := range logs {
		if seen[l.ID] {
			result.add(Conflict{
				Type:        ConflictDuplicateLogID,
				Description: fmt.Sprintf("Log id %q is used more than once", l.ID),
				LogID:       l.ID,
			})
		}
		seen[l.ID] = true

		if !known[l.MemberID] {
			result.add(Conflict{
				Type:        ConflictOrphanLog,
				Description: fmt.Sprintf("Log %s references unknown member %q", l.ID, l.MemberID),
				MemberID:    l.MemberID,
				LogID:       l.ID,
			})
		}

		if !utils.ValidateDate(l.Date) {
			result.add(Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Log %s has invalid date: %q", l.ID, l.Date),
				LogID:       l.ID,
			})
		}

		if !l.Habit.Valid() {
			result.add(Conflict{
				Type:        ConflictInvalidHabit,
				Description: fmt.Sprintf("Log %s has unknown habit %q", l.ID, l.Habit),
				LogID:       l.ID,
			})
			continue
		}

		if l.Quantity < 0 || l.XPEarned < 0 {
			result.add(Conflict{
				Type:        ConflictNegativeValue,
				Description: fmt.Sprintf("Log %s has negative quantity or xp", l.ID),
				LogID:       l.ID,
			})
			continue
		}

		if want, err := engine.ComputeXP(l.Habit, l.Quantity); err == nil && want != l.XPEarned {
			result.add(Conflict{
				Type:        ConflictXPMismatch,
				Description: fmt.Sprintf("Log %s earned %d xp but %g %s is worth %d", l.ID, l.XPEarned, l.Quantity, l.Habit.Unit(), want),
				LogID:       l.ID,
			})
		}
	}

	return result
}

// ValidateRecords runs every member and log check.
func (v *Validator) ValidateRecords(members []models.Member, logs []models.HabitLog) ValidationResult {
	result := v.ValidateMembers(members)
	result.Conflicts = append(result.Conflicts, v.ValidateLogs(logs, members).Conflicts...)
	return result
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// AutoFixMembers repairs the member conflicts that have a safe mechanical
// fix: best streak is raised to the current streak and repeated achievement
// ids are collapsed. Logs are never rewritten; awarded XP is immutable.
// It returns the repaired members and what was changed.
func AutoFixMembers(conflicts []Conflict, members []models.Member) ([]models.Member, []FixAction) {
	fixed := make([]models.Member, len(members))
	for i, m := range members {
		fixed[i] = m.Clone()
	}

	actions := []FixAction{}
	for _, conflict := range conflicts {
		idx := slices.IndexFunc(fixed, func(m models.Member) bool { return m.ID == conflict.MemberID })
		if idx < 0 {
			continue
		}
		m := &fixed[idx]

		switch conflict.Type {
		case ConflictBestBelowCurrent:
			if m.BestStreak >= m.CurrentStreak {
				continue
			}
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Raised best streak of %q from %d to %d", m.Name, m.BestStreak, m.CurrentStreak),
				SourceConflict: conflict,
			})
			m.BestStreak = m.CurrentStreak
		case ConflictDuplicateAchievement:
			compacted := compactIDs(m.Achievements)
			if len(compacted) == len(m.Achievements) {
				continue
			}
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Removed %d repeated achievement(s) from %q", len(m.Achievements)-len(compacted), m.Name),
				SourceConflict: conflict,
			})
			m.Achievements = compacted
		}
	}

	return fixed, actions
}
