package storage

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/julianstephens/motivnation/internal/constants"
	"github.com/julianstephens/motivnation/internal/logger"
	"github.com/julianstephens/motivnation/internal/models"
)

// Store is the Record Store: members, habit logs and the current member id
// kept as JSON blobs in a Backend.
//
// Every write is a read-modify-write of a whole collection, so only one
// process may write to a given backend at a time.
type Store struct {
	kv Backend
}

func NewStore(kv Backend) *Store {
	return &Store{kv: kv}
}

func (s *Store) Init() error {
	return s.kv.Init()
}

func (s *Store) Load() error {
	return s.kv.Load()
}

func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) GetConfigPath() string {
	return s.kv.Path()
}

// Backend returns the underlying key-value backend.
func (s *Store) Backend() Backend {
	return s.kv
}

// readList decodes a JSON array stored under key. A missing key yields an
// empty list; an unparseable blob is logged and also yields an empty list.
func readList[T any](kv Backend, key string) ([]T, error) {
	data, ok, err := kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("Discarding unreadable stored collection", "key", key, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	return data, nil
}

func (s *Store) ListMembers() ([]models.Member, error) {
	members, err := readList[models.Member](s.kv, constants.KeyMembers)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].Achievements == nil {
			members[i].Achievements = []string{}
		}
	}
	return members, nil
}

func (s *Store) GetMember(id string) (models.Member, error) {
	members, err := s.ListMembers()
	if err != nil {
		return models.Member{}, err
	}
	for _, m := range members {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Member{}, fmt.Errorf("%w: %s", models.ErrMemberNotFound, id)
}

// upsert replaces the member with the same id in place, or appends it.
func upsert(members []models.Member, member models.Member) []models.Member {
	idx := slices.IndexFunc(members, func(m models.Member) bool { return m.ID == member.ID })
	if idx >= 0 {
		members[idx] = member
		return members
	}
	return append(members, member)
}

func (s *Store) UpsertMember(member models.Member) error {
	members, err := s.ListMembers()
	if err != nil {
		return err
	}

	data, err := encode(upsert(members, member))
	if err != nil {
		return err
	}
	return s.kv.Set(constants.KeyMembers, data)
}

func (s *Store) ListLogs() ([]models.HabitLog, error) {
	return readList[models.HabitLog](s.kv, constants.KeyLogs)
}

func appendLog(logs []models.HabitLog, log models.HabitLog) ([]models.HabitLog, error) {
	if slices.ContainsFunc(logs, func(l models.HabitLog) bool { return l.ID == log.ID }) {
		return nil, fmt.Errorf("habit log %s already exists", log.ID)
	}
	return append(logs, log), nil
}

func (s *Store) AppendLog(log models.HabitLog) error {
	logs, err := s.ListLogs()
	if err != nil {
		return err
	}

	logs, err = appendLog(logs, log)
	if err != nil {
		return err
	}

	data, err := encode(logs)
	if err != nil {
		return err
	}
	return s.kv.Set(constants.KeyLogs, data)
}

func (s *Store) LogsForMember(memberID string) ([]models.HabitLog, error) {
	logs, err := s.ListLogs()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(logs, func(l models.HabitLog) bool {
		return l.MemberID != memberID
	}), nil
}

func (s *Store) LogsForMemberOnDate(memberID, date string) ([]models.HabitLog, error) {
	logs, err := s.LogsForMember(memberID)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(logs, func(l models.HabitLog) bool {
		return l.Date != date
	}), nil
}

func (s *Store) RecordCheckIn(member models.Member, log models.HabitLog) error {
	if log.MemberID != member.ID {
		return fmt.Errorf("habit log %s belongs to member %s, not %s", log.ID, log.MemberID, member.ID)
	}

	members, err := s.ListMembers()
	if err != nil {
		return err
	}
	logs, err := s.ListLogs()
	if err != nil {
		return err
	}

	logs, err = appendLog(logs, log)
	if err != nil {
		return err
	}

	memberData, err := encode(upsert(members, member))
	if err != nil {
		return err
	}
	logData, err := encode(logs)
	if err != nil {
		return err
	}

	if err := s.kv.SetMany(map[string][]byte{
		constants.KeyMembers: memberData,
		constants.KeyLogs:    logData,
	}); err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}
	return nil
}

func (s *Store) ReplaceAll(members []models.Member, logs []models.HabitLog) error {
	if members == nil {
		members = []models.Member{}
	}
	if logs == nil {
		logs = []models.HabitLog{}
	}

	memberData, err := encode(members)
	if err != nil {
		return err
	}
	logData, err := encode(logs)
	if err != nil {
		return err
	}

	return s.kv.SetMany(map[string][]byte{
		constants.KeyMembers: memberData,
		constants.KeyLogs:    logData,
	})
}

// GetCurrentMemberID returns the selected member id, or "" when none is set.
func (s *Store) GetCurrentMemberID() (string, error) {
	data, ok, err := s.kv.Get(constants.KeyCurrentMember)
	if err != nil {
		return "", fmt.Errorf("failed to read current member: %w", err)
	}
	if !ok {
		return "", nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		logger.Warn("Discarding unreadable current member", "error", err)
		return "", nil
	}
	return id, nil
}

// SetCurrentMemberID stores the selected member id; an empty id clears it.
func (s *Store) SetCurrentMemberID(id string) error {
	if id == "" {
		return s.kv.Delete(constants.KeyCurrentMember)
	}

	data, err := encode(id)
	if err != nil {
		return err
	}
	return s.kv.Set(constants.KeyCurrentMember, data)
}
