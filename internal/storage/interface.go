package storage

import "github.com/julianstephens/motivnation/internal/models"

// Backend is a durable string-keyed blob store. Values are opaque to the
// backend; the Record Store encodes them as JSON.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	// SetMany writes all entries or none of them.
	SetMany(entries map[string][]byte) error
	Delete(key string) error

	// Path returns the file path or connection string the backend was opened with.
	Path() string
}

// Provider is the record-level view of storage used by the tracker and
// the presentation layers.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Members
	ListMembers() ([]models.Member, error)
	GetMember(id string) (models.Member, error)
	UpsertMember(models.Member) error

	// Logs
	ListLogs() ([]models.HabitLog, error)
	AppendLog(models.HabitLog) error
	LogsForMember(memberID string) ([]models.HabitLog, error)
	LogsForMemberOnDate(memberID, date string) ([]models.HabitLog, error)

	// RecordCheckIn persists an updated member together with its new log.
	RecordCheckIn(models.Member, models.HabitLog) error
	// ReplaceAll overwrites every member and log.
	ReplaceAll(members []models.Member, logs []models.HabitLog) error

	// Session
	GetCurrentMemberID() (string, error)
	SetCurrentMemberID(id string) error

	// Utils
	GetConfigPath() string
}
