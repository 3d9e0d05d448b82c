package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/motivnation/internal/storage/postgres"
	"github.com/julianstephens/motivnation/internal/storage/sqlite"
)

// Kind names a backend implementation.
type Kind string

const (
	KindJSON     Kind = "json"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// DetectKind picks the backend for a config value: a PostgreSQL connection
// string, a path ending in .json, or otherwise a SQLite database file.
func DetectKind(config string) Kind {
	switch {
	case postgres.IsConnString(config):
		return KindPostgres
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return KindJSON
	default:
		return KindSQLite
	}
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// NewBackend builds, but does not open, the backend for config. Connection
// strings are not checked for embedded credentials here; callers that take
// them from the command line use postgres.ValidateConnString first.
func NewBackend(config string) (Backend, error) {
	kind := DetectKind(config)
	if kind == KindPostgres {
		return postgres.New(config), nil
	}

	path, err := ExpandPath(config)
	if err != nil {
		return nil, err
	}
	if kind == KindJSON {
		return NewJSONStore(path), nil
	}
	return sqlite.NewStore(path), nil
}

// Open builds a Record Store over the backend selected by config. The
// caller still decides whether to Init or Load it.
func Open(config string) (*Store, error) {
	kv, err := NewBackend(config)
	if err != nil {
		return nil, err
	}
	return NewStore(kv), nil
}
