package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	defer func() { Logger = nil }()

	if err := Init(Config{ConfigDir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Logger == nil {
		t.Fatal("expected Logger to be set")
	}

	Warn("disk almost full", "free_mb", 12)

	logFile := filepath.Join(dir, "logs", "motivnation.log")
	if got := FilePath(dir); got != logFile {
		t.Errorf("FilePath() = %q, want %q", got, logFile)
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log file to contain the warning")
	}
}

func TestHelpersAreNoopsBeforeInit(t *testing.T) {
	Logger = nil
	// None of these should panic
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

func readLog(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(FilePath(dir))
	if os.IsNotExist(err) {
		// lumberjack creates the file on first write
		return ""
	}
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestInitRecordsStoreAndVersion(t *testing.T) {
	dir := t.TempDir()
	defer func() { Logger = nil }()

	if err := Init(Config{ConfigDir: dir, Store: "sqlite"}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	With("command", "log").Warn("Habit rejected", "habit", "steps")

	got := readLog(t, dir)
	for _, want := range []string{"store=sqlite", "version=v0.1.0", "command=log", "habit=steps"} {
		if !strings.Contains(got, want) {
			t.Errorf("log entry %q missing %q", got, want)
		}
	}
}

func TestInitLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantInfo  bool
		wantError bool
	}{
		{"default drops info", "", false, false},
		{"info keeps info", "info", true, false},
		{"error drops info", "error", false, false},
		{"unknown level", "chatty", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			defer func() { Logger = nil }()

			err := Init(Config{ConfigDir: dir, Level: tt.level})
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error for unknown level")
				}
				return
			}
			if err != nil {
				t.Fatalf("Init failed: %v", err)
			}

			Info("Member joined", "id", "m-1")
			logged := strings.Contains(readLog(t, dir), "Member joined")
			if logged != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", logged, tt.wantInfo)
			}
		})
	}
}

func TestWithBeforeInit(t *testing.T) {
	Logger = nil
	if l := With("command", "status"); l != nil {
		t.Error("expected nil sub-logger before Init")
	}
}
