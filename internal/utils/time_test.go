package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/motivnation/internal/models"
)

func TestPreviousDay(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-10", "2025-03-09"},
		{"2025-03-01", "2025-02-28"},
		{"2024-03-01", "2024-02-29"},
		{"2025-01-01", "2024-12-31"},
	}

	for _, tt := range tests {
		got, err := PreviousDay(tt.date)
		if err != nil {
			t.Fatalf("PreviousDay(%q) returned error: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("PreviousDay(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "2025-13-01", "03/10/2025", "2025-3-1"} {
		if _, err := ParseDate(input); !errors.Is(err, models.ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", input, err)
		}
	}
}

func TestUntilMidnight(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	now := time.Date(2025, 6, 1, 21, 30, 0, 0, loc)

	got := UntilMidnight(now)
	if got != 2*time.Hour+30*time.Minute {
		t.Errorf("UntilMidnight = %v, want 2h30m", got)
	}
	if s := FormatCountdown(got); s != "2h 30m" {
		t.Errorf("FormatCountdown = %q, want %q", s, "2h 30m")
	}
}

func TestLoadLocation(t *testing.T) {
	if loc, err := LoadLocation(""); err != nil || loc != time.Local {
		t.Errorf("empty timezone should resolve to Local, got %v, %v", loc, err)
	}
	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
	if !ValidateTimezone("UTC") {
		t.Error("UTC should be valid")
	}
}
