package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/motivnation/internal/constants"
	"github.com/julianstephens/motivnation/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// FormatDate renders t as a calendar date in its own location
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD string. The result is midnight UTC so that
// day arithmetic is never affected by DST transitions.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", models.ErrInvalidDate, date)
	}
	return t, nil
}

// ValidateDate reports whether date is a well-formed calendar date
func ValidateDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}

// AddDays shifts a calendar date by n days
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// PreviousDay returns the calendar day before date
func PreviousDay(date string) (string, error) {
	return AddDays(date, -1)
}

// UntilMidnight returns how long remains before the calendar day of now ends,
// measured in now's location.
func UntilMidnight(now time.Time) time.Duration {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return midnight.Sub(now)
}

// FormatCountdown renders a duration as "Xh Ym"
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
