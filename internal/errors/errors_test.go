package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/julianstephens/motivnation/internal/models"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "plain error has no hint",
			err:      errors.New("disk full"),
			expected: "Error: disk full",
		},
		{
			name:     "wrapped domain error gets hint",
			err:      fmt.Errorf("submit log: %w", models.ErrInvalidHabit),
			expected: "Error: submit log: invalid habit\nHint: habit must be one of: hydration, steps, workout, sleep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestHintCoversDomainErrors(t *testing.T) {
	for _, err := range []error{
		models.ErrMissingRequiredField,
		models.ErrInvalidHabit,
		models.ErrInvalidQuantity,
		models.ErrMemberNotFound,
		models.ErrNoCurrentMember,
		models.ErrInvalidDate,
	} {
		if strings.TrimSpace(Hint(err)) == "" {
			t.Errorf("no hint for %v", err)
		}
	}
}
