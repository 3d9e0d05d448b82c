package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/motivnation/internal/logger"
	"github.com/julianstephens/motivnation/internal/models"
)

// Hint returns a short suggestion for correcting a rejected submission,
// or an empty string when the error has no known remedy.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrMissingRequiredField):
		return "fill in the member, habit and quantity and try again"
	case errors.Is(err, models.ErrInvalidHabit):
		return "habit must be one of: hydration, steps, workout, sleep"
	case errors.Is(err, models.ErrInvalidQuantity):
		return "quantity must be a non-negative number"
	case errors.Is(err, models.ErrMemberNotFound):
		return "run 'motivnation members' to see who has joined"
	case errors.Is(err, models.ErrNoCurrentMember):
		return "run 'motivnation join NAME' or 'motivnation select MEMBER' first"
	case errors.Is(err, models.ErrInvalidDate):
		return "dates use the YYYY-MM-DD format"
	default:
		return ""
	}
}

// Format formats an error message with a consistent "Error: " prefix,
// followed by a hint line for recoverable input errors.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
