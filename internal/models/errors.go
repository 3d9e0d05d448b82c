package models

import "errors"

var (
	// ErrInvalidHabit is returned for a habit kind outside the supported set
	ErrInvalidHabit = errors.New("invalid habit")
	// ErrInvalidQuantity is returned for negative or non-finite quantities
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrMissingRequiredField is returned when a submission lacks a member, habit or quantity
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrMemberNotFound is returned when a member id has no stored record
	ErrMemberNotFound = errors.New("member not found")
	// ErrNoCurrentMember is returned when no member has been selected
	ErrNoCurrentMember = errors.New("no current member selected")
	// ErrInvalidDate is returned for dates not in YYYY-MM-DD format
	ErrInvalidDate = errors.New("invalid date")
)
