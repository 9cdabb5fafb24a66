package domain

import (
	"errors"
)

// Kind classifies an Error so callers can branch on it without matching strings.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindBusinessRule
	KindStorageUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBusinessRule:
		return "business_rule_violation"
	case KindStorageUnavailable:
		return "storage_unavailable"
	default:
		return "unexpected"
	}
}

// Error is a classified application error. Code is stable and meant for clients,
// Message is human readable.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

var (
	ErrCollegeNotFound      = newError(KindNotFound, "college_not_found", "college not found")
	ErrEventNotFound        = newError(KindNotFound, "event_not_found", "event not found")
	ErrStudentNotFound      = newError(KindNotFound, "student_not_found", "student not found or inactive")
	ErrRegistrationNotFound = newError(KindNotFound, "registration_not_found", "registration not found or already cancelled")
	ErrAttendanceNotFound   = newError(KindNotFound, "attendance_not_found", "attendance record not found")

	ErrEventInactive           = newError(KindBusinessRule, "event_inactive", "event is not active for registration")
	ErrDeadlinePassed          = newError(KindBusinessRule, "deadline_passed", "registration deadline has passed")
	ErrCapacityExceeded        = newError(KindBusinessRule, "capacity_exceeded", "event is at full capacity")
	ErrInvalidRating           = newError(KindBusinessRule, "invalid_rating", "rating must be between 1 and 5")
	ErrCapacityBelowRegistered = newError(KindBusinessRule, "capacity_below_registered", "capacity cannot be lower than the current number of registrations")

	ErrDuplicateRegistration = newError(KindConflict, "duplicate_registration", "student is already registered for this event")
	ErrAlreadyCheckedIn      = newError(KindConflict, "already_checked_in", "student is already checked in for this event")
	ErrCollegeCodeExists     = newError(KindConflict, "college_code_exists", "college code already exists")
	ErrStudentEmailExists    = newError(KindConflict, "student_email_exists", "email address already exists")
	ErrStudentNumberExists   = newError(KindConflict, "student_number_exists", "student number already exists for this college")

	ErrStorageUnavailable = newError(KindStorageUnavailable, "storage_unavailable", "service is busy, please retry")
)

// NewValidationError wraps a rejection reason produced before any store access.
func NewValidationError(err error) *Error {
	return newError(KindValidation, "validation_error", err.Error())
}

// KindOf returns the kind of the first *Error found in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnexpected
}

// AsError returns the first *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}
