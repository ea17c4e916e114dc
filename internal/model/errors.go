package model

import (
	"errors"
	"fmt"
)

// Domain error sentinels. Callers match them with errors.Is.
var (
	// ErrInvalidDate reports input that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

	// ErrPastDate reports an attempt to schedule a date before today.
	// It is a warning-class rejection: callers typically re-prompt.
	ErrPastDate = errors.New("cannot add a past date")

	// ErrDuplicateDate reports a date already scheduled for the user.
	ErrDuplicateDate = errors.New("date already scheduled")

	// ErrDuplicateTask reports a title already present in the plan.
	ErrDuplicateTask = errors.New("task already exists for this date")

	ErrPlanNotFound = errors.New("plan not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken reports a signup against a registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password
	// so a login failure does not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports rejected user input with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DataError wraps a persistence failure crossing the store boundary.
// Raw driver errors never travel further up than this type.
type DataError struct {
	Op  string
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a validation rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrPastDate)
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateDate) ||
		errors.Is(err, ErrDuplicateTask) ||
		errors.Is(err, ErrEmailTaken)
}

// IsNotFound reports whether err is a failed lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPlanNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsDataAccess reports whether err originated in the persistence layer.
func IsDataAccess(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}
