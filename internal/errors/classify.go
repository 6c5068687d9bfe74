package errors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Two error classes matter here: per-row duplicate conflicts, which a
// seeder logs and skips, and precondition failures, which abort the
// whole run. Everything else propagates untouched.

// InsufficientUsersError is the fatal precondition failure: an
// operation needs more existing users than the database holds.
type InsufficientUsersError struct {
	Need int
	Have int
}

func (e *InsufficientUsersError) Error() string {
	return fmt.Sprintf("not enough users: need %d, have %d", e.Need, e.Have)
}

// InsufficientUsers builds the precondition error for a run abort.
func InsufficientUsers(need, have int) error {
	return &InsufficientUsersError{Need: need, Have: have}
}

// IsDuplicate reports whether err is a unique-constraint violation.
// Relies on gorm's TranslateError so both sqlite and mysql map onto
// gorm.ErrDuplicatedKey.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsPrecondition reports whether err is a fatal precondition failure.
func IsPrecondition(err error) bool {
	var target *InsufficientUsersError
	return errors.As(err, &target)
}
