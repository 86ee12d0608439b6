package service

import "errors"

var (
	// ErrDuplicateCategory is returned when a category with the same name and
	// income flag already exists for the user.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrInvalidCategory is returned when a referenced category does not exist
	// or is not owned by the user.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrGoalNotFound is returned when no goal with the given ID belongs to
	// the user.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrUserNotFound is returned when no user with the given ID exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is returned on login failure. It deliberately does
	// not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// PersistenceError wraps an underlying storage failure with the operation that
// hit it and, when known, the entity involved.
type PersistenceError struct {
	Op       string
	EntityID string
	Err      error
}

func (e *PersistenceError) Error() string {
	if e.EntityID != "" {
		return e.Op + " " + e.EntityID + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
