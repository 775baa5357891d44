package service

import (
	"errors"
	"fmt"

	"campus-events/internal/models"
)

// These strings surface verbatim in API responses, hence the sentence casing.
var (
	ErrEmptyEmail        = errors.New("Please enter your ID or Email")
	ErrMissingFields     = errors.New("Please fill all required fields")
	ErrNotLoggedIn       = errors.New("Please login first")
	ErrUnauthorized      = errors.New("Unauthorized")
	ErrEventNotFound     = errors.New("Event not found")
	ErrAlreadyRegistered = errors.New("Already registered for this event")
	ErrEventFull         = errors.New("Event is full")
)

// RoleMismatchError rejects a login whose claimed role disagrees with the
// role stored at first login; roles are immutable after creation.
type RoleMismatchError struct {
	Role models.Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("This account is registered as %s", e.Role)
}
