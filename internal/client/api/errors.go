package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable wraps transport-level failures (DNS, refused
	// connections, timeouts). The backend was never reached, or never
	// answered.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks responses rejected with HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is an application-level failure: the backend answered, and the
// envelope (or the raw response) said no.
type Error struct {
	Status      int
	Message     string
	FieldErrors []string
}

// Error renders the top-level message, with field-level validation messages
// concatenated after it when present.
func (e *Error) Error() string {
	if len(e.FieldErrors) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.FieldErrors, ", "))
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return nil
}
