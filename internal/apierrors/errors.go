package apierrors

import (
	"errors"
	"fmt"
)

// Failure classes for calls against the clinic API. Server-returned failures
// carry their own extracted message (api.Error); these sentinels cover
// everything that never reached, or never came back from, the server.
var (
	// ErrNetwork is returned when no response was received at all. Its text is
	// shown to the user verbatim and is never replaced by a server message.
	ErrNetwork = errors.New("network error, check your connection")

	// ErrInvalidResponse is returned when a response body could not be decoded
	// as JSON. The underlying parse failure is logged, not exposed.
	ErrInvalidResponse = errors.New("invalid server response")

	// ErrNotAuthenticated is returned by operations that need a session when
	// none is active.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
