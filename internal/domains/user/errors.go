package user

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when no user matches the identifier.
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken means the username belongs to another account.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrEmailTaken means the email belongs to another account.
	ErrEmailTaken = errors.New("email already registered")
)

func GetHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
