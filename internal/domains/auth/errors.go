package auth

import (
	"errors"
	"net/http"

	"reviewdb-backend/internal/domains/user"
)

// ErrCodeMismatch covers every way a confirmation code can fail:
// forged, expired, or revoked by a profile change. One error for all
// three so responses do not leak which it was.
var ErrCodeMismatch = errors.New("confirmation code is invalid")

func GetHTTPStatus(err error) int {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCodeMismatch),
		errors.Is(err, user.ErrUsernameTaken),
		errors.Is(err, user.ErrEmailTaken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
