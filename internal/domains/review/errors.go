package review

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when no review matches (title, id).
	ErrNotFound = errors.New("review not found")

	// ErrAlreadyReviewed guards the one-review-per-user-per-title rule.
	// It applies to creation only; editing an existing review is how a
	// user changes their mind.
	ErrAlreadyReviewed = errors.New("you have already reviewed this title")
)

// GetHTTPStatus maps review errors to status codes. The duplicate is a
// 400, not a 409: the API treats every rejected write uniformly.
func GetHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyReviewed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
