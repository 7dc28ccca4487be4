package category

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when no category matches the given slug.
	ErrNotFound = errors.New("category not found")

	// ErrAlreadyExists is returned when the name or slug is taken.
	ErrAlreadyExists = errors.New("category already exists")
)

// GetHTTPStatus maps domain errors to HTTP status codes, looking through
// wrapped errors. Duplicates surface as 400, matching the API contract
// for every validation-class failure.
func GetHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
