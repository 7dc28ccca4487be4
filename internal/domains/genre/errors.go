package genre

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound      = errors.New("genre not found")
	ErrAlreadyExists = errors.New("genre already exists")
)

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
