package comment

import (
	"errors"
	"net/http"
)

var ErrNotFound = errors.New("comment not found")

func GetHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
