package http

import (
	"errors"
	"net/http"

	"github.com/mini-x/user-service/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:       http.StatusBadRequest,
	service.ErrAlreadyExists:      http.StatusConflict,
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnavailable:        http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code and sends a caller-safe message.
// Unexpected errors stay opaque: internal detail goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := http.StatusText(status)
	if status != http.StatusInternalServerError {
		for target := range errorStatusMap {
			if errors.Is(err, target) {
				message = target.Error()
				break
			}
		}
	}
	http.Error(w, message, status)
}
