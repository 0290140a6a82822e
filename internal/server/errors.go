package server

import (
	"net/http"

	"github.com/conscient/onboarding-agent/internal/feedback"
	"github.com/conscient/onboarding-agent/internal/kb"
	"github.com/conscient/onboarding-agent/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *feedback.ErrNotFound:
		return http.StatusNotFound
	case *kb.ErrVersionNotFound, *kb.ErrSnapshotNotFound:
		return http.StatusNotFound
	case *schemas.ValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
