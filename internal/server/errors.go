package server

import (
	"errors"
	"net/http"

	"github.com/reco/reco-builder/internal/document"
	"github.com/reco/reco-builder/internal/export"
	"github.com/reco/reco-builder/internal/llm"
	"github.com/reco/reco-builder/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		rateLimited   *llm.RateLimitError
		overloaded    *llm.OverloadedError
		generation    *llm.GenerationError
		schemaErr     *schemas.ValidationError
		exportErr     *export.ExportError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, document.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &rateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &overloaded):
		return http.StatusServiceUnavailable
	case errors.As(err, &generation), errors.As(err, &schemaErr):
		return http.StatusBadGateway
	case errors.As(err, &exportErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-facing message for an error. Transient
// generation failures and export failures get fixed phrasings the frontend
// keys on; everything else surfaces its own message.
func PublicMessage(err error) string {
	var (
		rateLimited *llm.RateLimitError
		overloaded  *llm.OverloadedError
		exportErr   *export.ExportError
	)
	switch {
	case errors.As(err, &overloaded):
		return "The AI service is temporarily overloaded. Please try again in a moment."
	case errors.As(err, &rateLimited):
		return "Too many generation requests. Please wait before trying again."
	case errors.As(err, &exportErr):
		return "Download failed. Please try again."
	default:
		return err.Error()
	}
}
