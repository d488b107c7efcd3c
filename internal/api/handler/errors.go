package handler

import (
	"net/http"

	"github.com/dkahl/bogglegame-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeInvalidVariant      = apierr.CodeInvalidVariant
	CodeInvalidScoringRules = apierr.CodeInvalidScoringRules
	CodeUnauthorized        = apierr.CodeUnauthorized
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeGameNotFound        = apierr.CodeGameNotFound
	CodeNotGameOwner        = apierr.CodeNotGameOwner
	CodeDictionaryNotLoaded = apierr.CodeDictionaryNotLoaded
	CodeUsernameExists      = apierr.CodeUsernameExists
	CodeInvalidCredentials  = apierr.CodeInvalidCredentials
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
