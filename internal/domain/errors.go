package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common workflow failures.
var (
	ErrValidation         = errors.New("form has validation errors")
	ErrRequestInFlight    = errors.New("a request for this form is already in progress")
	ErrBackendUnavailable = errors.New("backend service unavailable")
	ErrInvalidStep        = errors.New("action is not allowed at this step")
	ErrCooldownActive     = errors.New("please wait before requesting another code")
)

// GenericFailureMessage is shown when a failure carries no user-facing message.
const GenericFailureMessage = "Something went wrong. Please try again."

// APIError is the typed failure returned by the backend client for non-2xx responses.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.Status); text != "" {
		return text
	}
	return "backend request failed"
}

// UserMessage returns the message to put in front of the user for err.
// API errors carry their own message; everything else falls back.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	switch {
	case errors.Is(err, ErrRequestInFlight), errors.Is(err, ErrCooldownActive):
		return capitalize(err.Error())
	}
	return fallback
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:] + "."
}
