package handlers

import (
	"github.com/evermorehealth/portal/internal/forms"
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
// It shares the form validator so custom rules such as emailshape are available.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: forms.Validator()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// VerifyEmailRequest is the body of the session verification API.
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}
