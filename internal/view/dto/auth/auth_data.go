package auth

import (
	"github.com/evermorehealth/portal/internal/forms"
	"github.com/evermorehealth/portal/internal/workflow"
)

// LoginData is the view model for the login page.
// Errors are already filtered through forms.Visible.
type LoginData struct {
	Form      forms.LoginForm
	Errors    forms.Errors
	Attempted bool
	Banner    string
	Next      string
}

// SignupData is the view model for the signup page.
type SignupData struct {
	Form      forms.SignupForm
	Errors    forms.Errors
	Attempted bool
	Banner    string
	Strength  forms.Strength
}

// ForgotPasswordData is the view model for the three-step recovery page.
type ForgotPasswordData struct {
	Flow      workflow.ResetFlow
	Form      forms.ResetForm
	Errors    forms.Errors
	Attempted bool
	Banner    string
	// Remaining is the resend countdown in whole seconds; 0 enables resend.
	Remaining int
}

// VerifyEmailData is the view model for the email verification landing page.
type VerifyEmailData struct {
	OK      bool
	Message string
}
