package domain

import (
	"context"
	"encoding/json"
)

// Session cookie names. LegacySessionCookie is only ever expired, never issued.
const (
	SessionCookie       = "evermore_token"
	LegacySessionCookie = "evm_token"
	SessionMaxAge       = 7 * 24 * 60 * 60
)

// LoginRequest is the body sent to the backend login operation.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the fields of a login response the portal uses.
type LoginResult struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// SignupRequest is the body sent to the backend signup operation.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// ForgotPasswordRequest asks the backend to issue a one-time code.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResult may carry a debug OTP outside production.
type ForgotPasswordResult struct {
	Message  string `json:"message,omitempty"`
	DebugOTP string `json:"debugOtp,omitempty"`
}

// ResetPasswordRequest consumes the one-time code and sets a new password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// MessageResult is a response whose only used field is an optional message.
type MessageResult struct {
	Message string `json:"message,omitempty"`
}

// VerifyEmailResult is the raw backend reply to an email verification.
// Body is forwarded verbatim; OK and Token are read from it.
type VerifyEmailResult struct {
	Status  int
	Body    json.RawMessage
	OK      bool
	Token   string
	Message string
}

// Authenticated reports whether the reply should start a session: a 2xx
// status with a truthy ok and a token.
func (r *VerifyEmailResult) Authenticated() bool {
	return r.Status >= 200 && r.Status <= 299 && r.OK && r.Token != ""
}

// Authenticator is the contract of the external auth backend.
type Authenticator interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Signup(ctx context.Context, req SignupRequest) (*MessageResult, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*ForgotPasswordResult, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResult, error)
	VerifyEmail(ctx context.Context, token string) (*VerifyEmailResult, error)
}
