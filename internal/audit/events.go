// Package audit publishes auth workflow outcomes on the event bus and logs
// them from a single subscriber. Nothing here affects a response.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/evermorehealth/portal/internal/pubsub"
)

// Kind names an auth workflow outcome.
type Kind string

const (
	LoginSucceeded    Kind = "login.succeeded"
	LoginFailed       Kind = "login.failed"
	SignupCompleted   Kind = "signup.completed"
	SignupFailed      Kind = "signup.failed"
	ResetRequested    Kind = "reset.requested"
	ResetCompleted    Kind = "reset.completed"
	EmailVerified     Kind = "email.verified"
	EmailVerifyFailed Kind = "email.verify_failed"
	LoggedOut         Kind = "logout"
)

// Kinds lists every outcome kind.
var Kinds = []Kind{
	LoginSucceeded, LoginFailed,
	SignupCompleted, SignupFailed,
	ResetRequested, ResetCompleted,
	EmailVerified, EmailVerifyFailed,
	LoggedOut,
}

// Failure reports whether k records a failed attempt.
func (k Kind) Failure() bool {
	switch k {
	case LoginFailed, SignupFailed, EmailVerifyFailed:
		return true
	}
	return false
}

// AuthEvent is the payload of every auth outcome. Email is masked before
// publishing.
type AuthEvent struct {
	Kind      Kind      `json:"kind"`
	Email     string    `json:"email,omitempty"`
	SessionID string    `json:"sessionId,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

// AuthOutcome is the topic every auth outcome is published on.
var AuthOutcome = pubsub.NewEvent[AuthEvent]("auth.outcome", "An auth workflow finished, successfully or not")

// Publish sends ev on the bus. Failures are logged and swallowed.
func Publish(ctx context.Context, pub pubsub.Publisher, ev AuthEvent) {
	if pub == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	if err := pubsub.Publish(ctx, pub, AuthOutcome, ev); err != nil {
		slog.WarnContext(ctx, "failed to publish auth event", "kind", ev.Kind, "error", err)
	}
}
