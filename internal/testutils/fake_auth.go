package testutils

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/evermorehealth/portal/internal/domain"
)

// FakeAuth is an in-memory domain.Authenticator for tests. Each operation
// counts its calls and delegates to an optional hook; without a hook it succeeds.
type FakeAuth struct {
	LoginFn          func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error)
	SignupFn         func(ctx context.Context, req domain.SignupRequest) (*domain.MessageResult, error)
	ForgotPasswordFn func(ctx context.Context, req domain.ForgotPasswordRequest) (*domain.ForgotPasswordResult, error)
	ResetPasswordFn  func(ctx context.Context, req domain.ResetPasswordRequest) (*domain.MessageResult, error)
	VerifyEmailFn    func(ctx context.Context, token string) (*domain.VerifyEmailResult, error)

	logins, signups, forgots, resets, verifies atomic.Int32

	mu   sync.Mutex
	last []any
}

var _ domain.Authenticator = (*FakeAuth)(nil)

func (f *FakeAuth) record(req any) {
	f.mu.Lock()
	f.last = append(f.last, req)
	f.mu.Unlock()
}

// Requests returns every request the fake has received, in order.
func (f *FakeAuth) Requests() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.last...)
}

func (f *FakeAuth) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	f.logins.Add(1)
	f.record(req)
	if f.LoginFn != nil {
		return f.LoginFn(ctx, req)
	}
	return &domain.LoginResult{Token: "test-token"}, nil
}

func (f *FakeAuth) Signup(ctx context.Context, req domain.SignupRequest) (*domain.MessageResult, error) {
	f.signups.Add(1)
	f.record(req)
	if f.SignupFn != nil {
		return f.SignupFn(ctx, req)
	}
	return &domain.MessageResult{}, nil
}

func (f *FakeAuth) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) (*domain.ForgotPasswordResult, error) {
	f.forgots.Add(1)
	f.record(req)
	if f.ForgotPasswordFn != nil {
		return f.ForgotPasswordFn(ctx, req)
	}
	return &domain.ForgotPasswordResult{}, nil
}

func (f *FakeAuth) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) (*domain.MessageResult, error) {
	f.resets.Add(1)
	f.record(req)
	if f.ResetPasswordFn != nil {
		return f.ResetPasswordFn(ctx, req)
	}
	return &domain.MessageResult{}, nil
}

func (f *FakeAuth) VerifyEmail(ctx context.Context, token string) (*domain.VerifyEmailResult, error) {
	f.verifies.Add(1)
	f.record(token)
	if f.VerifyEmailFn != nil {
		return f.VerifyEmailFn(ctx, token)
	}
	return &domain.VerifyEmailResult{Status: 200, Body: []byte(`{"ok":true}`), OK: true}, nil
}

func (f *FakeAuth) LoginCalls() int          { return int(f.logins.Load()) }
func (f *FakeAuth) SignupCalls() int         { return int(f.signups.Load()) }
func (f *FakeAuth) ForgotPasswordCalls() int { return int(f.forgots.Load()) }
func (f *FakeAuth) ResetPasswordCalls() int  { return int(f.resets.Load()) }
func (f *FakeAuth) VerifyEmailCalls() int    { return int(f.verifies.Load()) }
