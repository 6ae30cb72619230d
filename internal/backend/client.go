package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/evermorehealth/portal/internal/config"
	"github.com/evermorehealth/portal/internal/domain"
)

// Backend endpoint paths, relative to the configured base URL.
const (
	PathLogin          = "/auth/login"
	PathSignup         = "/auth/signup"
	PathForgotPassword = "/auth/forgot-password"
	PathResetPassword  = "/auth/reset-password"
	PathVerifyEmail    = "/auth/verify-email"
)

// maxBodyBytes caps how much of a backend reply is read.
const maxBodyBytes = 1 << 20

// Client talks JSON over HTTP to the external auth backend.
// It implements domain.Authenticator.
type Client struct {
	baseURL    string
	httpClient *http.Client
	exposeOTP  bool
}

var _ domain.Authenticator = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithDebugOTP controls whether debugOtp values survive ForgotPassword.
func WithDebugOTP(expose bool) Option {
	return func(c *Client) { c.exposeOTP = expose }
}

// New creates a Client for baseURL with the given request timeout.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a Client from the application configuration.
// Debug OTPs are only passed through outside production.
func NewFromConfig(cfg config.Provider) *Client {
	return New(cfg.GetBackendURL(), cfg.GetBackendTimeout(), WithDebugOTP(!cfg.IsProduction()))
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	var out domain.LoginResult
	if err := c.postJSON(ctx, PathLogin, req, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out, nil
}

// Signup creates an account on the backend.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (*domain.MessageResult, error) {
	var out domain.MessageResult
	if err := c.postJSON(ctx, PathSignup, req, &out); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return &out, nil
}

// ForgotPassword asks the backend to send a one-time code.
func (c *Client) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) (*domain.ForgotPasswordResult, error) {
	var out domain.ForgotPasswordResult
	if err := c.postJSON(ctx, PathForgotPassword, req, &out); err != nil {
		return nil, fmt.Errorf("forgot password: %w", err)
	}
	if !c.exposeOTP {
		out.DebugOTP = ""
	}
	return &out, nil
}

// ResetPassword sets a new password. The backend validates the one-time code here.
func (c *Client) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) (*domain.MessageResult, error) {
	var out domain.MessageResult
	if err := c.postJSON(ctx, PathResetPassword, req, &out); err != nil {
		return nil, fmt.Errorf("reset password: %w", err)
	}
	return &out, nil
}

// VerifyEmail forwards a verification token and returns the backend reply
// untouched. Non-2xx statuses are not errors here; the caller mirrors them.
// Any valid JSON body is forwarded; one that is not valid JSON is reported as
// an empty object. ok, token and message are only read from an object.
func (c *Client) VerifyEmail(ctx context.Context, token string) (*domain.VerifyEmailResult, error) {
	resp, err := c.do(ctx, PathVerifyEmail, map[string]string{"token": token})
	if err != nil {
		return nil, fmt.Errorf("verify email: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	result := &domain.VerifyEmailResult{Status: resp.StatusCode, Body: json.RawMessage("{}")}
	if !json.Valid(raw) {
		slog.Warn("Backend returned a malformed verify-email body", "status", resp.StatusCode)
		return result, nil
	}
	result.Body = raw

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return result, nil
	}
	result.OK = truthy(fields["ok"])
	if tok, ok := fields["token"].(string); ok {
		result.Token = tok
	}
	if msg, ok := fields["message"].(string); ok {
		result.Message = msg
	}
	return result, nil
}

// postJSON sends body and decodes a 2xx reply into out. Other statuses become *domain.APIError.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := c.do(ctx, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if len(bytes.TrimSpace(raw)) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return resp, nil
}

// decodeAPIError builds an APIError from a failed reply, preferring the
// body's "message", then "error", then the status text.
func decodeAPIError(status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Status: status}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// truthy follows JavaScript truthiness for the JSON value kinds.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
