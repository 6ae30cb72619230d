package audit

import (
	"context"
	"log/slog"

	"github.com/evermorehealth/portal/internal/logging"
	"github.com/evermorehealth/portal/internal/pubsub"
)

// Subscriber writes every auth event to the audit log.
type Subscriber struct {
	sub    pubsub.Subscriber
	logger *slog.Logger
}

// NewSubscriber creates an audit subscriber. A nil logger uses slog.Default.
func NewSubscriber(sub pubsub.Subscriber, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{sub: sub, logger: logger.With("component", "audit")}
}

// Start registers the subscription. It returns once subscribed; messages are
// handled until ctx is cancelled or the bus is closed.
func (s *Subscriber) Start(ctx context.Context) error {
	return pubsub.Subscribe(ctx, s.sub, AuthOutcome, s.handle)
}

// Run subscribes and blocks until ctx is done.
func (s *Subscriber) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	s.logger.Info("Audit subscriber started")
	<-ctx.Done()
	s.logger.Info("Audit subscriber stopped")
	return nil
}

func (s *Subscriber) handle(ctx context.Context, ev AuthEvent) error {
	level := slog.LevelInfo
	if ev.Kind.Failure() {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "auth event",
		"kind", string(ev.Kind),
		// MaskEmail is idempotent, so already masked values pass through.
		"email", logging.MaskEmail(ev.Email),
		"session_id", ev.SessionID,
		"request_id", ev.RequestID,
		"detail", ev.Detail,
		"at", ev.At,
	)
	return nil
}
