package app

import (
	"log/slog"

	"github.com/evermorehealth/portal/internal/audit"
	"github.com/evermorehealth/portal/internal/backend"
	"github.com/evermorehealth/portal/internal/config"
	"github.com/evermorehealth/portal/internal/content"
	"github.com/evermorehealth/portal/internal/domain"
	"github.com/evermorehealth/portal/internal/handlers"
	"github.com/evermorehealth/portal/internal/pubsub"
	"github.com/evermorehealth/portal/internal/rendering"
	"github.com/evermorehealth/portal/internal/workflow"
	"github.com/jonboulle/clockwork"
	"github.com/samber/do/v2"
)

// options are the replaceable services, mostly for tests.
type options struct {
	auth    domain.Authenticator
	clock   clockwork.Clock
	content *content.Store
}

// Option replaces a default service.
type Option func(*options)

// WithAuthenticator replaces the HTTP backend client.
func WithAuthenticator(a domain.Authenticator) Option {
	return func(o *options) { o.auth = a }
}

// WithClock replaces the real clock used by the resend cooldown.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithContentStore replaces the catalog loaded from config.
func WithContentStore(s *content.Store) Option {
	return func(o *options) { o.content = s }
}

// NewInjector registers every portal service. Services are built lazily on
// first Invoke.
func NewInjector(cfg *config.Config, opts ...Option) do.Injector {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue[clockwork.Clock](injector, o.clock)
	do.ProvideValue(injector, workflow.NewGuard())
	do.ProvideValue(injector, rendering.NewUniversalRenderer())

	do.Provide(injector, func(i do.Injector) (domain.Authenticator, error) {
		if o.auth != nil {
			return o.auth, nil
		}
		return backend.NewFromConfig(do.MustInvoke[*config.Config](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*content.Store, error) {
		if o.content != nil {
			return o.content, nil
		}
		return content.NewStoreFromConfig(do.MustInvoke[*config.Config](i).GetContentDir())
	})

	do.Provide(injector, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})

	do.Provide(injector, func(i do.Injector) (*audit.Subscriber, error) {
		return audit.NewSubscriber(do.MustInvoke[*pubsub.WatermillBridge](i), slog.Default()), nil
	})

	do.Provide(injector, func(i do.Injector) (*workflow.Recovery, error) {
		cooldown := workflow.NewCooldown(do.MustInvoke[clockwork.Clock](i), workflow.ResendCooldown)
		return workflow.NewRecovery(
			do.MustInvoke[domain.Authenticator](i),
			do.MustInvoke[*workflow.Guard](i),
			cooldown,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(
			do.MustInvoke[domain.Authenticator](i),
			do.MustInvoke[*workflow.Guard](i),
			do.MustInvoke[*workflow.Recovery](i),
			do.MustInvoke[*pubsub.WatermillBridge](i),
			do.MustInvoke[*config.Config](i).IsProduction(),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.VerifyHandler, error) {
		return handlers.NewVerifyHandler(
			do.MustInvoke[domain.Authenticator](i),
			do.MustInvoke[*pubsub.WatermillBridge](i),
			do.MustInvoke[*config.Config](i).IsProduction(),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PagesHandler, error) {
		return handlers.NewPagesHandler(do.MustInvoke[*content.Store](i)), nil
	})

	return injector
}
