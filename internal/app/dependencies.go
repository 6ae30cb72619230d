package app

import (
	"github.com/evermorehealth/portal/internal/audit"
	"github.com/evermorehealth/portal/internal/config"
	"github.com/evermorehealth/portal/internal/content"
	"github.com/evermorehealth/portal/internal/handlers"
	"github.com/evermorehealth/portal/internal/pubsub"
	"github.com/evermorehealth/portal/internal/rendering"
	"github.com/samber/do/v2"
)

// Dependencies holds the services the HTTP server is built from.
// It is resolved once from the injector by the entrypoint.
type Dependencies struct {
	Config   *config.Config
	Content  *content.Store
	Bus      *pubsub.WatermillBridge
	Audit    *audit.Subscriber
	Renderer *rendering.UniversalRenderer
	Auth     *handlers.AuthHandler
	Verify   *handlers.VerifyHandler
	Pages    *handlers.PagesHandler
}

// Resolve invokes every service the server needs.
func Resolve(i do.Injector) (Dependencies, error) {
	var (
		deps Dependencies
		err  error
	)
	if deps.Config, err = do.Invoke[*config.Config](i); err != nil {
		return deps, err
	}
	if deps.Content, err = do.Invoke[*content.Store](i); err != nil {
		return deps, err
	}
	if deps.Bus, err = do.Invoke[*pubsub.WatermillBridge](i); err != nil {
		return deps, err
	}
	if deps.Audit, err = do.Invoke[*audit.Subscriber](i); err != nil {
		return deps, err
	}
	if deps.Renderer, err = do.Invoke[*rendering.UniversalRenderer](i); err != nil {
		return deps, err
	}
	if deps.Auth, err = do.Invoke[*handlers.AuthHandler](i); err != nil {
		return deps, err
	}
	if deps.Verify, err = do.Invoke[*handlers.VerifyHandler](i); err != nil {
		return deps, err
	}
	if deps.Pages, err = do.Invoke[*handlers.PagesHandler](i); err != nil {
		return deps, err
	}
	return deps, nil
}
