package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/evermorehealth/portal/internal/app"
	"github.com/evermorehealth/portal/internal/config"
	"github.com/evermorehealth/portal/internal/logging"
	"github.com/evermorehealth/portal/internal/server"
)

func main() {
	// Initialize the global logger first.
	logging.New()

	// Exits when required settings are missing.
	cfg := config.New()

	injector := app.NewInjector(cfg)
	defer injector.Shutdown()

	deps, err := app.Resolve(injector)
	if err != nil {
		slog.Error("Failed to build services", "error", err)
		os.Exit(1)
	}

	s := server.New(deps)
	if err := s.Run(context.Background()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		injector.Shutdown()
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
