package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Run serves HTTP alongside the audit subscriber and, when CONTENT_DIR is set,
// the content watcher. It returns after SIGINT, SIGTERM or ctx cancellation
// once everything has stopped, or as soon as one part fails.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	addr := s.deps.Config.GetServerAddr()

	g.Go(func() error {
		slog.Info("Starting server", "addr", addr, "env", s.deps.Config.GetAppEnv())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return s.deps.Audit.Run(gctx)
	})

	if dir := s.deps.Config.GetContentDir(); dir != "" {
		g.Go(func() error {
			return s.deps.Content.Watch(gctx, dir)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		err := s.E.Shutdown(shutdownCtx)
		if cerr := s.deps.Bus.Close(); cerr != nil {
			slog.Warn("Failed to close event bus", "error", cerr)
		}
		return err
	})

	return g.Wait()
}
