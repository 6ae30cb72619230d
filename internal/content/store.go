package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store serves the current catalog and can reload it from its source.
type Store struct {
	mu      sync.RWMutex
	catalog *Catalog

	fs  afero.Fs
	dir string
}

// NewStore loads the catalog from dir on fs.
func NewStore(fs afero.Fs, dir string) (*Store, error) {
	s := &Store{fs: fs, dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEmbeddedStore loads the built-in catalog.
func NewEmbeddedStore() (*Store, error) {
	return NewStore(EmbeddedFs(), EmbeddedDir)
}

// NewStoreFromConfig loads the catalog from contentDir when set, or the built-in one.
func NewStoreFromConfig(contentDir string) (*Store, error) {
	if contentDir == "" {
		return NewEmbeddedStore()
	}
	return NewStore(afero.NewBasePathFs(afero.NewOsFs(), contentDir), "/")
}

// Catalog returns the current catalog. Callers must not modify it.
func (s *Store) Catalog() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Reload re-reads the catalog. On failure the previous catalog stays in place.
func (s *Store) Reload() error {
	cat, err := Load(s.fs, s.dir)
	if err != nil {
		return fmt.Errorf("failed to load content catalog: %w", err)
	}
	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()
	return nil
}

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the catalog whenever a YAML file in osDir changes, until ctx
// is cancelled. osDir must be the on-disk directory behind the store.
func (s *Store) Watch(ctx context.Context, osDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(osDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", osDir, err)
	}
	slog.Info("Watching content directory for changes", "path", osDir)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()
	var pending fsnotify.Event

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Content watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			pending = event
			timer.Reset(reloadDelay)

		case <-timer.C:
			s.reloadAfter(pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

// relevant reports whether event is a write, create or rename of a YAML file.
func relevant(event fsnotify.Event) bool {
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext != ".yaml" && ext != ".yml" {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// reloadAfter reloads the catalog once a burst of events has settled.
func (s *Store) reloadAfter(event fsnotify.Event) {
	if err := s.Reload(); err != nil {
		slog.Error("Failed to reload content, keeping previous catalog", "path", event.Name, "error", err)
		return
	}
	slog.Info("Reloaded content catalog", "path", event.Name, "op", event.Op.String())
}
