// Package sourcewatcher re-runs a transform whenever its source image is
// rewritten. It watches the directory that holds the source so that editors
// which replace files by rename are picked up too.
package sourcewatcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/primeify/pkg/log"
)

// Config holds configuration options for the source watcher.
type Config struct {
	// DebounceDelay is how long the source must stay quiet after a change
	// before the callback runs.
	// Default: 200 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 200 * time.Millisecond}
}

// Watcher calls a function after each burst of writes to one file.
type Watcher struct {
	debounceDelay time.Duration
	logger        log.Logger
}

// New creates a Watcher.
func New(cfg Config, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultConfig().DebounceDelay
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{debounceDelay: cfg.DebounceDelay, logger: logger}
}

// Watch blocks until ctx is done, calling onChange after path has been
// written or created and then left alone for the debounce delay. Errors from
// onChange are logged and watching continues. Watch returns nil when ctx is
// canceled.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func(context.Context) error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w.logger.Info("watching source for changes", log.String("path", abs))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounceDelay)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.logger.Info("source changed, re-running", log.String("path", abs))
			if err := onChange(ctx); err != nil {
				w.logger.Error("re-run failed", log.String("path", abs), log.Err(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}
