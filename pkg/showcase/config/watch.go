package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it changes on disk and sends each successfully loaded config on
// the returned channel. The channel is closed once ctx is done or the watcher fails. Invalid
// edits are logged and skipped so a half-written file never reaches the running app.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan Config, error) {
	if path == "" {
		return nil, errors.New("config: watch needs a path")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory and filter by name.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Config, 1)

	go func() {
		defer close(out)
		defer watcher.Close()

		reload := newDebouncer(100 * time.Millisecond)
		defer reload.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) || evt.Has(fsnotify.Rename) {
					reload.Trigger()
				}
			case <-reload.C:
				cfg, err := Load(abs)
				if err != nil {
					logger.Warn("ignoring invalid config change", "path", abs, "error", err)
					continue
				}
				logger.Info("config reloaded", "path", abs)
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// debouncer fires C once a burst of triggers settles.
type debouncer struct {
	C chan struct{}

	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{C: make(chan struct{}, 1), delay: delay}
}

func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		select {
		case d.C <- struct{}{}:
		default:
		}
	})
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
