package primitive

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"multikey-generator/internal/gen"
)

// DefaultDebounce is how long Watch waits for a burst of template edits to settle.
const DefaultDebounce = 100 * time.Millisecond

// RunFunc receives the outcome of every expansion triggered by Watch.
type RunFunc func(stats gen.WriteStats, err error)

// Watch expands the templates once, then again after every change in the
// templates directory, until ctx is cancelled. Expansion errors are reported
// to onRun and do not stop watching; only watcher failures are returned.
func Watch(ctx context.Context, cfg Config, debounce time.Duration, onRun RunFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.TemplatesDir); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.TemplatesDir, err)
	}

	onRun(Expand(ctx, cfg))

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}

			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watching %s: %w", cfg.TemplatesDir, err)
		case <-timer.C:
			onRun(Expand(ctx, cfg))
		}
	}
}
