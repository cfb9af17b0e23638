// Package watch re-runs work when a watched file changes on disk.
// seqsift uses it to re-execute the pipeline whenever the config file
// holding the query is edited.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/seqsift/seqsift/pkg/log"
)

// Config holds configuration options for a Watcher.
type Config struct {
	// Path is the file to watch. The parent directory is monitored so
	// that editors which replace the file on save are still seen.
	Path string

	// OnChange is invoked after the file settles. Required.
	OnChange func(context.Context)

	// Debounce is the delay to wait after a change before invoking
	// OnChange, coalescing bursts of events. Default: 500 milliseconds.
	Debounce time.Duration

	// Logger receives watcher diagnostics. Default: no output.
	Logger log.Logger
}

// Watcher monitors one file and invokes a callback when it changes.
type Watcher struct {
	mu sync.Mutex

	path     string
	debounce time.Duration
	logger   log.Logger
	onChange func(context.Context)

	cancel context.CancelFunc
	wg     sync.WaitGroup
	timer  *time.Timer
}

// New creates a new Watcher with the given configuration.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch: path is required")
	}
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("watch: OnChange is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}

	return &Watcher{
		path:     cfg.Path,
		debounce: cfg.Debounce,
		logger:   cfg.Logger,
		onChange: cfg.OnChange,
	}, nil
}

// Start begins watching. It returns once the watch is established; the
// event loop runs until Stop is called or ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.logger.Info("watching for changes", log.String("path", w.path))

	w.wg.Add(1)
	go w.loop(runCtx, watcher)

	return nil
}

// Stop ends the watch and waits for the event loop to exit. A debounce
// timer still pending is discarded.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

// loop dispatches filesystem events until the context is canceled.
func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer w.wg.Done()
	defer watcher.Close()

	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("file changed", log.String("path", event.Name))
			w.scheduleRun(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

// scheduleRun (re)arms the debounce timer. Bursts of events within the
// debounce window collapse into one callback.
func (w *Watcher) scheduleRun(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		w.onChange(ctx)
	})
}
