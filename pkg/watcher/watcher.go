// Package watcher reloads an engine's rule store when rule files change on
// disk.
//
// Filesystem events are debounced: a burst of writes triggers one reload
// after a quiet period. Reloads go through Engine.Reload, so a broken edit
// leaves the previous store serving queries until the files parse again.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/rulebook/pkg/engine"
	"github.com/arthur-debert/rulebook/pkg/logging"
	"github.com/arthur-debert/rulebook/pkg/rules"
)

// DefaultDebounce is the quiet period before a change burst triggers a
// reload.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a rules directory and reloads the engine on changes.
type Watcher struct {
	eng        *engine.Engine
	fsw        *fsnotify.Watcher
	debounce   time.Duration
	extensions []string
	logger     zerolog.Logger

	// reloads receives one value per completed reload attempt; the value
	// is the reload error, nil on success. Buffered so a slow consumer
	// cannot stall the watch loop.
	reloads chan error
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce quiet period.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithExtensions overrides the rule file extensions that trigger reloads.
func WithExtensions(exts ...string) Option {
	return func(w *Watcher) {
		w.extensions = exts
	}
}

// New creates a watcher over the engine's rules directory, including its
// subdirectories.
func New(eng *engine.Engine, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		eng:        eng,
		fsw:        fsw,
		debounce:   DefaultDebounce,
		extensions: rules.DefaultExtensions,
		logger:     logging.GetLogger("watcher"),
		reloads:    make(chan error, 16),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addRecursive(eng.Store().Root()); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Reloads exposes the per-reload results, nil for success.
func (w *Watcher) Reloads() <-chan error {
	return w.reloads
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run processes filesystem events until ctx is cancelled or the event
// stream closes.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug().
				Str("path", event.Name).
				Str("op", event.Op.String()).
				Msg("rule change detected")

			// New subdirectories need their own watch
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(event.Name)
				}
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			err := w.eng.Reload()
			select {
			case w.reloads <- err:
			default:
				w.logger.Warn().Msg("reload notification dropped, consumer too slow")
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watch error")
		}
	}
}

// relevant filters events down to rule files and directory changes.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) {
		return false
	}
	ext := filepath.Ext(event.Name)
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	// Directory creates and removes restructure the tree
	if ext == "" {
		return true
	}
	return false
}

// addRecursive registers root and every directory below it.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsw.Add(path)
		}
		return nil
	})
}
