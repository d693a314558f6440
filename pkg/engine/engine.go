// Package engine ties the store and composer together behind a single
// handle that supports hot reloading.
//
// The current store sits behind an atomic pointer: any number of
// concurrent Compose callers share it without locks, and Reload swaps in a
// freshly built store wholesale. A failed reload keeps the previous store
// in place, so callers never observe a partial rule set.
package engine

import (
	"sync/atomic"

	"github.com/arthur-debert/rulebook/pkg/compose"
	"github.com/arthur-debert/rulebook/pkg/logging"
	"github.com/arthur-debert/rulebook/pkg/rules"
	"github.com/arthur-debert/rulebook/pkg/types"
)

// Engine is the long-lived query handle over a rules directory.
type Engine struct {
	root    string
	options []rules.LoadOption
	store   atomic.Pointer[rules.Store]
}

// New loads the rules under root and returns a ready engine. Load options
// are retained and reused on every Reload.
func New(root string, opts ...rules.LoadOption) (*Engine, error) {
	store, err := rules.Load(root, opts...)
	if err != nil {
		return nil, err
	}

	e := &Engine{root: root, options: opts}
	e.store.Store(store)
	return e, nil
}

// Store returns the current immutable store.
func (e *Engine) Store() *rules.Store {
	return e.store.Load()
}

// Compose produces the consolidated guidance document for targetPath using
// the current store.
func (e *Engine) Compose(targetPath string) (*types.ResolvedDocument, error) {
	return compose.Compose(e.Store(), targetPath)
}

// Reload rebuilds the store from disk and swaps it in atomically. On
// failure the engine keeps serving the previous store and the error is
// returned to the caller.
func (e *Engine) Reload() error {
	logger := logging.GetLogger("engine")

	store, err := rules.Load(e.root, e.options...)
	if err != nil {
		logger.Warn().Err(err).Str("root", e.root).Msg("reload failed, keeping current store")
		return err
	}

	e.store.Store(store)
	logger.Info().Str("root", e.root).Int("rules", store.Len()).Msg("store reloaded")
	return nil
}
