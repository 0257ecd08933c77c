// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rekey

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/nil-go/rekey/internal"
)

// Reloadable renames with the Mapper compiled from the latest rules of a Loader.
//
// To create a new Reloadable, call [NewReloadable].
type Reloadable struct {
	nocopy internal.NoCopy[Reloadable]

	loader Loader
	opts   []Option
	logger *slog.Logger

	mapper    atomic.Pointer[Mapper]
	watchOnce sync.Once

	onReloads      []func(*Mapper)
	onReloadsMutex sync.RWMutex
}

// NewReloadable creates a Reloadable with the rules from the given loader and Option(s).
// The same Option(s) are used to compile the rules after each change.
func NewReloadable(loader Loader, opts ...Option) (*Reloadable, error) {
	mapper, err := Load(loader, opts...)
	if err != nil {
		return nil, err
	}

	reloadable := &Reloadable{
		loader: loader,
		opts:   opts,
		logger: mapper.logger,
	}
	reloadable.mapper.Store(mapper)

	return reloadable, nil
}

// Mapper returns the current Mapper.
func (r *Reloadable) Mapper() *Mapper {
	r.nocopy.Check()

	return r.mapper.Load()
}

// Rename renames the property names of the given JSON document with the current Mapper.
func (r *Reloadable) Rename(data []byte) ([]byte, error) {
	return r.Mapper().Rename(data)
}

// RenameValue renames the property names of the given parsed JSON value with the current Mapper.
func (r *Reloadable) RenameValue(value any) (any, error) {
	return r.Mapper().RenameValue(value)
}

// OnReload registers a callback function that is executed
// with the new Mapper after the rules have been reloaded.
//
// The onReload function must be non-blocking and usually completes instantly.
//
// This method is concurrency-safe.
// It panics if onReload is nil.
func (r *Reloadable) OnReload(onReload func(*Mapper)) {
	if onReload == nil {
		panic("cannot register nil onReload")
	}

	r.onReloadsMutex.Lock()
	defer r.onReloadsMutex.Unlock()

	r.onReloads = append(r.onReloads, onReload)
}

// Watch watches the rules and swaps the Mapper when they change.
// It blocks until ctx is done, or the loader returns an error.
// It returns immediately if the loader is not a Watcher.
//
// Rules that fail to compile, or a removed source, keep the current Mapper.
//
// It only can be called once. Call after first has no effects.
// It panics if ctx is nil.
func (r *Reloadable) Watch(ctx context.Context) error {
	if ctx == nil {
		panic("cannot watch change with nil context")
	}
	r.nocopy.Check()

	watcher, ok := r.loader.(Watcher)
	if !ok {
		return nil
	}

	watched := true
	r.watchOnce.Do(func() {
		watched = false
	})
	if watched {
		r.logger.WarnContext(ctx, "Reloadable has been watched, call Watch again has no effects.")

		return nil
	}

	r.logger.DebugContext(ctx, "Watching rule change.", "loader", watcher)
	if err := watcher.Watch(ctx, func(rules []Rule) { r.reload(ctx, watcher, rules) }); err != nil {
		return fmt.Errorf("watch rule change: %w", err)
	}

	return nil
}

func (r *Reloadable) reload(ctx context.Context, watcher Watcher, rules []Rule) {
	if rules == nil {
		r.logger.WarnContext(ctx, "Rules have been removed, keep the current mapper.", "loader", watcher)

		return
	}

	mapper, err := NewWithRules(rules, r.opts...)
	if err != nil {
		r.logger.WarnContext(ctx,
			"Could not compile changed rules, keep the current mapper.",
			"loader", watcher,
			"error", err,
		)

		return
	}
	r.mapper.Store(mapper)
	r.logger.InfoContext(ctx,
		"Rules have been changed.",
		"loader", watcher,
		"rules", len(rules),
	)

	r.onReloadsMutex.RLock()
	defer r.onReloadsMutex.RUnlock()

	for _, onReload := range r.onReloads {
		onReload(mapper)
	}
}
