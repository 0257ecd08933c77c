// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nil-go/rekey/internal"
)

// ErrHandlerNotFound is returned if none of the sources has a handler for the service ID.
var ErrHandlerNotFound = errors.New("handler not found")

// Handler executes the service with the given input.
type Handler func(ctx context.Context, input any) (any, error)

// Source provides the handler for a service ID.
type Source interface {
	Handler(id string) (Handler, bool)
}

// Handlers is a Source backed by a map from service ID to handler.
type Handlers map[string]Handler

// Handler returns the handler registered for the service ID, if it is not nil.
func (h Handlers) Handler(id string) (Handler, bool) {
	handler, ok := h[id]

	return handler, ok && handler != nil
}

// Registry resolves and caches handlers by service ID.
// It is safe for concurrent use.
//
// To create a new Registry, call [New].
type Registry struct {
	nocopy internal.NoCopy[Registry]

	logger  *slog.Logger
	sources []Source

	handlers sync.Map // map[string]Handler
	group    singleflight.Group
}

// New creates a Registry which looks up handlers in the given sources in order.
func New(sources ...Source) *Registry {
	return &Registry{
		logger:  slog.Default().WithGroup("rekey.dispatch"),
		sources: sources,
	}
}

// SetLogger replaces the logger of the Registry.
// It panics if the logger is nil.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.nocopy.Check()
	if logger == nil {
		panic("cannot set nil logger")
	}

	r.logger = logger.WithGroup("rekey.dispatch")
}

// Register registers the handler for the service ID,
// overriding any handler resolved or registered before.
//
// It panics if the handler is nil.
func (r *Registry) Register(id string, handler Handler) {
	r.nocopy.Check()
	if handler == nil {
		panic("cannot register nil handler")
	}

	if _, loaded := r.handlers.Swap(id, handler); loaded {
		r.logger.Warn("Handler has been overridden.", "id", id)
	}
}

// Lookup returns the handler for the service ID.
//
// It returns an error wrapping ErrHandlerNotFound if no source provides the handler.
func (r *Registry) Lookup(id string) (Handler, error) {
	r.nocopy.Check()

	if handler, ok := r.handlers.Load(id); ok {
		return handler.(Handler), nil //nolint:forcetypeassert
	}

	handler, err, _ := r.group.Do(id, func() (any, error) {
		if handler, ok := r.handlers.Load(id); ok {
			return handler, nil
		}
		for _, source := range r.sources {
			if handler, ok := source.Handler(id); ok {
				actual, _ := r.handlers.LoadOrStore(id, handler)
				r.logger.Debug("Handler has been resolved.", "id", id)

				return actual, nil
			}
		}

		return nil, fmt.Errorf("service %q: %w", id, ErrHandlerNotFound)
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return handler.(Handler), nil //nolint:forcetypeassert
}

// Execute looks up the handler for the service ID and executes it with the input.
func (r *Registry) Execute(ctx context.Context, id string, input any) (any, error) {
	handler, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}

	output, err := handler(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("execute service %q: %w", id, err)
	}

	return output, nil
}
