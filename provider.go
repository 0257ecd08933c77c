// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rekey

import (
	"context"
	"fmt"
)

// Loader is the interface that wraps the basic Load method.
//
// Load loads rename rules from a source, such as a file.
type Loader interface {
	Load() ([]Rule, error)
}

// Watcher is the interface that wraps the Watch method.
//
// Watch watches the source for changes and calls onChange with the new rules.
// It passes nil rules if the source has been removed.
// It blocks until ctx is done, or the watching returns an error.
type Watcher interface {
	Watch(ctx context.Context, onChange func([]Rule)) error
}

// Load creates a Mapper with the rules from the given loader and Option(s).
func Load(loader Loader, opts ...Option) (*Mapper, error) {
	if loader == nil {
		return nil, errNilLoader
	}

	rules, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	return NewWithRules(rules, opts...)
}
