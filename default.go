// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rekey

import "sync/atomic"

// Rename renames the property names of the given JSON document with the default Mapper.
// The default Mapper has no rule until SetDefault is called.
func Rename(data []byte) ([]byte, error) {
	return defaultMapper.Load().Rename(data)
}

// RenameValue renames the property names of the given parsed JSON value
// with the default Mapper.
func RenameValue(value any) (any, error) {
	return defaultMapper.Load().RenameValue(value)
}

// SetDefault makes m the default [Mapper].
// After this call, the rekey package's top functions (e.g. rekey.Rename)
// will rename with m.
func SetDefault(m *Mapper) {
	defaultMapper.Store(m)
}

var defaultMapper atomic.Pointer[Mapper] //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	// Ignore error as empty rules are always valid.
	mapper, _ := NewWithRules(nil)
	defaultMapper.Store(mapper)
}
