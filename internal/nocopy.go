// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package internal

import (
	"reflect"
	"sync/atomic"
)

// NoCopy detects a T copied by value after first use.
// Embed it in T and call Check at the start of methods.
type NoCopy[T any] struct {
	self atomic.Pointer[NoCopy[T]]
}

// Check panics if c is not at the address of its first Check.
func (c *NoCopy[T]) Check() {
	if c.self.CompareAndSwap(nil, c) || c.self.Load() == c {
		return
	}

	panic("cannot use " + reflect.TypeFor[T]().Name() + " copied by value")
}
