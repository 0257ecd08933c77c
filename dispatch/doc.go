// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package dispatch executes handlers registered under a service ID.
//
// A Registry resolves the handler for a service ID from its Source(s) on first use
// and caches it for later executions. Renaming wraps a handler so that the input
// property names are renamed before the handler sees them, and Typed adapts a
// function with a typed request to the Handler signature.
//
//	registry := dispatch.New(dispatch.Handlers{
//		"fund.list": dispatch.Renaming(mapper, dispatch.Typed(listFunds)),
//	})
//	result, err := registry.Execute(ctx, "fund.list", body)
package dispatch
