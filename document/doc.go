// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package document converts JSON text to a mutable value tree and back.
//
// Unlike encoding/json, objects keep their key order and scalars keep their
// literal text, so a document that is parsed and marshaled again differs
// from the input only in whitespace.
package document
