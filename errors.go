// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rekey

import (
	"errors"

	"github.com/nil-go/rekey/document"
	"github.com/nil-go/rekey/internal/maps"
)

var (
	// ErrPathDepthMismatch is returned when a rule changes the depth of a path.
	ErrPathDepthMismatch = errors.New("source and destination paths have different depths")
	// ErrEmptyPath is returned when a rule has an empty path or an empty segment.
	ErrEmptyPath = errors.New("empty path segment")
	// ErrConflictingRule is returned by ConflictReject when two rules
	// rename the same source path to different names.
	ErrConflictingRule = errors.New("conflicting destinations for the same source path")
	// ErrMalformedDocument is returned when the input is not valid JSON.
	ErrMalformedDocument = document.ErrMalformed
	// ErrUnexpectedValueShape is returned with WithStrictShape when a rule
	// meets a scalar where it expects an object or an array of objects.
	ErrUnexpectedValueShape = maps.ErrUnexpectedShape

	errNilLoader = errors.New("cannot load rules from nil loader")
)
