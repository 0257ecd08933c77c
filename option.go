// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rekey

import "log/slog"

// WithDelimiter provides the delimiter between path segments.
//
// The default delimiter is `.`, which makes rule path like `parent.child.key`.
func WithDelimiter(delimiter string) Option {
	return func(options *options) {
		options.delimiter = delimiter
	}
}

// WithLogger provides the slog.Logger for Mapper.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithStrictShape makes renaming fail with ErrUnexpectedValueShape
// when a rule meets a scalar where it expects an object or an array of objects.
//
// By default, such branches are skipped like missing properties.
func WithStrictShape() Option {
	return func(options *options) {
		options.strict = true
	}
}

// WithConflictPolicy provides how rules renaming the same source path
// to different names are resolved.
//
// The default policy is ConflictFirstWins.
func WithConflictPolicy(policy ConflictPolicy) Option {
	return func(options *options) {
		options.conflict = policy
	}
}

// WithIndent makes Mapper.Rename write indented JSON.
//
// By default, the output is compact.
func WithIndent(indent string) Option {
	return func(options *options) {
		options.indent = indent
	}
}

// ConflictPolicy resolves rules renaming the same source path to different names.
type ConflictPolicy uint8

const (
	// ConflictFirstWins keeps the destination of the first rule.
	ConflictFirstWins ConflictPolicy = iota
	// ConflictLastWins keeps the destination of the last rule.
	ConflictLastWins
	// ConflictReject fails with ErrConflictingRule.
	ConflictReject
)

type (
	// Option configures a Mapper with specific options.
	Option  func(*options)
	options Mapper
)
