// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file

import (
	"log/slog"
	"time"
)

// WithUnmarshal provides the function used to parses the rule file.
// The unmarshal function must be able to unmarshal the file content into a map[string]any.
//
// The default function is yaml.Unmarshal for `.yaml` and `.yml` files, json.Unmarshal otherwise.
func WithUnmarshal(unmarshal func([]byte, any) error) Option {
	return func(options *options) {
		options.unmarshal = unmarshal
	}
}

// IgnoreFileNotExit ignores the error and return empty rules instead if the rule file is not found.
func IgnoreFileNotExit() Option {
	return func(options *options) {
		options.ignoreNotExist = true
	}
}

// WithLogger provides the slog.Logger for File loader.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithDebounce provides the interval in which repeated file events are treated as one change.
//
// The default interval is 5ms.
func WithDebounce(interval time.Duration) Option {
	return func(options *options) {
		options.debounce = interval
	}
}

type (
	// Option configures a File with specific options.
	Option  func(options *options)
	options File
)
