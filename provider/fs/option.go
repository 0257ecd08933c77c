// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fs

// WithUnmarshal provides the function used to parses every matched rule file.
//
// By default, the function is chosen per file: yaml.Unmarshal for `.yaml` and `.yml`, json.Unmarshal otherwise.
func WithUnmarshal(unmarshal func([]byte, any) error) Option {
	return func(options *options) {
		options.unmarshal = unmarshal
	}
}

type (
	// Option configures a FS with specific options.
	Option  func(file *options)
	options FS
)
