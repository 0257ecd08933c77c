// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package file loads rename rules from OS file.
//
// File loads a rule file with the given path from the OS file system and
// returns the rules under its `rules` key, either a mapping from source path
// to destination path or a list of `from`/`to` pairs.
//
// Files ending with `.yaml` or `.yml` are parsed as YAML, others as JSON,
// unless WithUnmarshal provides another function.
//
// By default, it returns error while loading if the file is not found.
// IgnoreFileNotExit can override the behavior to return empty rules.
package file

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nil-go/rekey"
	"github.com/nil-go/rekey/internal/rulefile"
)

// File is a Loader that loads rename rules from a OS file.
//
// To create a new File, call [New].
type File struct {
	logger         *slog.Logger
	path           string
	unmarshal      func([]byte, any) error
	ignoreNotExist bool
	debounce       time.Duration
}

// New creates a File with the given path and Option(s).
//
// It panics if the path is empty.
func New(path string, opts ...Option) File {
	if path == "" {
		panic("cannot create File with empty path")
	}

	option := &options{
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("rekey.file")
	if option.unmarshal == nil {
		option.unmarshal = rulefile.UnmarshalFor(path)
	}
	if option.debounce <= 0 {
		option.debounce = 5 * time.Millisecond
	}

	return File(*option)
}

// Load reads the rule file and decodes its rules.
func (f File) Load() ([]rekey.Rule, error) {
	bytes, err := os.ReadFile(f.path)
	if err != nil {
		if f.ignoreNotExist && os.IsNotExist(err) {
			f.logger.Warn("Rule file does not exist.", "file", f.path)

			return []rekey.Rule{}, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	var out map[string]any
	if err := f.unmarshal(bytes, &out); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	return rulefile.Decode(out)
}

// String returns the file path with the file: scheme.
func (f File) String() string {
	return "file:" + f.path
}
