// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package fs loads rename rules from file system.
//
// FS loads the rule files matching the given pattern from the file system,
// for example an embed.FS bundled into the binary. Rules of all matched files
// are concatenated in lexical order of the file names, so a later file can
// override an earlier one with the last-wins conflict policy.
package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/nil-go/rekey"
	"github.com/nil-go/rekey/internal/rulefile"
)

// FS is a Loader that loads rename rules from file system.
//
// To create a new FS, call [New].
type FS struct {
	fs        fs.FS
	pattern   string
	unmarshal func([]byte, any) error
}

// New creates a FS with the given fs.FS, path pattern and Option(s).
// The pattern follows the syntax of [path.Match].
//
// It panics if the pattern is empty.
func New(fs fs.FS, pattern string, opts ...Option) FS {
	if pattern == "" {
		panic("cannot create FS with empty pattern")
	}

	option := &options{
		fs:      fs,
		pattern: pattern,
	}
	for _, opt := range opts {
		opt(option)
	}

	return FS(*option)
}

// Load loads the rules of every file matching the pattern, in lexical order of the file names.
func (f FS) Load() ([]rekey.Rule, error) {
	ffs := f.fs
	if ffs == nil {
		// Ignore error: It uses whatever returned.
		path, _ := os.Getwd()
		ffs = os.DirFS(path)
	}

	matches, err := fs.Glob(ffs, f.pattern)
	if err != nil {
		return nil, fmt.Errorf("match pattern %q: %w", f.pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("read file: open %s: %w", f.pattern, fs.ErrNotExist)
	}

	rules := []rekey.Rule{}
	for _, name := range matches {
		loaded, err := f.load(ffs, name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		rules = append(rules, loaded...)
	}

	return rules, nil
}

func (f FS) load(ffs fs.FS, name string) ([]rekey.Rule, error) {
	bytes, err := fs.ReadFile(ffs, name)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	unmarshal := f.unmarshal
	if unmarshal == nil {
		unmarshal = rulefile.UnmarshalFor(path.Base(name))
	}
	var out map[string]any
	if err := unmarshal(bytes, &out); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	return rulefile.Decode(out)
}

// String returns the pattern with the fs:/// scheme.
func (f FS) String() string {
	return "fs:///" + f.pattern
}
