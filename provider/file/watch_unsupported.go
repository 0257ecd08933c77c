// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build appengine || !(darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package file

import (
	"context"
	"runtime"

	"github.com/nil-go/rekey"
)

// Watch is not supported on this platform. It returns nil immediately.
func (f File) Watch(ctx context.Context, _ func([]rekey.Rule)) error {
	f.logger.WarnContext(ctx, "File.Watch is not supported.", "os", runtime.GOOS)

	return nil
}
