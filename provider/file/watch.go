// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build !appengine && (darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package file

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nil-go/rekey"
)

// Watch watches the rule file and calls onChange with the reloaded rules,
// or with nil rules if the file has been removed.
// A change that fails to load is logged and skipped.
func (f File) Watch(ctx context.Context, onChange func([]rekey.Rule)) error { //nolint:cyclop,funlen
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher for %s: %w", f.path, err)
	}
	defer func() {
		if e := watcher.Close(); e != nil {
			f.logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when closing file watcher.",
				slog.String("file", f.path),
				slog.Any("error", e),
			)
		}
	}()

	// The parent directory is watched so that editors replacing the file
	// and symlink swaps are noticed as well.
	dir, _ := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}
	if e := watcher.Add(dir); e != nil {
		return fmt.Errorf("watch dir %s: %w", dir, e)
	}

	realPath, err := filepath.EvalSymlinks(f.path)
	if err != nil {
		return fmt.Errorf("eval symlink: %w", err)
	}
	realPath = filepath.Clean(realPath)
	path := filepath.Clean(f.path)

	var (
		lastEvent     fsnotify.Event
		lastEventTime time.Time
	)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event == lastEvent && time.Since(lastEventTime) < f.debounce {
				continue
			}
			lastEvent = event
			lastEventTime = time.Now()

			if name := filepath.Clean(event.Name); name != realPath && name != path {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove):
				f.logger.LogAttrs(
					ctx, slog.LevelWarn,
					"Rule file has been removed.",
					slog.String("file", f.path),
				)
				onChange(nil)
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				rules, err := f.Load()
				if err != nil {
					f.logger.LogAttrs(
						ctx, slog.LevelWarn,
						"Error when reloading rule file.",
						slog.String("file", f.path),
						slog.Any("error", err),
					)

					continue
				}
				onChange(rules)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when watching rule file.",
				slog.String("file", f.path),
				slog.Any("error", err),
			)

		case <-ctx.Done():
			return nil
		}
	}
}
