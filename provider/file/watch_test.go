// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build !race

package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/rekey"
	"github.com/nil-go/rekey/provider/file"
)

func TestFile_Watch(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		action      func(string) error
		expected    []rekey.Rule
	}{
		{
			description: "write",
			action: func(path string) error {
				return os.WriteFile(path, []byte("rules:\n  a: B\n"), 0o600)
			},
			expected: []rekey.Rule{{From: "a", To: "B"}},
		},
		{
			description: "remove",
			action:      os.Remove,
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			temp, err := os.MkdirTemp("", "*") // t.TempDir() causes deadlock on macos.
			require.NoError(t, err)
			t.Cleanup(func() { _ = os.RemoveAll(temp) })
			tmpFile := filepath.Join(temp, "watch.yaml")
			require.NoError(t, os.WriteFile(tmpFile, []byte("rules:\n  a: A\n"), 0o600))

			rules := make(chan []rekey.Rule, 16)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			started := make(chan struct{})
			done := make(chan error, 1)
			loader := file.New(tmpFile)
			go func() {
				close(started)
				done <- loader.Watch(ctx, func(changed []rekey.Rule) {
					select {
					case rules <- changed:
					default:
					}
				})
			}()
			<-started
			time.Sleep(time.Second) // wait for the watcher to start

			require.NoError(t, testcase.action(tmpFile))
			// A write may be observed as several events, the last one carries the full content.
			timeout := time.After(5 * time.Second)
			for matched := false; !matched; {
				select {
				case changed := <-rules:
					matched = equalRules(testcase.expected, changed)
				case <-timeout:
					t.Fatal("timeout waiting for rule change")
				}
			}

			cancel()
			require.NoError(t, <-done)
		})
	}
}

func equalRules(expected, actual []rekey.Rule) bool {
	if (expected == nil) != (actual == nil) || len(expected) != len(actual) {
		return false
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return false
		}
	}

	return true
}
