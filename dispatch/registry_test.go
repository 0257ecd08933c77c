// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dispatch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/nil-go/rekey/dispatch"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRegistry_Execute(t *testing.T) {
	t.Parallel()

	echo := func(_ context.Context, input any) (any, error) { return input, nil }
	failure := func(context.Context, any) (any, error) { return nil, errors.New("failure") }

	testcases := []struct {
		description string
		sources     []dispatch.Source
		id          string
		expected    any
		err         string
	}{
		{
			description: "found",
			sources:     []dispatch.Source{dispatch.Handlers{"echo": echo}},
			id:          "echo",
			expected:    "input",
		},
		{
			description: "first source wins",
			sources: []dispatch.Source{
				dispatch.Handlers{"echo": echo},
				dispatch.Handlers{"echo": failure},
			},
			id:       "echo",
			expected: "input",
		},
		{
			description: "later source",
			sources: []dispatch.Source{
				dispatch.Handlers{"other": failure},
				dispatch.Handlers{"echo": echo},
			},
			id:       "echo",
			expected: "input",
		},
		{
			description: "nil handler",
			sources:     []dispatch.Source{dispatch.Handlers{"echo": nil}},
			id:          "echo",
			err:         `service "echo": handler not found`,
		},
		{
			description: "not found",
			id:          "echo",
			err:         `service "echo": handler not found`,
		},
		{
			description: "handler error",
			sources:     []dispatch.Source{dispatch.Handlers{"fail": failure}},
			id:          "fail",
			err:         `execute service "fail": failure`,
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			output, err := dispatch.New(testcase.sources...).Execute(context.Background(), testcase.id, "input")
			if testcase.err != "" {
				require.EqualError(t, err, testcase.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, testcase.expected, output)
		})
	}
}

func TestRegistry_Lookup_notFound(t *testing.T) {
	t.Parallel()

	_, err := dispatch.New().Lookup("missing")
	require.ErrorIs(t, err, dispatch.ErrHandlerNotFound)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	registry := dispatch.New(dispatch.Handlers{
		"id": func(context.Context, any) (any, error) { return "source", nil },
	})
	registry.Register("id", func(context.Context, any) (any, error) { return "registered", nil })
	output, err := registry.Execute(context.Background(), "id", nil)
	require.NoError(t, err)
	require.Equal(t, "registered", output)

	registry.Register("id", func(context.Context, any) (any, error) { return "overridden", nil })
	output, err = registry.Execute(context.Background(), "id", nil)
	require.NoError(t, err)
	require.Equal(t, "overridden", output)
}

func TestRegistry_Register_panic(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "cannot register nil handler", func() {
		dispatch.New().Register("id", nil)
	})
}

func TestRegistry_SetLogger_panic(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "cannot set nil logger", func() {
		dispatch.New().SetLogger(nil)
	})
}

func TestRegistry_copied(t *testing.T) {
	t.Parallel()

	registry := dispatch.New()
	registry.Register("id", func(context.Context, any) (any, error) { return nil, nil }) //nolint:nilnil
	copied := *registry //nolint:govet
	require.PanicsWithValue(t, "cannot use Registry copied by value", func() {
		_, _ = copied.Lookup("id")
	})
}

func TestRegistry_concurrent(t *testing.T) {
	t.Parallel()

	source := &countingSource{handler: func(_ context.Context, input any) (any, error) { return input, nil }}
	registry := dispatch.New(source)

	var group errgroup.Group
	for i := 0; i < 100; i++ {
		group.Go(func() error {
			output, err := registry.Execute(context.Background(), "echo", i)
			if err != nil {
				return err
			}
			if output != i {
				return errors.New("unexpected output")
			}

			return nil
		})
	}
	require.NoError(t, group.Wait())
	require.Equal(t, int64(1), source.calls.Load())
}

type countingSource struct {
	handler dispatch.Handler
	calls   atomic.Int64
}

func (c *countingSource) Handler(string) (dispatch.Handler, bool) {
	c.calls.Add(1)

	return c.handler, true
}
