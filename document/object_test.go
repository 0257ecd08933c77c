// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package document_test

import (
	"testing"

	"github.com/nil-go/rekey/document"
	"github.com/nil-go/rekey/internal/assert"
)

func TestObject_Rename(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		from, to    string
		renamed     bool
		expected    []document.Member
	}{
		{
			description: "keeps position",
			from:        "b",
			to:          "B",
			renamed:     true,
			expected:    []document.Member{{Key: "a", Value: 1}, {Key: "B", Value: 2}, {Key: "c", Value: 3}},
		},
		{
			description: "missing key",
			from:        "x",
			to:          "X",
			expected:    []document.Member{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}},
		},
		{
			description: "same name",
			from:        "a",
			to:          "a",
			renamed:     true,
			expected:    []document.Member{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}},
		},
		{
			description: "existing destination after source is dropped",
			from:        "a",
			to:          "c",
			renamed:     true,
			expected:    []document.Member{{Key: "c", Value: 1}, {Key: "b", Value: 2}},
		},
		{
			description: "existing destination before source is dropped",
			from:        "c",
			to:          "a",
			renamed:     true,
			expected:    []document.Member{{Key: "b", Value: 2}, {Key: "a", Value: 3}},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			object := document.NewObject(
				document.Member{Key: "a", Value: 1},
				document.Member{Key: "b", Value: 2},
				document.Member{Key: "c", Value: 3},
			)
			assert.Equal(t, testcase.renamed, object.Rename(testcase.from, testcase.to))
			assert.Equal(t, testcase.expected, object.Members())
			for _, member := range testcase.expected {
				value, ok := object.Get(member.Key)
				assert.True(t, ok)
				assert.Equal(t, member.Value, value)
			}
			_, ok := object.Get(testcase.from)
			assert.Equal(t, testcase.from == testcase.to && testcase.renamed, ok)
		})
	}
}

func TestObject_Delete(t *testing.T) {
	t.Parallel()

	object := document.NewObject(
		document.Member{Key: "a", Value: 1},
		document.Member{Key: "b", Value: 2},
		document.Member{Key: "c", Value: 3},
	)
	assert.True(t, object.Delete("a"))
	assert.False(t, object.Delete("a"))
	assert.Equal(t, []string{"b", "c"}, object.Keys())

	value, ok := object.Get("c")
	assert.True(t, ok)
	assert.Equal(t, any(3), value)

	object.Set("a", 4)
	assert.Equal(t, []string{"b", "c", "a"}, object.Keys())
	assert.Equal(t, 3, object.Len())
}

func TestObject_nil(t *testing.T) {
	t.Parallel()

	var object *document.Object
	assert.Equal(t, 0, object.Len())
	assert.Nil(t, object.Keys())
	_, ok := object.Get("a")
	assert.False(t, ok)
	assert.False(t, object.Rename("a", "b"))
	assert.False(t, object.Delete("a"))
	object.Range(func(string, any) bool {
		t.Fail()

		return true
	})
}

func TestObject_Range(t *testing.T) {
	t.Parallel()

	object := document.NewObject(
		document.Member{Key: "a", Value: 1},
		document.Member{Key: "b", Value: 2},
	)
	var keys []string
	object.Range(func(key string, _ any) bool {
		keys = append(keys, key)

		return false
	})
	assert.Equal(t, []string{"a"}, keys)
}

func TestObject_RenameAll(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		renames     map[string]string
		count       int
		expected    []string
	}{
		{
			description: "nil renames",
			expected:    []string{"a", "b", "c"},
		},
		{
			description: "swap",
			renames:     map[string]string{"a": "b", "b": "a"},
			count:       2,
			expected:    []string{"b", "a", "c"},
		},
		{
			description: "chain",
			renames:     map[string]string{"a": "b", "b": "c"},
			count:       2,
			expected:    []string{"b", "c"},
		},
		{
			description: "renamed members collide",
			renames:     map[string]string{"a": "x", "c": "x"},
			count:       2,
			expected:    []string{"b", "x"},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			object := document.NewObject(
				document.Member{Key: "a", Value: 1},
				document.Member{Key: "b", Value: 2},
				document.Member{Key: "c", Value: 3},
			)
			assert.Equal(t, testcase.count, object.RenameAll(testcase.renames))
			assert.Equal(t, testcase.expected, object.Keys())
		})
	}
}

func TestObject_RenameAll_values(t *testing.T) {
	t.Parallel()

	object := document.NewObject(
		document.Member{Key: "a", Value: 1},
		document.Member{Key: "b", Value: 2},
		document.Member{Key: "c", Value: 3},
	)
	object.RenameAll(map[string]string{"a": "b", "b": "c"})

	assert.Equal(t, []document.Member{{Key: "b", Value: 1}, {Key: "c", Value: 2}}, object.Members())
	value, ok := object.Get("c")
	assert.True(t, ok)
	assert.Equal(t, any(2), value)
	_, ok = object.Get("a")
	assert.False(t, ok)
}
