// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnexpectedShape is returned in strict mode when a route step meets a scalar.
var ErrUnexpectedShape = errors.New("unexpected value shape")

// ShapeError reports the location of a scalar met where an object was expected.
type ShapeError struct {
	Path []string
	Kind Kind
	// Delimiter joins Path in Error, "." if empty.
	Delimiter string
}

func (e *ShapeError) Error() string {
	delimiter := e.Delimiter
	if delimiter == "" {
		delimiter = "."
	}

	return fmt.Sprintf("%s: %s at %q", ErrUnexpectedShape, e.Kind, strings.Join(e.Path, delimiter))
}

func (e *ShapeError) Unwrap() error {
	return ErrUnexpectedShape
}

// Reach returns every object found by following path from value.
//
// At each step the value is either an object, whose property is followed,
// or an array, whose object elements are each followed.
// Absent properties and nulls end their branch silently.
// A scalar ends its branch too, unless strict is true, in which case
// Reach fails with a *ShapeError.
func Reach(value any, path []string, strict bool) ([]Container, error) {
	return reach(nil, value, path, 0, strict)
}

func reach(found []Container, value any, path []string, depth int, strict bool) ([]Container, error) {
	shape := Classify(value)
	switch shape.Kind {
	case Missing:
		return found, nil
	case Scalar:
		if strict {
			return nil, &ShapeError{Path: slices.Clone(path[:depth]), Kind: shape.Kind}
		}

		return found, nil
	case Object, ObjectArray:
	}

	if depth == len(path) {
		return append(found, shape.Objects...), nil
	}

	var err error
	for _, object := range shape.Objects {
		child, ok := object.Get(path[depth])
		if !ok {
			continue
		}
		if found, err = reach(found, child, path, depth+1, strict); err != nil {
			return nil, err
		}
	}

	return found, nil
}
