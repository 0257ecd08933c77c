// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import (
	"github.com/go-json-experiment/json/jsontext"

	"github.com/nil-go/rekey/document"
)

// Kind is the shape of a JSON value as seen by a route step.
type Kind uint8

const (
	Missing Kind = iota
	Object
	ObjectArray
	Scalar
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Object:
		return "object"
	case ObjectArray:
		return "array"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Container is a JSON object whose keys can be renamed in place.
type Container interface {
	Get(key string) (any, bool)
	// RenameAll renames every key in renames at once and returns how many keys changed.
	RenameAll(renames map[string]string) int
}

// Shape is a value resolved to one of the shapes a route step can traverse.
// Objects holds the value itself for Object, and every object element for ObjectArray.
type Shape struct {
	Kind    Kind
	Objects []Container
}

// Classify resolves the shape of value.
// A null is Missing, and array elements that are not objects are left out.
func Classify(value any) Shape { //nolint:cyclop
	switch value := value.(type) {
	case nil:
		return Shape{Kind: Missing}
	case *document.Object:
		if value == nil {
			return Shape{Kind: Missing}
		}

		return Shape{Kind: Object, Objects: []Container{value}}
	case map[string]any:
		if value == nil {
			return Shape{Kind: Missing}
		}

		return Shape{Kind: Object, Objects: []Container{plain(value)}}
	case []any:
		shape := Shape{Kind: ObjectArray}
		for _, element := range value {
			if element := Classify(element); element.Kind == Object {
				shape.Objects = append(shape.Objects, element.Objects...)
			}
		}

		return shape
	case []map[string]any:
		shape := Shape{Kind: ObjectArray}
		for _, element := range value {
			if element != nil {
				shape.Objects = append(shape.Objects, plain(element))
			}
		}

		return shape
	case jsontext.Value:
		if value.Kind() == 'n' {
			return Shape{Kind: Missing}
		}

		return Shape{Kind: Scalar}
	default:
		return Shape{Kind: Scalar}
	}
}
