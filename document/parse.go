// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package document

import (
	"errors"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/tidwall/gjson"
)

// ErrMalformed is returned when the input is not a valid JSON document.
var ErrMalformed = errors.New("malformed JSON document")

// Parse parses data into a JSON value.
//
// Objects become *Object, arrays become []any, and scalars become
// jsontext.Value holding the literal exactly as it appears in data.
func Parse(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}

	return convert(gjson.ParseBytes(data)), nil
}

func convert(result gjson.Result) any {
	switch {
	case result.IsObject():
		object := &Object{}
		result.ForEach(func(key, value gjson.Result) bool {
			object.Set(key.String(), convert(value))

			return true
		})

		return object
	case result.IsArray():
		values := make([]any, 0)
		result.ForEach(func(_, value gjson.Result) bool {
			values = append(values, convert(value))

			return true
		})

		return values
	default:
		return jsontext.Value(strings.TrimSpace(result.Raw))
	}
}
