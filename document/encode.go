// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package document

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"slices"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/tidwall/pretty"
)

// Marshal serializes value as compact JSON.
//
// It accepts the values produced by Parse as well as map[string]any, []any,
// []map[string]any and any other value supported by json.Marshal. Keys of Go
// maps are written in sorted order since a Go map has no order.
func Marshal(value any) ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := jsontext.NewEncoder(buf,
		jsontext.PreserveRawStrings(true),
		jsontext.AllowInvalidUTF8(true),
	)
	if err := encode(encoder, value); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encode(encoder *jsontext.Encoder, value any) error { //nolint:cyclop
	switch value := value.(type) {
	case *Object:
		if value == nil {
			return encoder.WriteToken(jsontext.Null)
		}
		if err := encoder.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, member := range value.members {
			if err := encodeMember(encoder, member.Key, member.Value); err != nil {
				return err
			}
		}

		return encoder.WriteToken(jsontext.EndObject)
	case map[string]any:
		return encodeMap(encoder, value)
	case []map[string]any:
		if value == nil {
			return encoder.WriteToken(jsontext.Null)
		}
		if err := encoder.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, element := range value {
			if err := encodeMap(encoder, element); err != nil {
				return err
			}
		}

		return encoder.WriteToken(jsontext.EndArray)
	case []any:
		if value == nil {
			return encoder.WriteToken(jsontext.Null)
		}
		if err := encoder.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, element := range value {
			if err := encode(encoder, element); err != nil {
				return err
			}
		}

		return encoder.WriteToken(jsontext.EndArray)
	case jsontext.Value:
		return encoder.WriteValue(value)
	case stdjson.RawMessage:
		return encoder.WriteValue(jsontext.Value(value))
	case stdjson.Number:
		return encoder.WriteValue(jsontext.Value(value))
	case nil:
		return encoder.WriteToken(jsontext.Null)
	default:
		raw, err := json.Marshal(value, json.Deterministic(true))
		if err != nil {
			return fmt.Errorf("marshal %T: %w", value, err)
		}

		return encoder.WriteValue(raw)
	}
}

func encodeMap(encoder *jsontext.Encoder, value map[string]any) error {
	if value == nil {
		return encoder.WriteToken(jsontext.Null)
	}
	if err := encoder.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	keys := make([]string, 0, len(value))
	for key := range value {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if err := encodeMember(encoder, key, value[key]); err != nil {
			return err
		}
	}

	return encoder.WriteToken(jsontext.EndObject)
}

func encodeMember(encoder *jsontext.Encoder, key string, value any) error {
	if err := encoder.WriteToken(jsontext.String(key)); err != nil {
		return err
	}

	return encode(encoder, value)
}

// Indent formats compact JSON data with the given indent, keeping key order.
func Indent(data []byte, indent string) []byte {
	formatted := pretty.PrettyOptions(data, &pretty.Options{
		Width:  pretty.DefaultOptions.Width,
		Indent: indent,
	})

	return bytes.TrimSuffix(formatted, []byte("\n"))
}
