// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dispatch

import (
	"context"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/rekey/document"
)

// Renamer renames property names of a JSON document or a parsed JSON value.
// Both *rekey.Mapper and *rekey.Reloadable are Renamer(s).
type Renamer interface {
	Rename(data []byte) ([]byte, error)
	RenameValue(value any) (any, error)
}

// Renaming wraps the handler so that it receives the input with renamed property names.
//
// A []byte or string input is treated as a JSON document and passed on as
// a parsed value. Other input is renamed with RenameValue.
func Renaming(renamer Renamer, handler Handler) Handler {
	if renamer == nil || handler == nil {
		panic("cannot create renaming handler with nil renamer or handler")
	}

	return func(ctx context.Context, input any) (any, error) {
		var (
			renamed any
			err     error
		)
		switch input := input.(type) {
		case []byte:
			renamed, err = renameDocument(renamer, input)
		case string:
			renamed, err = renameDocument(renamer, []byte(input))
		default:
			renamed, err = renamer.RenameValue(input)
		}
		if err != nil {
			return nil, fmt.Errorf("rename input: %w", err)
		}

		return handler(ctx, renamed)
	}
}

func renameDocument(renamer Renamer, data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil //nolint:nilnil
	}
	value, err := document.Parse(data)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return renamer.RenameValue(value)
}

// Typed adapts a function with a typed request to a Handler.
//
// The input is decoded into Req following its `json` tags:
// JSON documents ([]byte or string) and parsed documents with json unmarshal,
// map[string]any with mapstructure. An input that is already a Req is passed as is.
func Typed[Req, Resp any](fn func(context.Context, Req) (Resp, error)) Handler {
	if fn == nil {
		panic("cannot create typed handler with nil function")
	}

	return func(ctx context.Context, input any) (any, error) {
		var request Req
		if err := decode(input, &request); err != nil {
			return nil, fmt.Errorf("decode request into %T: %w", request, err)
		}

		return fn(ctx, request)
	}
}

func decode[Req any](input any, request *Req) error {
	switch input := input.(type) {
	case nil:
		return nil
	case Req:
		*request = input

		return nil
	case []byte:
		return json.Unmarshal(input, request) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(input), request) //nolint:wrapcheck
	case map[string]any:
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           request,
			TagName:          "json",
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		return decoder.Decode(input) //nolint:wrapcheck
	default:
		// Parsed documents keep their scalars as raw JSON,
		// so they are decoded through their JSON form.
		data, err := document.Marshal(input)
		if err != nil {
			return err //nolint:wrapcheck
		}

		return json.Unmarshal(data, request) //nolint:wrapcheck
	}
}
