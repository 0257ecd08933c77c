// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package rulefile decodes rename rules from the content of a rule file.
//
// A rule file holds the rules under the `rules` key, either as a mapping
// from source path to destination path, which is applied in the order of
// source paths, or as a list of `from`/`to` pairs, which keeps its order:
//
//	rules:
//	  FundInfList: FundInfs
//	  FundInfList.PortCd: FundInfList.Fund
//
//	rules:
//	  - from: FundInfList
//	    to: FundInfs
package rulefile

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/nil-go/rekey"
)

type file struct {
	Rules []rekey.Rule `mapstructure:"rules"`
}

// Decode decodes the rules from values unmarshaled from a rule file.
// It returns empty rules if values has no rules.
func Decode(values map[string]any) ([]rekey.Rule, error) {
	var out file
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:      &out,
			DecodeHook:  mappingHook,
			ErrorUnused: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	if out.Rules == nil {
		return []rekey.Rule{}, nil
	}

	return out.Rules, nil
}

// mappingHook converts a mapping from source path to destination path into []rekey.Rule.
func mappingHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Map || to != reflect.TypeFor[[]rekey.Rule]() {
		return data, nil
	}

	mapping := make(map[string]string)
	iter := reflect.ValueOf(data).MapRange()
	for iter.Next() {
		key, ok := iter.Key().Interface().(string)
		if !ok {
			return nil, fmt.Errorf("rule source %v is not a string", iter.Key().Interface())
		}
		value, ok := iter.Value().Interface().(string)
		if !ok {
			return nil, fmt.Errorf("rule destination of %q is not a string", key)
		}
		mapping[key] = value
	}

	return rekey.RulesFrom(mapping), nil
}

// UnmarshalFor returns the function that parses a rule file at path,
// yaml.Unmarshal for `.yaml` and `.yml` files and json.Unmarshal otherwise.
func UnmarshalFor(path string) func([]byte, any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal
	default:
		return json.Unmarshal
	}
}
