// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rekey

import (
	"cmp"
	"slices"
)

// Rule renames the property at path From to the name at the same depth of path To.
type Rule struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	To   string `json:"to"   yaml:"to"   mapstructure:"to"`
}

// RulesFrom converts a mapping from source path to destination path into rules,
// sorted by source path.
func RulesFrom(mapping map[string]string) []Rule {
	rules := make([]Rule, 0, len(mapping))
	for from, to := range mapping {
		rules = append(rules, Rule{From: from, To: to})
	}
	slices.SortFunc(rules, func(a, b Rule) int {
		return cmp.Compare(a.From, b.From)
	})

	return rules
}
