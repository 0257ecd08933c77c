// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rekey

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nil-go/rekey/internal/pathtree"
)

// compile builds the path tree of the given rules.
// It fails without a partial tree if any rule is invalid.
func compile(rules []Rule, delimiter string, policy ConflictPolicy, logger *slog.Logger) (*pathtree.Tree, error) {
	builder := pathtree.NewBuilder()
	for _, rule := range rules {
		from := strings.Split(rule.From, delimiter)
		to := strings.Split(rule.To, delimiter)
		if len(from) != len(to) {
			return nil, fmt.Errorf("rule %q to %q: %w", rule.From, rule.To, ErrPathDepthMismatch)
		}
		if slices.Contains(from, "") || slices.Contains(to, "") {
			return nil, fmt.Errorf("rule %q to %q: %w", rule.From, rule.To, ErrEmptyPath)
		}

		dest := to[len(to)-1]
		if policy == ConflictReject {
			if node, ok := builder.Find(from); ok {
				if previous, ok := node.To(); ok && previous != dest {
					return nil, fmt.Errorf("rule %q to %q conflicts with destination %q: %w",
						rule.From, rule.To, previous, ErrConflictingRule)
				}
			}
		}

		previous, existed := builder.Add(from, dest, policy == ConflictLastWins)
		if existed && previous != dest {
			logger.Warn(
				"Rename rules have different destinations for the same source path.",
				"from", rule.From,
				"destinations", []string{previous, dest},
				"policy", policy.String(),
			)
		}
	}
	tree := builder.Build()

	// Only the last segment of a rule is renamed, parents keep the names their own rules give.
	// A destination parent that matches neither the source name nor the renamed name is ignored.
	for _, rule := range rules {
		from := strings.Split(rule.From, delimiter)
		to := strings.Split(rule.To, delimiter)
		node := tree.Root()
		for i := range len(from) - 1 {
			node, _ = node.Child(from[i])
			if to[i] == from[i] {
				continue
			}
			if dest, ok := node.To(); ok && to[i] == dest {
				continue
			}
			logger.Warn(
				"Rename rule has a destination parent that is neither the source name nor renamed to.",
				"from", rule.From,
				"to", rule.To,
				"parent", to[i],
			)

			break
		}
	}

	return tree, nil
}

// String returns the name of the policy used in log messages.
func (p ConflictPolicy) String() string {
	switch p {
	case ConflictFirstWins:
		return "first-wins"
	case ConflictLastWins:
		return "last-wins"
	case ConflictReject:
		return "reject"
	default:
		return "unknown"
	}
}
