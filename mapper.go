// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rekey

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nil-go/rekey/document"
	"github.com/nil-go/rekey/internal/maps"
	"github.com/nil-go/rekey/internal/pathtree"
)

// Mapper renames JSON property names by a fixed set of rules.
//
// To create a new Mapper, call [New] or [NewWithRules].
// A Mapper is immutable and concurrency-safe.
type Mapper struct {
	// Options.
	logger    *slog.Logger
	delimiter string
	strict    bool
	conflict  ConflictPolicy
	indent    string

	// Compiled rules.
	tree   *pathtree.Tree
	passes []pass
}

// pass renames the children of one tree node in every object reached by path.
type pass struct {
	path    []string
	renames map[string]string
}

// New creates a Mapper with the given rules, keyed by source path, and Option(s).
// The rules are applied in the order of their source paths.
//
// It returns an error wrapping ErrPathDepthMismatch if a source path and its
// destination path have different numbers of segments.
func New(rules map[string]string, opts ...Option) (*Mapper, error) {
	return NewWithRules(RulesFrom(rules), opts...)
}

// NewWithRules creates a Mapper with the given rules in order and Option(s).
//
// The order only matters for rules renaming the same source path,
// see [WithConflictPolicy].
func NewWithRules(rules []Rule, opts ...Option) (*Mapper, error) {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("rekey")
	if option.delimiter == "" {
		option.delimiter = "."
	}

	tree, err := compile(rules, option.delimiter, option.conflict, option.logger)
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}

	mapper := (*Mapper)(option)
	mapper.tree = tree
	mapper.passes = plan(tree)
	mapper.logger.Debug(
		"Rename rules have been compiled.",
		"rules", len(rules),
		"depth", tree.MaxDepth(),
	)

	return mapper, nil
}

// plan orders the renames deepest first. A rename at one depth never changes
// the path of a rename at the same depth, so the renames of all children of
// a node can be applied together.
func plan(tree *pathtree.Tree) []pass {
	var passes []pass
	for depth := tree.MaxDepth(); depth > 0; depth-- {
		for _, parent := range tree.NodesAtDepth(depth - 1) {
			renames := make(map[string]string)
			for _, child := range parent.Children() {
				if to, ok := child.To(); ok {
					renames[child.From()] = to
				}
			}
			if len(renames) == 0 {
				continue
			}

			var path []string
			if !parent.IsRoot() {
				path = parent.Path()
			}
			passes = append(passes, pass{path: path, renames: renames})
		}
	}

	return passes
}

// Rename renames the property names of the given JSON document
// and returns the renamed document.
//
// It returns an error wrapping ErrMalformedDocument if data is not valid JSON.
func (m *Mapper) Rename(data []byte) ([]byte, error) {
	value, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	if err := m.rename(value); err != nil {
		return nil, err
	}

	output, err := document.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	if m != nil && m.indent != "" {
		output = document.Indent(output, m.indent)
	}

	return output, nil
}

// RenameValue renames the property names of the given parsed JSON value
// and returns the renamed copy. The given value is not modified.
//
// The value could be produced by document.Parse, or consist of
// map[string]any and []any like values decoded by encoding/json.
func (m *Mapper) RenameValue(value any) (any, error) {
	value = document.Clone(value)
	if err := m.rename(value); err != nil {
		return nil, err
	}

	return value, nil
}

func (m *Mapper) rename(value any) error {
	if m == nil {
		return nil
	}

	renamed := 0
	for _, p := range m.passes {
		count, err := maps.Rename(value, p.path, p.renames, m.strict)
		if err != nil {
			var shapeErr *maps.ShapeError
			if errors.As(err, &shapeErr) {
				shapeErr.Delimiter = m.delimiter
			}

			return fmt.Errorf("rename properties under %q: %w", strings.Join(p.path, m.delimiter), err)
		}
		renamed += count
	}
	m.logger.Debug("Properties have been renamed.", "count", renamed)

	return nil
}

// Depth returns the depth of the deepest rule.
func (m *Mapper) Depth() int {
	if m == nil {
		return 0
	}

	return m.tree.MaxDepth()
}

// Rules returns the effective rules in tree order.
// Parents in the destination paths keep their source names.
func (m *Mapper) Rules() []Rule {
	if m == nil {
		return nil
	}

	var rules []Rule
	m.tree.Walk(func(node *pathtree.Node) bool {
		if to, ok := node.To(); ok {
			path := node.Path()
			from := strings.Join(path, m.delimiter)
			path[len(path)-1] = to
			rules = append(rules, Rule{From: from, To: strings.Join(path, m.delimiter)})
		}

		return true
	})

	return rules
}
