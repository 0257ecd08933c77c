// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package pathtree holds rename rules as a rooted tree of path segments.
//
// Rules sharing a prefix share the nodes of that prefix. A Tree is built once
// with a Builder and is read-only afterwards, so it can be shared by
// concurrent readers without locking.
package pathtree

import "slices"

// Node is one path segment shared by one or more rename rules.
type Node struct {
	from  string
	to    string
	hasTo bool

	parent   *Node
	children []*Node
	index    map[string]*Node
}

// From returns the source segment of the node.
func (n *Node) From() string {
	return n.from
}

// To returns the destination segment of the node.
// It returns false for nodes that only exist to share a prefix.
func (n *Node) To() (string, bool) {
	return n.to, n.hasTo
}

// Parent returns the owning node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether n is the root of its tree.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Child returns the child whose source segment is from.
func (n *Node) Child(from string) (*Node, bool) {
	child, ok := n.index[from]

	return child, ok
}

// Depth returns the number of edges between the root and n.
func (n *Node) Depth() int {
	depth := 0
	for current := n.parent; current != nil; current = current.parent {
		depth++
	}

	return depth
}

// Path returns the source segments from the root to n, root excluded.
func (n *Node) Path() []string {
	route := Route(n)
	path := make([]string, 0, len(route)-1)
	for _, node := range route[1:] {
		path = append(path, node.from)
	}

	return path
}

func (n *Node) child(from string) *Node {
	if child, ok := n.index[from]; ok {
		return child
	}

	child := &Node{from: from, parent: n}
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	n.index[from] = child
	n.children = append(n.children, child)

	return child
}

// Tree is an immutable tree of rename rules.
//
// To create a new Tree, call [Builder.Build].
type Tree struct {
	root *Node
}

// Root returns the root node. The root carries no segment.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}

	return t.root
}

// MaxDepth returns the greatest depth of any node, counted in edges from the root.
// It returns 0 if the tree holds no rule.
func (t *Tree) MaxDepth() int {
	if t == nil || t.root == nil {
		return 0
	}

	return maxDepth(t.root)
}

func maxDepth(node *Node) int {
	depth := 0
	for _, child := range node.children {
		depth = max(depth, 1+maxDepth(child))
	}

	return depth
}

// NodesAtDepth returns every node exactly depth edges below the root,
// in insertion order. Branches shorter than depth contribute nothing.
func (t *Tree) NodesAtDepth(depth int) []*Node {
	if t == nil || t.root == nil || depth < 0 {
		return nil
	}

	var nodes []*Node
	collect(&nodes, t.root, depth)

	return nodes
}

func collect(nodes *[]*Node, node *Node, depth int) {
	if depth == 0 {
		*nodes = append(*nodes, node)

		return
	}

	for _, child := range node.children {
		collect(nodes, child, depth-1)
	}
}

// Walk visits every node except the root in depth-first pre-order.
// It stops when fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	if t == nil || t.root == nil {
		return
	}

	walk(t.root, fn)
}

func walk(node *Node, fn func(*Node) bool) bool {
	for _, child := range node.children {
		if !fn(child) || !walk(child, fn) {
			return false
		}
	}

	return true
}

// Route returns the nodes from the root to node inclusive, root first.
func Route(node *Node) []*Node {
	var route []*Node
	for current := node; current != nil; current = current.parent {
		route = append(route, current)
	}
	slices.Reverse(route)

	return route
}
