// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package pathtree

// Builder accumulates paths into a Tree.
//
// It is not concurrency-safe and cannot be used after Build.
type Builder struct {
	root *Node
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{root: &Node{}}
}

// Find returns the node at the given source path, if it exists.
func (b *Builder) Find(path []string) (*Node, bool) {
	b.check()

	node := b.root
	for _, segment := range path {
		child, ok := node.Child(segment)
		if !ok {
			return nil, false
		}
		node = child
	}

	return node, node != b.root
}

// Add finds or creates the nodes along path and assigns dest to the terminal node.
//
// If the terminal node already has a destination, it is replaced only if replace is true.
// Add returns the destination the terminal node had before the call, if any.
// It panics if path is empty.
func (b *Builder) Add(path []string, dest string, replace bool) (string, bool) {
	b.check()

	if len(path) == 0 {
		panic("cannot add empty path to tree")
	}

	node := b.root
	for _, segment := range path {
		node = node.child(segment)
	}

	previous, existed := node.to, node.hasTo
	if !existed || replace {
		node.to = dest
		node.hasTo = true
	}

	return previous, existed
}

// Build returns the Tree holding every added path.
func (b *Builder) Build() *Tree {
	b.check()

	tree := &Tree{root: b.root}
	b.root = nil

	return tree
}

func (b *Builder) check() {
	if b.root == nil {
		panic("cannot use Builder after Build")
	}
}
