// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "github.com/antimony-lang/antcompile/source"

// Node is any node of the typed AST: either a [Leaf] or a [Branch].
type Node interface {
	// Span returns the source range this node covers.
	Span() source.Range
	// Parent returns the node that owns this one, or nil for the root.
	Parent() Branch

	setParent(Branch)
}

// Branch is an interior node. Its children are stored in a fixed-arity
// ordered sequence; an elided optional grammar element is a nil entry.
//
// A branch exclusively owns its children. The parent reference on each
// child is a non-owning back-pointer used for traversal only.
type Branch interface {
	Node

	// Children returns the child slots of this node. Callers must not
	// mutate the returned slice.
	Children() []Node
}

// Leaf is a terminal node, corresponding to one token of source text.
//
// All leaves of a tree are linked into a doubly-linked chain in source
// order; the chain is threaded once during [Build] and never changes.
type Leaf interface {
	Node

	// Text returns the literal source text of the token.
	Text() string
	// PrevLeaf returns the leaf immediately before this one in source
	// order, or nil if this is the first leaf of the file.
	PrevLeaf() Leaf
	// NextLeaf returns the leaf immediately after this one in source
	// order, or nil if this is the last leaf of the file.
	NextLeaf() Leaf

	setPrev(Leaf)
	setNext(Leaf)
}

// leafNode is the common state embedded in every leaf variant.
type leafNode struct {
	span       source.Range
	text       string
	parent     Branch
	prev, next Leaf
}

func (n *leafNode) Span() source.Range  { return n.span }
func (n *leafNode) Text() string        { return n.text }
func (n *leafNode) Parent() Branch      { return n.parent }
func (n *leafNode) PrevLeaf() Leaf      { return n.prev }
func (n *leafNode) NextLeaf() Leaf      { return n.next }
func (n *leafNode) setParent(b Branch)  { n.parent = b }
func (n *leafNode) setPrev(l Leaf)      { n.prev = l }
func (n *leafNode) setNext(l Leaf)      { n.next = l }

// branchNode is the common state embedded in every branch variant.
type branchNode struct {
	span     source.Range
	parent   Branch
	children []Node
}

func (n *branchNode) Span() source.Range { return n.span }
func (n *branchNode) Parent() Branch     { return n.parent }
func (n *branchNode) Children() []Node   { return n.children }
func (n *branchNode) setParent(b Branch) { n.parent = b }

// child returns the i-th child of n as a T, or the zero T if the slot is
// absent. A child of the wrong type panics: the builder's tag table
// guarantees arity, so a mismatch is a contract violation, not an input
// error.
func child[T Node](n *branchNode, i int) T {
	var zero T
	if i >= len(n.children) || n.children[i] == nil {
		return zero
	}
	return n.children[i].(T)
}
