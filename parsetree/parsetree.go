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

// Package parsetree defines the concrete syntax tree handed to this
// module by the external Antimony parser.
//
// The tree is generic: nodes are tagged by the grammar rule or token-type
// name that produced them, and carry no further typing. Conversion into
// the typed AST is the job of [github.com/antimony-lang/antcompile/ast].
package parsetree

import "github.com/antimony-lang/antcompile/source"

// Node is a node of the concrete syntax tree: either a [*Token] or a
// [*Tree].
//
// An elided optional grammar element is represented by a nil Node child,
// not by a placeholder value.
type Node interface {
	// Tag returns the grammar rule or token-type name for this node.
	Tag() string
	// Span returns the source range this node covers.
	Span() source.Range

	isNode()
}

// Token is a leaf of the concrete syntax tree: a single lexed token.
type Token struct {
	// The token-type name, e.g. "NAME" or "SEMICOLON".
	Type string
	// The literal source text of the token.
	Text string
	// The source range of the token.
	Range source.Range
}

var _ Node = (*Token)(nil)

// Tag implements [Node].
func (t *Token) Tag() string { return t.Type }

// Span implements [Node].
func (t *Token) Span() source.Range { return t.Range }

func (*Token) isNode() {}

// Tree is an interior node of the concrete syntax tree: the result of a
// grammar rule.
type Tree struct {
	// The grammar rule name, e.g. "reaction".
	Rule string
	// The source range the rule matched.
	Range source.Range
	// The matched children, in source order. A nil entry is an optional
	// element the parser elided.
	Children []Node
}

var _ Node = (*Tree)(nil)

// Tag implements [Node].
func (t *Tree) Tag() string { return t.Rule }

// Span implements [Node].
func (t *Tree) Span() source.Range { return t.Range }

func (*Tree) isNode() {}
