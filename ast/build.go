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

import (
	"errors"
	"fmt"

	"github.com/antimony-lang/antcompile/parsetree"
	"github.com/antimony-lang/antcompile/source"
)

// ErrUnknownTag is returned by [Build] when the concrete syntax tree
// contains a grammar tag this package does not recognize. This signals a
// version mismatch between the external parser's grammar and this
// builder, not a problem with the user's input.
var ErrUnknownTag = errors.New("ast: unknown grammar tag")

// Build transforms the concrete syntax tree produced by the external
// parser into a typed AST rooted at a [*File].
//
// The returned tree is fully linked: every node's parent back-reference
// is set, and the leaves are threaded into a doubly-linked chain in
// source order.
func Build(tree parsetree.Node) (*File, error) {
	node, err := build(tree)
	if err != nil {
		return nil, err
	}
	file, ok := node.(*File)
	if !ok {
		return nil, fmt.Errorf("ast: root has tag %q, want %q", tree.Tag(), "root")
	}
	linkParents(file)
	threadLeaves(file, nil)
	return file, nil
}

func build(pt parsetree.Node) (Node, error) {
	switch pt := pt.(type) {
	case *parsetree.Token:
		return newLeaf(pt.Type, pt.Range, pt.Text)

	case *parsetree.Tree:
		children := make([]Node, len(pt.Children))
		for i, raw := range pt.Children {
			if raw == nil {
				continue // elided optional element
			}
			child, err := build(raw)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}

		// The parser emits one or two modifier children in either order;
		// normalize to the fixed [var-modifier, type-modifier] shape.
		if pt.Rule == "decl_modifiers" {
			norm := make([]Node, 2)
			for i, raw := range pt.Children {
				if raw == nil {
					continue
				}
				if raw.Tag() == "VAR_MODIFIER" {
					norm[0] = children[i]
				} else {
					norm[1] = children[i]
				}
			}
			children = norm
		}

		return newBranch(pt.Rule, pt.Range, children)

	default:
		return nil, fmt.Errorf("%w: unrecognized parse tree node %T", ErrUnknownTag, pt)
	}
}

func newLeaf(tag string, span source.Range, text string) (Leaf, error) {
	base := leafNode{span: span, text: text}
	switch tag {
	case "NAME":
		return &Name{base}, nil
	case "NUMBER":
		return &Number{base}, nil
	case "NEWLINE":
		return &Newline{base}, nil
	case "ERROR_TOKEN":
		return &ErrorToken{base}, nil
	case "ESCAPED_STRING":
		return &StringLiteral{base}, nil
	case "VAR_MODIFIER", "TYPE_MODIFIER", "ANNOT_KEYWORD", "IN",
		"MODEL", "FUNCTION", "END":
		return &Keyword{base}, nil
	case "EQUAL", "COLON", "ARROW", "SEMICOLON", "LPAR", "RPAR",
		"STAR", "PLUS", "MINUS", "DOLLAR", "CIRCUMFLEX", "COMMA", "SLASH":
		return &Operator{base}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownTag, tag)
	}
}

func newBranch(tag string, span source.Range, children []Node) (Branch, error) {
	base := branchNode{span: span, children: children}
	switch tag {
	case "root":
		return &File{base}, nil
	case "error_node":
		return &ErrorNode{base}, nil
	case "simple_stmt":
		return &SimpleStmt{base}, nil
	case "var_name":
		return &VarName{base}, nil
	case "in_comp":
		return &InComp{base}, nil
	case "namemaybein":
		return &NameMaybeIn{base}, nil
	case "reaction_name":
		return &ReactionName{base}, nil
	case "reaction":
		return &Reaction{base}, nil
	case "species":
		return &Species{base}, nil
	case "species_list":
		return &SpeciesList{base}, nil
	case "assignment":
		return &Assignment{base}, nil
	case "declaration":
		return &Declaration{base}, nil
	case "decl_item":
		return &DeclItem{base}, nil
	case "decl_assignment":
		return &DeclAssignment{base}, nil
	case "decl_modifiers":
		return &DeclModifiers{base}, nil
	case "annotation":
		return &Annotation{base}, nil
	case "model":
		return &Model{base}, nil
	case "function":
		return &Function{base}, nil
	case "sum":
		return &Sum{base}, nil
	case "product":
		return &Product{base}, nil
	case "power":
		return &Power{base}, nil
	case "atom":
		return &Atom{base}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownTag, tag)
	}
}

// linkParents wires parent back-references top-down. Construction left
// them unset so that subtrees could be built without threading state
// through the recursion.
func linkParents(b Branch) {
	for _, c := range b.Children() {
		if c == nil {
			continue
		}
		c.setParent(b)
		if cb, ok := c.(Branch); ok {
			linkParents(cb)
		}
	}
}

// threadLeaves links the leaves beneath n into the in-order chain,
// carrying the most recently seen leaf across recursive calls. It
// returns the last leaf seen.
func threadLeaves(n Node, last Leaf) Leaf {
	if n == nil {
		return last
	}

	if l, ok := n.(Leaf); ok {
		l.setPrev(last)
		if last != nil {
			last.setNext(l)
		}
		return l
	}

	for _, c := range n.(Branch).Children() {
		if next := threadLeaves(c, last); next != nil {
			last = next
		}
	}
	return last
}
