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

package analysis

import (
	"github.com/antimony-lang/antcompile/ast"
	"github.com/antimony-lang/antcompile/source"
	"github.com/antimony-lang/antcompile/symbols"
)

// At resolves a source position to the leaf token at that position and
// the scope the position lies in. This backs hover, go-to-definition
// and completion.
//
// Resolution descends from the root, at each level entering the first
// child whose range contains pos. Crossing a Model or Function node on
// the way down puts the position in that model's or function's scope;
// at most one can be crossed, since scopes never nest. A model or
// function's own name token is the exception: it lives in the scope
// outside the block.
//
// Returns ok == false if no leaf covers pos, for example when it points
// at whitespace between tokens.
func At(root *ast.File, pos source.Position) (scope symbols.Scope, leaf ast.Leaf, ok bool) {
	var model, function *ast.Name

	var node ast.Node = root
	for {
		if l, isLeaf := node.(ast.Leaf); isLeaf {
			leaf = l
			break
		}

		switch n := node.(type) {
		case *ast.Model:
			model = n.Name()
		case *ast.Function:
			function = n.Name()
		}

		next := descend(node.(ast.Branch), pos)
		if next == nil {
			return symbols.Scope{}, nil, false
		}
		node = next
	}

	scope = symbols.BaseScope()
	switch {
	case model != nil && leaf != ast.Leaf(model):
		scope = symbols.ModelScope(model.Text())
	case function != nil && leaf != ast.Leaf(function):
		scope = symbols.FunctionScope(function.Text())
	}
	return scope, leaf, true
}

// descend returns the first child of b whose range contains pos, or nil
// if no child covers it.
func descend(b ast.Branch, pos source.Position) ast.Node {
	for _, child := range b.Children() {
		if child == nil {
			continue
		}
		if child.Span().Contains(pos) {
			return child
		}
	}
	return nil
}
