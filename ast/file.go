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

// File is the root of an Antimony source file. Its direct children are
// [SimpleStmt], [ErrorToken] or [ErrorNode] values, plus [Model] and
// [Function] blocks where the grammar provides them.
type File struct{ branchNode }

// Model is a 'model name ... end' block. Scopes never nest: a model
// cannot contain another model or a function.
type Model struct{ branchNode }

// Name returns the model name token, or nil if the parser recovered a
// nameless block.
func (n *Model) Name() *Name {
	return firstName(&n.branchNode)
}

// Function is a 'function name(...) ... end' block.
type Function struct{ branchNode }

// Name returns the function name token, or nil if the parser recovered
// a nameless block.
func (n *Function) Name() *Name {
	return firstName(&n.branchNode)
}

// firstName returns the first direct Name child, which for model and
// function blocks is the declared name following the introducing
// keyword.
func firstName(n *branchNode) *Name {
	for _, c := range n.children {
		if name, ok := c.(*Name); ok {
			return name
		}
	}
	return nil
}

// ErrorNode holds the tokens that appeared before an unexpected token
// but had not yet formed a complete statement.
//
// In 'a =?', the parser collects 'a =' into an ErrorNode; in 'a = 5;?'
// there is none, because 'a = 5;' already formed a statement. The
// children are the parser's best guess at that point and may include
// fully-formed interior nodes, not just leaves.
type ErrorNode struct{ branchNode }
