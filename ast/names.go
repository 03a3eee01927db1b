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

// VarName is a possibly-$-prefixed identifier: '$a' or 'a'.
//
// Children: [Operator?, Name].
type VarName struct{ branchNode }

// IsConst reports whether the name carries the '$' const marker.
func (n *VarName) IsConst() bool {
	return child[*Operator](&n.branchNode, 0) != nil
}

// Name returns the identifier token.
func (n *VarName) Name() *Name {
	return child[*Name](&n.branchNode, 1)
}

// InComp is an 'in <compartment>' clause.
//
// Children: [Keyword, VarName].
type InComp struct{ branchNode }

// Compartment returns the compartment name.
func (n *InComp) Compartment() *VarName {
	return child[*VarName](&n.branchNode, 1)
}

// NameMaybeIn is a name with an optional compartment clause:
// 'a' or 'a in c'.
//
// Children: [VarName, InComp?].
type NameMaybeIn struct{ branchNode }

// VarName returns the named entity.
func (n *NameMaybeIn) VarName() *VarName {
	return child[*VarName](&n.branchNode, 0)
}

// InComp returns the compartment clause, or nil if there is none.
func (n *NameMaybeIn) InComp() *InComp {
	return child[*InComp](&n.branchNode, 1)
}
