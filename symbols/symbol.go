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

package symbols

import (
	"fmt"

	"github.com/antimony-lang/antcompile/ast"
)

// QName is a qualified name: one occurrence of an identifier together
// with the scope it occurred in.
type QName struct {
	Scope Scope
	Name  *ast.Name
}

// Symbol is the merged semantic record for every occurrence of one name
// within one scope. The table creates a symbol lazily on the first
// occurrence and updates it on each later one.
//
// The fields are read-only for consumers; only [Table.Insert] and
// [Table.InsertAnnotation] mutate a symbol, and only until analysis
// completes.
type Symbol struct {
	// The name of the symbol.
	Name string
	// The current (narrowest seen) type of the symbol.
	Type Type
	// The name token whose occurrence pinned the current type.
	TypeName *ast.Name
	// The name token and statement of the declaration that declared this
	// symbol, if any.
	DeclName *ast.Name
	DeclNode ast.Node
	// The statement that assigned this symbol's value, if any. When the
	// value is assigned more than once, this is the latest assignment.
	ValueNode ast.Node

	annotations []*ast.Annotation
}

// Annotations returns the annotation statements attached to this symbol,
// in source order. Callers must not mutate the returned slice.
func (s *Symbol) Annotations() []*ast.Annotation {
	return s.annotations
}

// Def returns the node that should be treated as this symbol's
// definition site: the declaration name if declared, else the value
// assignment, else the token that pinned the type.
func (s *Symbol) Def() ast.Node {
	switch {
	case s.DeclName != nil:
		return s.DeclName
	case s.ValueNode != nil:
		return s.ValueNode
	default:
		return s.TypeName
	}
}

// HelpString renders a short markdown block describing this symbol, for
// hover text: the type and name, plus the URI of the first annotation if
// there is one.
func (s *Symbol) HelpString() string {
	ret := fmt.Sprintf("```\n(%v) %s\n```", s.Type, s.Name)
	if len(s.annotations) > 0 {
		ret += fmt.Sprintf("\n\n***\n\n%s", s.annotations[0].URI())
	}
	return ret
}
