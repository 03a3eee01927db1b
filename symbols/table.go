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

// Package symbols implements the scoped symbol table for Antimony
// semantic analysis, along with the symbol type lattice.
package symbols

import (
	"fmt"
	"slices"

	"github.com/antimony-lang/antcompile/ast"
	"github.com/antimony-lang/antcompile/internal/ordered"
	"github.com/antimony-lang/antcompile/report"
)

// Table stores one [Symbol] per unique (scope, name) pair, plus the flat
// sequence of every qualified-name occurrence seen and the semantic
// issues found while merging occurrences.
//
// A table is populated by a single analysis pass and must be treated as
// immutable afterwards; concurrent reads are then safe without locking.
type Table struct {
	scopes map[Scope]*ordered.Map[string, *Symbol]
	qnames []QName
	issues report.Report
}

// NewTable constructs an empty table.
func NewTable() *Table {
	return &Table{scopes: make(map[Scope]*ordered.Map[string, *Symbol])}
}

func (t *Table) scope(s Scope) *ordered.Map[string, *Symbol] {
	m := t.scopes[s]
	if m == nil {
		m = new(ordered.Map[string, *Symbol])
		t.scopes[s] = m
	}
	return m
}

// Issues returns the semantic issues accumulated so far. Callers must
// not mutate the returned slice.
func (t *Table) Issues() report.Report {
	return t.issues
}

// AllQNames returns every qualified-name occurrence inserted, in
// insertion order. Callers must not mutate the returned slice.
func (t *Table) AllQNames() []QName {
	return t.qnames
}

// AllNames returns the distinct names known in any scope, sorted. This
// feeds completion lists.
func (t *Table) AllNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range t.scopes {
		for name := range m.Keys() {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}

// Get returns the symbols recorded for the given qualified name.
//
// Today a (scope, name) pair maps to at most one symbol, so the result
// has zero or one element; the slice return leaves room for names that
// legally denote several entities.
func (t *Table) Get(q QName) []*Symbol {
	m := t.scopes[q.Scope]
	if m == nil {
		return nil
	}
	if sym, ok := m.Get(q.Name.Text()); ok {
		return []*Symbol{sym}
	}
	return nil
}

// UniqueName returns a name, formed by appending a decimal suffix to
// prefix, that is unused in every scope.
func (t *Table) UniqueName(prefix string) string {
	return t.uniqueName(prefix, func(name string) bool {
		for _, m := range t.scopes {
			if m.Has(name) {
				return true
			}
		}
		return false
	})
}

// UniqueNameIn is like [Table.UniqueName], but the name only needs to be
// unused within the given scope.
func (t *Table) UniqueNameIn(prefix string, scope Scope) string {
	m := t.scopes[scope]
	if m == nil {
		return t.uniqueName(prefix, func(string) bool { return false })
	}
	return t.uniqueName(prefix, m.Has)
}

func (t *Table) uniqueName(prefix string, taken func(string) bool) string {
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s%d", prefix, i)
		if !taken(name) {
			return name
		}
	}
}

// Insert records one occurrence of a qualified name.
//
// Call this repeatedly in the order the occurrences appear in source.
// The occurrence's type is merged with the existing symbol's type using
// the lattice: a narrower (or equal) type is adopted, a wider one adds
// no information, and an incomparable one is rejected with an
// IncompatibleType issue, in which case declNode and valueNode are not
// applied either.
//
// declNode, if non-nil, is the Declaration statement this occurrence is
// part of. valueNode, if non-nil, is the statement that assigns the
// symbol's value; a second value assignment produces an ObscuredValue
// warning and then supersedes the first.
func (t *Table) Insert(q QName, typ Type, declNode, valueNode ast.Node) {
	// The occurrence is logged even if its type turns out to conflict.
	t.qnames = append(t.qnames, q)

	scope := t.scope(q.Scope)
	name := q.Name.Text()
	sym, ok := scope.Get(name)
	if !ok {
		sym = &Symbol{Name: name, Type: typ, TypeName: q.Name}
		scope.Set(name, sym)
	} else {
		switch {
		case typ.DerivesFrom(sym.Type):
			// The new type is valid and at least as narrow; adopt it.
			sym.Type = typ
			sym.TypeName = q.Name
		case sym.Type.DerivesFrom(typ):
			// Legal, but adds no information.
		default:
			t.issues.Push(report.TypeConflict(
				sym.Type.String(), sym.TypeName.Span(),
				typ.String(), q.Name.Span()))
			return
		}
	}

	if declNode != nil {
		// A repeated declaration silently supersedes the previous one.
		// TODO: raise ObscuredDeclaration for redundant redeclarations
		// such as 'var species a; species a;'.
		sym.DeclNode = declNode
		sym.DeclName = q.Name
	}

	if valueNode != nil {
		if sym.ValueNode != nil {
			t.issues.Push(report.ValueObscured(
				sym.ValueNode.Span(), valueNode.Span(), name))
		}
		sym.ValueNode = valueNode
	}
}

// InsertAnnotation attaches an annotation statement to the symbol for q,
// creating an Unknown-typed placeholder symbol if none exists yet.
// Annotations never affect a symbol's type and never conflict.
func (t *Table) InsertAnnotation(q QName, node *ast.Annotation) {
	scope := t.scope(q.Scope)
	name := q.Name.Text()
	sym, ok := scope.Get(name)
	if !ok {
		sym = &Symbol{Name: name, Type: Unknown, TypeName: q.Name}
		scope.Set(name, sym)
	}
	sym.annotations = append(sym.annotations, node)
}
