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

// Stmt is the closed union of statement variants that can appear inside
// a [SimpleStmt]: [Reaction], [Assignment], [Declaration] or
// [Annotation].
type Stmt interface {
	Branch

	isStmt()
}

func (*Reaction) isStmt()    {}
func (*Assignment) isStmt()  {}
func (*Declaration) isStmt() {}
func (*Annotation) isStmt()  {}

// SimpleStmt is one statement plus its terminator.
//
// Children: [Stmt?, Operator|Newline]. The statement slot is nil for an
// empty statement (a bare terminator).
type SimpleStmt struct{ branchNode }

// Stmt returns the statement proper, or nil for an empty statement.
func (n *SimpleStmt) Stmt() Stmt {
	return child[Stmt](&n.branchNode, 0)
}

// Species is one reactant or product: '[stoich] [$] name'.
//
// Children: [Number?, Operator?, Name].
type Species struct{ branchNode }

// Stoichiometry returns the stoichiometric coefficient, defaulting to 1
// when none is written.
func (n *Species) Stoichiometry() float64 {
	num := child[*Number](&n.branchNode, 0)
	if num == nil {
		return 1
	}
	v, err := num.Value()
	if err != nil {
		return 1
	}
	return v
}

// IsConst reports whether the species carries the '$' const marker.
func (n *Species) IsConst() bool {
	return child[*Operator](&n.branchNode, 1) != nil
}

// Name returns the species name token.
func (n *Species) Name() *Name {
	return child[*Name](&n.branchNode, 2)
}

// SpeciesList is the reactant or product side of a reaction.
//
// Children alternate Species, '+', Species, ...; the list is either
// empty or of odd length.
type SpeciesList struct{ branchNode }

// AllSpecies returns the species of this list, skipping the separators.
func (n *SpeciesList) AllSpecies() []*Species {
	species := make([]*Species, 0, (len(n.children)+1)/2)
	for i := 0; i < len(n.children); i += 2 {
		species = append(species, child[*Species](&n.branchNode, i))
	}
	return species
}

// ReactionName is the 'J0:' prefix of a named reaction.
//
// Children: [NameMaybeIn, Operator].
type ReactionName struct{ branchNode }

// MaybeIn returns the name with its optional compartment clause.
func (n *ReactionName) MaybeIn() *NameMaybeIn {
	return child[*NameMaybeIn](&n.branchNode, 0)
}

// Name returns the reaction name token.
func (n *ReactionName) Name() *Name {
	return n.MaybeIn().VarName().Name()
}

// Reaction is a reaction statement:
// '[J0:] reactants -> products; rate [in comp]'.
//
// Children: [ReactionName?, SpeciesList, Operator, SpeciesList,
// Operator, expr, InComp?].
type Reaction struct{ branchNode }

// Name returns the reaction name token, or nil for an anonymous
// reaction.
func (n *Reaction) Name() *Name {
	rn := child[*ReactionName](&n.branchNode, 0)
	if rn == nil {
		return nil
	}
	return rn.Name()
}

// ReactantList returns the left-hand species list, or nil.
func (n *Reaction) ReactantList() *SpeciesList {
	return child[*SpeciesList](&n.branchNode, 1)
}

// ProductList returns the right-hand species list, or nil.
func (n *Reaction) ProductList() *SpeciesList {
	return child[*SpeciesList](&n.branchNode, 3)
}

// Reactants returns the species consumed by this reaction.
func (n *Reaction) Reactants() []*Species {
	if list := n.ReactantList(); list != nil {
		return list.AllSpecies()
	}
	return nil
}

// Products returns the species produced by this reaction.
func (n *Reaction) Products() []*Species {
	if list := n.ProductList(); list != nil {
		return list.AllSpecies()
	}
	return nil
}

// RateLaw returns the rate-law expression. It is either a single [*Name]
// leaf or an expression subtree.
func (n *Reaction) RateLaw() Node {
	if 5 >= len(n.children) {
		return nil
	}
	return n.children[5]
}

// InComp returns the trailing compartment clause, or nil.
func (n *Reaction) InComp() *InComp {
	return child[*InComp](&n.branchNode, 6)
}

// IsReversible reports whether the reaction arrow is '->' rather than
// '=>'.
func (n *Reaction) IsReversible() bool {
	return child[*Operator](&n.branchNode, 2).Text() == "->"
}

// Assignment is a value assignment statement: 'a = expr'.
//
// Children: [NameMaybeIn, Operator, expr].
type Assignment struct{ branchNode }

// MaybeIn returns the assigned name with its optional compartment
// clause.
func (n *Assignment) MaybeIn() *NameMaybeIn {
	return child[*NameMaybeIn](&n.branchNode, 0)
}

// Name returns the assigned name token.
func (n *Assignment) Name() *Name {
	return n.MaybeIn().VarName().Name()
}

// Value returns the assigned expression.
func (n *Assignment) Value() Node {
	if 2 >= len(n.children) {
		return nil
	}
	return n.children[2]
}

// DeclModifiers is the modifier prefix of a declaration.
//
// The parser produces one or two children in either order; the builder
// normalizes this node to exactly two slots, [var-modifier?,
// type-modifier?], of which at least one is present.
type DeclModifiers struct{ branchNode }

// VarModifier returns the 'var'/'const' keyword, or nil.
func (n *DeclModifiers) VarModifier() *Keyword {
	return child[*Keyword](&n.branchNode, 0)
}

// TypeModifier returns the 'species'/'compartment'/'formula' keyword, or
// nil.
func (n *DeclModifiers) TypeModifier() *Keyword {
	return child[*Keyword](&n.branchNode, 1)
}

// DeclAssignment is the '= expr' suffix of a declaration item.
//
// Children: [Operator, expr].
type DeclAssignment struct{ branchNode }

// Value returns the assigned expression.
func (n *DeclAssignment) Value() Node {
	if 1 >= len(n.children) {
		return nil
	}
	return n.children[1]
}

// DeclItem is one comma-separated item of a declaration.
//
// Children: [NameMaybeIn, DeclAssignment?].
type DeclItem struct{ branchNode }

// MaybeIn returns the declared name with its optional compartment
// clause.
func (n *DeclItem) MaybeIn() *NameMaybeIn {
	return child[*NameMaybeIn](&n.branchNode, 0)
}

// Assignment returns the initial-value clause, or nil.
func (n *DeclItem) Assignment() *DeclAssignment {
	return child[*DeclAssignment](&n.branchNode, 1)
}

// Name returns the declared name token.
func (n *DeclItem) Name() *Name {
	return n.MaybeIn().VarName().Name()
}

// Value returns the initial-value expression, or nil if the item has no
// assignment.
func (n *DeclItem) Value() Node {
	a := n.Assignment()
	if a == nil {
		return nil
	}
	return a.Value()
}

// Declaration is a declaration statement:
// 'const species a = 1, b in c'.
//
// Children: [DeclModifiers, DeclItem, Operator, DeclItem, ...].
type Declaration struct{ branchNode }

// Modifiers returns the modifier prefix.
func (n *Declaration) Modifiers() *DeclModifiers {
	return child[*DeclModifiers](&n.branchNode, 0)
}

// Items returns the declared items, skipping the comma separators.
func (n *Declaration) Items() []*DeclItem {
	items := make([]*DeclItem, 0, len(n.children)/2)
	for i := 1; i < len(n.children); i += 2 {
		items = append(items, child[*DeclItem](&n.branchNode, i))
	}
	return items
}

// Annotation is an annotation statement: 'a identity "uri"'.
//
// Children: [VarName, Keyword, StringLiteral].
type Annotation struct{ branchNode }

// VarName returns the annotated name.
func (n *Annotation) VarName() *VarName {
	return child[*VarName](&n.branchNode, 0)
}

// Keyword returns the annotation relationship keyword text.
func (n *Annotation) Keyword() string {
	return child[*Keyword](&n.branchNode, 1).Text()
}

// URI returns the annotation URI, without its quotes.
func (n *Annotation) URI() string {
	return child[*StringLiteral](&n.branchNode, 2).Value()
}
