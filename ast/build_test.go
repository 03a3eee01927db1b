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

package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antimony-lang/antcompile/ast"
	"github.com/antimony-lang/antcompile/parsetree"
	"github.com/antimony-lang/antcompile/source"
)

// build decodes a YAML parse tree and builds the typed AST from it.
func build(t *testing.T, text string) *ast.File {
	t.Helper()
	tree, err := parsetree.DecodeYAML([]byte(text))
	require.NoError(t, err)
	file, err := ast.Build(tree)
	require.NoError(t, err)
	return file
}

// declFile is the parse tree for 'const species A = 5;\nA = 10;'.
const declFile = `
rule: root
children:
  - rule: simple_stmt
    children:
      - rule: declaration
        children:
          - rule: decl_modifiers
            children:
              - token: VAR_MODIFIER
                text: const
              - token: TYPE_MODIFIER
                text: species
          - rule: decl_item
            children:
              - rule: namemaybein
                children:
                  - rule: var_name
                    children:
                      - null
                      - token: NAME
                        text: A
                  - null
              - rule: decl_assignment
                children:
                  - token: EQUAL
                    text: "="
                  - token: NUMBER
                    text: "5"
      - token: SEMICOLON
        text: ";"
  - rule: simple_stmt
    children:
      - null
      - token: NEWLINE
        text: "\n"
  - rule: simple_stmt
    children:
      - rule: assignment
        children:
          - rule: namemaybein
            children:
              - rule: var_name
                children:
                  - null
                  - token: NAME
                    text: A
              - null
          - token: EQUAL
            text: "="
          - token: NUMBER
            text: "10"
      - token: SEMICOLON
        text: ";"
`

func TestBuildFile(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := build(t, declFile)
	require.Len(t, file.Children(), 3)

	decl, ok := file.Children()[0].(*ast.SimpleStmt).Stmt().(*ast.Declaration)
	require.True(t, ok)
	assert.Equal("const", decl.Modifiers().VarModifier().Text())
	assert.Equal("species", decl.Modifiers().TypeModifier().Text())

	items := decl.Items()
	require.Len(t, items, 1)
	assert.Equal("A", items[0].Name().Text())
	num, ok := items[0].Value().(*ast.Number)
	require.True(t, ok)
	v, err := num.Value()
	assert.NoError(err)
	assert.Equal(5.0, v)

	empty := file.Children()[1].(*ast.SimpleStmt)
	assert.Nil(empty.Stmt(), "a bare terminator is an empty statement")

	asgn, ok := file.Children()[2].(*ast.SimpleStmt).Stmt().(*ast.Assignment)
	require.True(t, ok)
	assert.Equal("A", asgn.Name().Text())
	assert.IsType(&ast.Number{}, asgn.Value())

	// Spans come straight from the parse tree.
	assert.Equal(
		source.NewRange(source.Position{Line: 1, Column: 13}, source.Position{Line: 1, Column: 16}),
		items[0].Span())
	assert.Equal(
		source.NewRange(source.Position{Line: 2, Column: 1}, source.Position{Line: 2, Column: 5}),
		asgn.Span())
}

func TestParentLinks(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := build(t, declFile)
	assert.Nil(file.Parent())

	for node := range ast.Descendants(file) {
		branch, ok := node.(ast.Branch)
		if !ok {
			continue
		}
		for _, child := range branch.Children() {
			if child == nil {
				continue
			}
			assert.Same(branch, child.Parent())
		}
	}
}

func TestLeafChain(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := build(t, declFile)
	want := []string{"const", "species", "A", "=", "5", ";", "\n", "A", "=", "10", ";"}

	// Forward along NextLeaf.
	var forward []string
	for leaf := ast.FirstLeaf(file); leaf != nil; leaf = leaf.NextLeaf() {
		forward = append(forward, leaf.Text())
	}
	assert.Empty(cmp.Diff(want, forward))

	// Backward along PrevLeaf.
	var backward []string
	for leaf := ast.LastLeaf(file); leaf != nil; leaf = leaf.PrevLeaf() {
		backward = append(backward, leaf.Text())
	}
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	assert.Empty(cmp.Diff(want, backward))

	// The chain visits exactly the leaves of the tree, in source order.
	var inOrder []string
	for leaf := range ast.Leaves(file) {
		inOrder = append(inOrder, leaf.Text())
	}
	assert.Empty(cmp.Diff(want, inOrder))
}

func TestDeclModifiersNormalized(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// The parser may emit the modifiers in either order; the builder
	// normalizes to [var-modifier, type-modifier].
	file := build(t, `
rule: root
children:
  - rule: simple_stmt
    children:
      - rule: declaration
        children:
          - rule: decl_modifiers
            children:
              - token: TYPE_MODIFIER
                text: species
              - token: VAR_MODIFIER
                text: const
          - rule: decl_item
            children:
              - rule: namemaybein
                children:
                  - rule: var_name
                    children:
                      - null
                      - token: NAME
                        text: A
                  - null
              - null
      - token: SEMICOLON
        text: ";"
`)
	decl := file.Children()[0].(*ast.SimpleStmt).Stmt().(*ast.Declaration)
	require.NotNil(t, decl.Modifiers().VarModifier())
	require.NotNil(t, decl.Modifiers().TypeModifier())
	assert.Equal("const", decl.Modifiers().VarModifier().Text())
	assert.Equal("species", decl.Modifiers().TypeModifier().Text())
}

func TestDeclModifiersSingle(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := build(t, `
rule: root
children:
  - rule: simple_stmt
    children:
      - rule: declaration
        children:
          - rule: decl_modifiers
            children:
              - token: TYPE_MODIFIER
                text: compartment
          - rule: decl_item
            children:
              - rule: namemaybein
                children:
                  - rule: var_name
                    children:
                      - null
                      - token: NAME
                        text: c
                  - null
              - null
      - token: SEMICOLON
        text: ";"
`)
	decl := file.Children()[0].(*ast.SimpleStmt).Stmt().(*ast.Declaration)
	assert.Nil(decl.Modifiers().VarModifier())
	require.NotNil(t, decl.Modifiers().TypeModifier())
	assert.Equal("compartment", decl.Modifiers().TypeModifier().Text())
}

func TestReactionAccessors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// 'J0: 2 S1 -> S2; k1*S1 in c;'
	file := build(t, `
rule: root
children:
  - rule: simple_stmt
    children:
      - rule: reaction
        children:
          - rule: reaction_name
            children:
              - rule: namemaybein
                children:
                  - rule: var_name
                    children:
                      - null
                      - token: NAME
                        text: J0
                  - null
              - token: COLON
                text: ":"
          - rule: species_list
            children:
              - rule: species
                children:
                  - token: NUMBER
                    text: "2"
                  - null
                  - token: NAME
                    text: S1
          - token: ARROW
            text: "->"
          - rule: species_list
            children:
              - rule: species
                children:
                  - null
                  - null
                  - token: NAME
                    text: S2
          - token: SEMICOLON
            text: ";"
          - rule: product
            children:
              - token: NAME
                text: k1
              - token: STAR
                text: "*"
              - token: NAME
                text: S1
          - rule: in_comp
            children:
              - token: IN
                text: in
              - rule: var_name
                children:
                  - null
                  - token: NAME
                    text: c
      - token: SEMICOLON
        text: ";"
`)
	reaction := file.Children()[0].(*ast.SimpleStmt).Stmt().(*ast.Reaction)
	require.NotNil(t, reaction.Name())
	assert.Equal("J0", reaction.Name().Text())
	assert.True(reaction.IsReversible())

	reactants := reaction.Reactants()
	require.Len(t, reactants, 1)
	assert.Equal("S1", reactants[0].Name().Text())
	assert.Equal(2.0, reactants[0].Stoichiometry())
	assert.False(reactants[0].IsConst())

	products := reaction.Products()
	require.Len(t, products, 1)
	assert.Equal("S2", products[0].Name().Text())
	assert.Equal(1.0, products[0].Stoichiometry(), "stoichiometry defaults to 1")

	assert.IsType(&ast.Product{}, reaction.RateLaw())
	require.NotNil(t, reaction.InComp())
	assert.Equal("c", reaction.InComp().Compartment().Name().Text())
}

func TestAnonymousReaction(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// 'S1 => S2; k1;'
	file := build(t, `
rule: root
children:
  - rule: simple_stmt
    children:
      - rule: reaction
        children:
          - null
          - rule: species_list
            children:
              - rule: species
                children:
                  - null
                  - null
                  - token: NAME
                    text: S1
          - token: ARROW
            text: "=>"
          - rule: species_list
            children:
              - rule: species
                children:
                  - null
                  - null
                  - token: NAME
                    text: S2
          - token: SEMICOLON
            text: ";"
          - token: NAME
            text: k1
          - null
      - token: SEMICOLON
        text: ";"
`)
	reaction := file.Children()[0].(*ast.SimpleStmt).Stmt().(*ast.Reaction)
	assert.Nil(reaction.Name())
	assert.False(reaction.IsReversible())
	assert.Nil(reaction.InComp())
	assert.IsType(&ast.Name{}, reaction.RateLaw())
}

func TestLeafValues(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := build(t, `
rule: root
children:
  - token: ESCAPED_STRING
    text: '"http://identifiers.org/chebi/CHEBI:17234"'
  - token: NUMBER
    text: "2.5e3"
  - token: NUMBER
    text: "bogus"
`)
	str := file.Children()[0].(*ast.StringLiteral)
	assert.Equal("http://identifiers.org/chebi/CHEBI:17234", str.Value())

	num := file.Children()[1].(*ast.Number)
	v, err := num.Value()
	assert.NoError(err)
	assert.Equal(2500.0, v)

	_, err = file.Children()[2].(*ast.Number).Value()
	assert.Error(err)
}

func TestSyntheticName(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	span := source.NewRange(source.Position{Line: 1, Column: 1}, source.Position{Line: 1, Column: 3})
	name := ast.NewName("S1", span)
	assert.Equal("S1", name.Text())
	assert.Equal(span, name.Span())
	assert.Nil(name.Parent())
	assert.Nil(name.PrevLeaf())
	assert.Nil(name.NextLeaf())
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	_, err := ast.Build(&parsetree.Token{Type: "BOGUS", Text: "?"})
	assert.ErrorIs(err, ast.ErrUnknownTag)

	_, err = ast.Build(&parsetree.Tree{Rule: "bogus_rule"})
	assert.ErrorIs(err, ast.ErrUnknownTag)

	_, err = ast.Build(&parsetree.Tree{Rule: "assignment"})
	assert.ErrorContains(err, "root has tag")
}
