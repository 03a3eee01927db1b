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

// Package analysis performs semantic and syntax analysis over a typed
// Antimony AST.
//
// An [Analyzer] makes one pass over the file, populating a symbol table
// and collecting diagnostics, and then answers editor-feature queries:
// name resolution, completion name listings, unique-name generation, and
// position lookup.
//
// Analysis never fails on bad input. Statements with syntax errors are
// skipped semantically but surfaced as issues, and the consumer always
// receives a complete issue list alongside a best-effort symbol table.
package analysis

import (
	"fmt"
	"strings"

	"github.com/antimony-lang/antcompile/ast"
	"github.com/antimony-lang/antcompile/report"
	"github.com/antimony-lang/antcompile/symbols"
)

// Analyzer holds the results of analyzing one file.
//
// An Analyzer is immutable once constructed; queries may then run
// concurrently. It must not be shared while being constructed, and two
// goroutines must never construct into the same instance.
type Analyzer struct {
	root   *ast.File
	table  *symbols.Table
	syntax report.Report
}

// New analyzes the given file and returns the completed analyzer.
func New(root *ast.File) *Analyzer {
	a := &Analyzer{root: root, table: symbols.NewTable()}
	base := symbols.BaseScope()

	for _, child := range root.Children() {
		// Error-recovery children are skipped here; the syntax pass below
		// reports them.
		stmtNode, ok := child.(*ast.SimpleStmt)
		if !ok {
			continue
		}
		stmt := stmtNode.Stmt()
		if stmt == nil {
			continue // empty statement
		}

		switch stmt := stmt.(type) {
		case *ast.Reaction:
			a.handleReaction(base, stmt)
		case *ast.Assignment:
			a.handleAssignment(base, stmt)
		case *ast.Declaration:
			a.handleDeclaration(base, stmt)
		case *ast.Annotation:
			a.handleAnnotation(base, stmt)
		default:
			// ast.Stmt is a closed union; a new variant must be given a
			// handler here.
			panic(fmt.Sprintf("analysis: unhandled statement kind %T", stmt))
		}

		// Register every 'in <compartment>' that appears anywhere in the
		// statement.
		a.scanInComp(base, stmt)
	}

	a.recordSyntaxIssues()
	return a
}

// Table returns the populated symbol table.
func (a *Analyzer) Table() *symbols.Table {
	return a.table
}

// Resolve returns the symbols the given qualified name refers to.
func (a *Analyzer) Resolve(q symbols.QName) []*symbols.Symbol {
	return a.table.Get(q)
}

// AllNames returns every name known in any scope, sorted, for
// completion.
func (a *Analyzer) AllNames() []string {
	return a.table.AllNames()
}

// Issues returns all issues found: semantic first, then syntax. The
// returned slice is a fresh copy; the issues themselves are frozen.
func (a *Analyzer) Issues() report.Report {
	issues := make(report.Report, 0, len(a.table.Issues())+len(a.syntax))
	issues = append(issues, a.table.Issues()...)
	issues = append(issues, a.syntax...)
	return issues
}

// UniqueName returns a name with the given prefix that is unused in
// every scope.
func (a *Analyzer) UniqueName(prefix string) string {
	return a.table.UniqueName(prefix)
}

// recordSyntaxIssues reports the error-recovery nodes among the root's
// direct children. At most one issue is recorded per source line, first
// match wins, so one malformed line does not cascade.
func (a *Analyzer) recordSyntaxIssues() {
	lines := make(map[int]bool)
	for _, child := range a.root.Children() {
		var (
			issue report.Issue
			found bool
		)
		switch node := child.(type) {
		case *ast.ErrorToken:
			if strings.TrimSpace(node.Text()) == "" {
				// A whitespace-only error token is an unexpected newline.
				issue = report.UnexpectedLineBreak(node.Span().Start)
			} else {
				issue = report.Unexpected(node.Span(), node.Text())
			}
			found = true
		case *ast.ErrorNode:
			// An unexpected EOF does not produce an ErrorToken. It shows
			// up as an ErrorNode whose last leaf is the last token of the
			// file.
			if last := ast.LastLeaf(node); last != nil && last.NextLeaf() == nil {
				issue = report.UnexpectedEnd(last.Span())
				found = true
			}
		}

		if found && !lines[issue.Range.Start.Line] {
			a.syntax.Push(issue)
			lines[issue.Range.Start.Line] = true
		}
	}
}

// scanInComp records a Compartment occurrence for every
// 'in <compartment>' clause beneath stmt, wherever it appears.
func (a *Analyzer) scanInComp(scope symbols.Scope, stmt ast.Stmt) {
	for node := range ast.Descendants(stmt) {
		if in, ok := node.(*ast.InComp); ok {
			name := in.Compartment().Name()
			a.table.Insert(symbols.QName{Scope: scope, Name: name}, symbols.Compartment, nil, nil)
		}
	}
}

// scanExpr registers a Parameter occurrence for every Name leaf of an
// expression. The expression is either a single Name leaf or a subtree
// whose leaves are visited in source order; species and compartments
// referenced here get their types narrowed later, when their defining
// statements are handled.
func (a *Analyzer) scanExpr(scope symbols.Scope, expr ast.Node) {
	if expr == nil {
		return
	}
	if name, ok := expr.(*ast.Name); ok {
		a.table.Insert(symbols.QName{Scope: scope, Name: name}, symbols.Parameter, nil, nil)
		return
	}
	for leaf := range ast.Leaves(expr) {
		if name, ok := leaf.(*ast.Name); ok {
			a.table.Insert(symbols.QName{Scope: scope, Name: name}, symbols.Parameter, nil, nil)
		}
	}
}

func (a *Analyzer) handleReaction(scope symbols.Scope, reaction *ast.Reaction) {
	if name := reaction.Name(); name != nil {
		a.table.Insert(symbols.QName{Scope: scope, Name: name}, symbols.Reaction, reaction, nil)
	}

	for _, species := range reaction.Reactants() {
		a.table.Insert(symbols.QName{Scope: scope, Name: species.Name()}, symbols.Species, nil, nil)
	}
	for _, species := range reaction.Products() {
		a.table.Insert(symbols.QName{Scope: scope, Name: species.Name()}, symbols.Species, nil, nil)
	}

	a.scanExpr(scope, reaction.RateLaw())
}

func (a *Analyzer) handleAssignment(scope symbols.Scope, assignment *ast.Assignment) {
	q := symbols.QName{Scope: scope, Name: assignment.Name()}
	a.table.Insert(q, symbols.Parameter, nil, assignment)
	a.scanExpr(scope, assignment.Value())
}

func (a *Analyzer) handleDeclaration(scope symbols.Scope, declaration *ast.Declaration) {
	modifiers := declaration.Modifiers()
	typ := DeclType(modifiers)
	// TODO: record DeclVariability(modifiers) on the symbol once Symbol
	// carries variability.

	for _, item := range declaration.Items() {
		name := item.Name()
		value := item.Value()

		// If the item assigns an initial value, the item itself is the
		// value node; the value expression is scanned separately.
		var valueNode ast.Node
		if value != nil {
			valueNode = item
		}
		a.table.Insert(symbols.QName{Scope: scope, Name: name}, typ, declaration, valueNode)
		if value != nil {
			a.scanExpr(scope, value)
		}
	}
}

func (a *Analyzer) handleAnnotation(scope symbols.Scope, annotation *ast.Annotation) {
	name := annotation.VarName().Name()
	q := symbols.QName{Scope: scope, Name: name}
	// An annotation implies the name is some kind of parameter, but
	// never narrows the type further on its own.
	a.table.Insert(q, symbols.Parameter, nil, nil)
	a.table.InsertAnnotation(q, annotation)
}

// DeclType returns the symbol type a declaration's type modifier
// declares, or Unknown if the declaration has no type modifier.
func DeclType(modifiers *ast.DeclModifiers) symbols.Type {
	mod := modifiers.TypeModifier()
	if mod == nil {
		return symbols.Unknown
	}
	switch mod.Text() {
	case "species":
		return symbols.Species
	case "compartment":
		return symbols.Compartment
	case "formula":
		return symbols.Parameter
	default:
		panic(fmt.Sprintf("analysis: unknown type modifier %q", mod.Text()))
	}
}

// DeclVariability returns the const/var marker of a declaration, or
// VariabilityUnknown if the declaration has no var modifier.
func DeclVariability(modifiers *ast.DeclModifiers) symbols.Variability {
	mod := modifiers.VarModifier()
	if mod == nil {
		return symbols.VariabilityUnknown
	}
	if mod.Text() == "const" {
		return symbols.VariabilityConstant
	}
	return symbols.VariabilityVariable
}
