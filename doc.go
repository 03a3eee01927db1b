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

// Package antcompile is the semantic core of Antimony language tooling.
//
// Antimony is a small domain-specific language for describing
// biochemical reaction networks: species, compartments, reactions,
// assignments, declarations and annotations. Parsing is not this
// module's job; an external parser hands it a generic concrete syntax
// tree (see package parsetree), and this module builds the typed AST
// (package ast), resolves every name occurrence into a scoped symbol
// table (packages symbols and analysis), and reports syntax and
// semantic diagnostics (package report).
//
// Analyzing one file is a pure function of its parse tree:
//
//	result, err := antcompile.Analyze(tree)
//
// A [Checker] analyzes many independent files with bounded parallelism.
// Analyzers are never shared between files or goroutines while under
// construction; a completed [Result] is immutable and safe for
// concurrent queries.
package antcompile
