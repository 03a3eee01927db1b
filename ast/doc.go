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

// Package ast defines the typed abstract syntax tree for Antimony source
// files, and the builder that produces it from the generic concrete
// syntax tree of the external parser.
//
// The node variants form a closed set: both the [Node] and [Leaf]
// interfaces carry unexported methods, so no type outside this package
// can satisfy them. Dispatch sites may therefore type-switch over the
// concrete variants exhaustively.
//
// A tree is built in phases. [Build] first constructs each subtree
// bottom-up, then wires parent back-references top-down, and finally
// threads the prev/next chain across all leaves in source order. After
// Build returns, the tree is immutable; all of its traversal pointers
// (parent, prev, next) are non-owning and exist only for navigation.
package ast
