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

// The arithmetic expression variants. Semantic analysis treats an
// expression as an opaque subtree and only inspects its Name leaves, so
// these carry no accessors beyond the generic Branch surface.

// Sum is an expression with an addition or subtraction root operator.
type Sum struct{ branchNode }

// Product is an expression with a multiplication or division root
// operator.
type Product struct{ branchNode }

// Power is an expression with a power root operator.
type Power struct{ branchNode }

// Atom is a parenthesized or otherwise atomic expression.
type Atom struct{ branchNode }
