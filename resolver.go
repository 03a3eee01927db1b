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

package antcompile

import (
	"fmt"

	"github.com/antimony-lang/antcompile/parsetree"
)

// Resolver resolves a file path into the concrete syntax tree the
// external parser produced for that file. This is how a [Checker] loads
// its inputs; file I/O and the parser itself stay outside this module.
type Resolver interface {
	FindTreeByPath(path string) (parsetree.Node, error)
}

// ResolverFunc adapts a function to the [Resolver] interface.
type ResolverFunc func(path string) (parsetree.Node, error)

// FindTreeByPath implements [Resolver].
func (f ResolverFunc) FindTreeByPath(path string) (parsetree.Node, error) {
	return f(path)
}

// TreeMap is a Resolver backed by an in-memory map from path to parse
// tree.
type TreeMap map[string]parsetree.Node

// FindTreeByPath implements [Resolver].
func (m TreeMap) FindTreeByPath(path string) (parsetree.Node, error) {
	tree, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("antcompile: no parse tree for path %q", path)
	}
	return tree, nil
}
