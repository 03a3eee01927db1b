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

import "fmt"

const (
	ScopeBase ScopeKind = iota
	ScopeModel
	ScopeFunction
)

// ScopeKind discriminates the closed set of scope variants.
type ScopeKind int8

// Scope is a lexical region within which names resolve independently:
// the file level, one per declared model, or one per function. Scopes
// never nest; the grammar does not permit a model inside a model or a
// function inside a function.
//
// Scope is a comparable value and is used directly as a map key.
type Scope struct {
	Kind ScopeKind
	// The model or function name. Empty for the base scope.
	Name string
}

// BaseScope returns the file-level scope, outside of any declared model
// or function.
func BaseScope() Scope { return Scope{Kind: ScopeBase} }

// ModelScope returns the scope of the model with the given name.
func ModelScope(name string) Scope {
	return Scope{Kind: ScopeModel, Name: name}
}

// FunctionScope returns the scope of the function with the given name.
func FunctionScope(name string) Scope {
	return Scope{Kind: ScopeFunction, Name: name}
}

// String implements [fmt.Stringer].
func (s Scope) String() string {
	switch s.Kind {
	case ScopeBase:
		return "<base>"
	case ScopeModel:
		return fmt.Sprintf("model %s", s.Name)
	case ScopeFunction:
		return fmt.Sprintf("function %s", s.Name)
	default:
		return fmt.Sprintf("scope(%d) %s", int(s.Kind), s.Name)
	}
}
