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

import (
	"strconv"

	"github.com/antimony-lang/antcompile/source"
)

// Name is an identifier token.
type Name struct{ leafNode }

// NewName constructs a synthetic Name token that is not part of any
// tree. This exists for callers that need to key a symbol-table lookup
// or insertion on a name that did not come from source, such as rename
// tooling.
func NewName(text string, span source.Range) *Name {
	return &Name{leafNode{span: span, text: text}}
}

// Number is a numeric literal token.
type Number struct{ leafNode }

// Value returns the numeric value of this literal.
func (n *Number) Value() (float64, error) {
	return strconv.ParseFloat(n.text, 64)
}

// Operator is a punctuation token, such as '->', '=' or ';'.
type Operator struct{ leafNode }

// Keyword is a reserved-word token, such as 'in', 'const' or 'species'.
type Keyword struct{ leafNode }

// StringLiteral is a quoted string token.
type StringLiteral struct{ leafNode }

// Value returns the text between the quotes.
func (s *StringLiteral) Value() string {
	if len(s.text) < 2 {
		return ""
	}
	return s.text[1 : len(s.text)-1]
}

// Newline is a statement-terminating line break. End-of-file is
// represented as a Newline with empty text.
type Newline struct{ leafNode }

// ErrorToken is a token the parser did not expect. See [ErrorNode].
type ErrorToken struct{ leafNode }
