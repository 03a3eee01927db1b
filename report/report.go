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

// Package report defines the diagnostics produced by semantic and syntax
// analysis of Antimony source.
//
// Issues are plain immutable values: a consumer (an editor integration,
// say) receives the structured record and decides how to present it.
// Rendering is not this package's concern.
package report

import (
	"fmt"

	"github.com/antimony-lang/antcompile/source"
)

const (
	Error Severity = 1 + iota
	Warning
)

// Severity indicates how bad an issue is.
//
// An Error is guaranteed to be rejected by downstream consumers of the
// model; a Warning is suspicious but legal.
type Severity int8

// String implements [fmt.Stringer].
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

const (
	// Syntax issues.
	UnexpectedToken Kind = 1 + iota
	UnexpectedEOF
	UnexpectedNewline

	// Semantic issues.
	IncompatibleType
	ObscuredDeclaration
	ObscuredValue
)

// Kind discriminates the closed set of issue variants.
type Kind int8

// IsSyntax reports whether this kind is a syntax issue, as opposed to a
// semantic one.
func (k Kind) IsSyntax() bool {
	return k == UnexpectedToken || k == UnexpectedEOF || k == UnexpectedNewline
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEOF:
		return "unexpected EOF"
	case UnexpectedNewline:
		return "unexpected newline"
	case IncompatibleType:
		return "incompatible type"
	case ObscuredDeclaration:
		return "obscured declaration"
	case ObscuredValue:
		return "obscured value"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Issue is a single diagnostic about a source file.
//
// Issues are immutable once created: analysis appends them to a [Report]
// and never touches them again.
type Issue struct {
	Kind     Kind
	Severity Severity
	// The primary range of the issue.
	Range source.Range
	// The secondary range, for issue kinds that reference two occurrences
	// (IncompatibleType, ObscuredDeclaration, ObscuredValue). Zero
	// otherwise.
	Other source.Range
	// A human-readable message. This is the minimal payload; richer
	// formatting is up to the consumer.
	Message string
}

// String implements [fmt.Stringer].
func (i Issue) String() string {
	return fmt.Sprintf("%v: %v: %s", i.Range, i.Severity, i.Message)
}

// Unexpected constructs an issue for a token the parser could not place.
func Unexpected(tokenRange source.Range, text string) Issue {
	return Issue{
		Kind:     UnexpectedToken,
		Severity: Error,
		Range:    tokenRange,
		Message:  fmt.Sprintf("Unexpected token '%s'", text),
	}
}

// UnexpectedEnd constructs an issue for input that ended where another
// token was expected.
func UnexpectedEnd(lastRange source.Range) Issue {
	return Issue{
		Kind:     UnexpectedEOF,
		Severity: Error,
		Range:    lastRange,
		Message:  "Expected a token",
	}
}

// UnexpectedLineBreak constructs an issue for a newline that appeared
// where another token was expected. The range covers the remainder of
// the line.
func UnexpectedLineBreak(pos source.Position) Issue {
	return Issue{
		Kind:     UnexpectedNewline,
		Severity: Error,
		Range: source.Range{
			Start: pos,
			End:   source.Position{Line: pos.Line + 1, Column: 1},
		},
		Message: "Expected a token",
	}
}

// TypeConflict constructs an issue for an occurrence whose type neither
// narrows nor widens the type already recorded for its symbol.
func TypeConflict(oldType string, oldRange source.Range, newType string, newRange source.Range) Issue {
	return Issue{
		Kind:     IncompatibleType,
		Severity: Error,
		Range:    newRange,
		Other:    oldRange,
		Message: fmt.Sprintf(
			"Type '%s' is incompatible with type '%s' indicated on line %d:%d",
			newType, oldType, oldRange.Start.Line, oldRange.Start.Column),
	}
}

// DeclarationObscured constructs an issue for a declaration superseded by
// a later declaration of the same name.
//
// Analysis does not currently emit this kind; the detection is a known
// incomplete feature. The constructor exists so the variant set is
// complete for consumers.
func DeclarationObscured(oldRange, newRange source.Range, name string) Issue {
	return Issue{
		Kind:     ObscuredDeclaration,
		Severity: Warning,
		Range:    oldRange,
		Other:    newRange,
		Message: fmt.Sprintf(
			"Declaration '%s' is obscured by a declaration of the same name on line %d:%d",
			name, newRange.Start.Line, newRange.Start.Column),
	}
}

// ValueObscured constructs an issue for a value assignment superseded by
// a later assignment to the same name.
func ValueObscured(oldRange, newRange source.Range, name string) Issue {
	return Issue{
		Kind:     ObscuredValue,
		Severity: Warning,
		Range:    oldRange,
		Other:    newRange,
		Message: fmt.Sprintf(
			"Value assignment to '%s' is obscured by a later assignment on line %d:%d",
			name, newRange.Start.Line, newRange.Start.Column),
	}
}

// Report is an ordered collection of issues.
type Report []Issue

// Push appends issues to this report.
func (r *Report) Push(issues ...Issue) {
	*r = append(*r, issues...)
}
