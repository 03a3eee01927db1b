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

// Package source provides position and range primitives for Antimony
// source text.
//
// Positions are 1-indexed and ordered lexicographically by (line, column).
// Ranges are half-open: the end position is one column past the last
// position in the range.
package source

import "fmt"

// Position is a location within a source file.
//
// Note that Column is not a byte offset within the line; it counts
// columns the way a text editor does. The rune A is one column wide,
// and a multi-rune emoji presentation sequence is also one column.
//
// Because positions are 1-indexed, a zero Line can be used as a sentinel.
type Position struct {
	Line, Column int
}

// Compare compares two positions lexicographically by (line, column).
// It returns -1 if p comes before q, 0 if they are equal, and 1 if p
// comes after q.
func (p Position) Compare(q Position) int {
	switch {
	case p.Line < q.Line:
		return -1
	case p.Line > q.Line:
		return 1
	case p.Column < q.Column:
		return -1
	case p.Column > q.Column:
		return 1
	default:
		return 0
	}
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool { return p.Compare(q) < 0 }

// After reports whether p comes strictly after q.
func (p Position) After(q Position) bool { return p.Compare(q) > 0 }

// IsZero reports whether this is the zero (sentinel) position.
func (p Position) IsZero() bool { return p.Line == 0 && p.Column == 0 }

// String implements [fmt.Stringer].
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a half-open range of source text: it contains Start, but not
// End.
type Range struct {
	Start, End Position
}

// NewRange constructs a range from a pair of positions.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// Contains reports whether pos lies within this range.
func (r Range) Contains(pos Position) bool {
	return pos.Compare(r.Start) >= 0 && pos.Compare(r.End) < 0
}

// IsZero reports whether this is the zero range.
func (r Range) IsZero() bool { return r.Start.IsZero() && r.End.IsZero() }

// String implements [fmt.Stringer].
func (r Range) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}
