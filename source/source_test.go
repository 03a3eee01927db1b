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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antimony-lang/antcompile/source"
)

func TestPositionCompare(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tests := []struct {
		p, q source.Position
		want int
	}{
		{source.Position{1, 1}, source.Position{1, 1}, 0},
		{source.Position{1, 1}, source.Position{1, 2}, -1},
		{source.Position{1, 2}, source.Position{1, 1}, 1},
		{source.Position{1, 9}, source.Position{2, 1}, -1},
		{source.Position{3, 1}, source.Position{2, 9}, 1},
	}
	for _, tt := range tests {
		assert.Equal(tt.want, tt.p.Compare(tt.q), "%v <=> %v", tt.p, tt.q)
		assert.Equal(tt.want < 0, tt.p.Before(tt.q))
		assert.Equal(tt.want > 0, tt.p.After(tt.q))
	}
}

func TestPositionZero(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(source.Position{}.IsZero())
	assert.False(source.Position{Line: 1, Column: 1}.IsZero())
	assert.Equal("3:14", source.Position{Line: 3, Column: 14}.String())
}

func TestRangeContains(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	r := source.NewRange(source.Position{1, 5}, source.Position{2, 3})
	assert.True(r.Contains(source.Position{1, 5}), "start is inclusive")
	assert.True(r.Contains(source.Position{1, 100}))
	assert.True(r.Contains(source.Position{2, 2}))
	assert.False(r.Contains(source.Position{2, 3}), "end is exclusive")
	assert.False(r.Contains(source.Position{1, 4}))
	assert.False(r.Contains(source.Position{3, 1}))

	assert.True(source.Range{}.IsZero())
	assert.False(r.IsZero())
	assert.Equal("1:5-2:3", r.String())
}

func TestAdvance(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	start := source.Position{Line: 1, Column: 1}

	assert.Equal(source.Position{1, 1}, source.Advance(start, ""))
	assert.Equal(source.Position{1, 4}, source.Advance(start, "abc"))
	assert.Equal(source.Position{2, 1}, source.Advance(start, "\n"))
	assert.Equal(source.Position{3, 3}, source.Advance(start, "ab\ncd\nef"))
	assert.Equal(source.Position{5, 6}, source.Advance(source.Position{4, 2}, "x\nhello"))
}

func TestAdvanceGraphemes(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	start := source.Position{Line: 1, Column: 1}

	// A combining sequence is one column, not one per rune.
	assert.Equal(source.Position{1, 2}, source.Advance(start, "é"))
	// So is an emoji ZWJ sequence.
	assert.Equal(source.Position{1, 4}, source.Advance(start, "a\U0001F469\u200D\U0001F680b"))
}
