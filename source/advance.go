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

package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Advance returns the position immediately after scanning text starting
// at pos. A newline resets the column to 1 and increments the line;
// anything else advances the column by one per grapheme cluster, so that
// multi-rune sequences occupy a single column.
func Advance(pos Position, text string) Position {
	for {
		newline := strings.IndexByte(text, '\n')
		if newline < 0 {
			break
		}
		text = text[newline+1:]
		pos.Line++
		pos.Column = 1
	}
	pos.Column += uniseg.GraphemeClusterCount(text)
	return pos
}
