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

import "iter"

// Descendants returns an iterator over n and every node beneath it, in
// pre-order. Absent child slots are skipped.
func Descendants(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walk(n, yield)
	}
}

func walk(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	b, ok := n.(Branch)
	if !ok {
		return true
	}
	for _, c := range b.Children() {
		if c == nil {
			continue
		}
		if !walk(c, yield) {
			return false
		}
	}
	return true
}

// Leaves returns an iterator over every leaf beneath n (possibly
// including n itself), in source order.
func Leaves(n Node) iter.Seq[Leaf] {
	return func(yield func(Leaf) bool) {
		for d := range Descendants(n) {
			if l, ok := d.(Leaf); ok {
				if !yield(l) {
					return
				}
			}
		}
	}
}

// FirstLeaf returns the first leaf beneath n in source order, or nil if
// n has no leaves.
func FirstLeaf(n Node) Leaf {
	for l := range Leaves(n) {
		return l
	}
	return nil
}

// LastLeaf returns the last leaf beneath n in source order, or nil if n
// has no leaves.
func LastLeaf(n Node) Leaf {
	if l, ok := n.(Leaf); ok {
		return l
	}
	b := n.(Branch)
	children := b.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] == nil {
			continue
		}
		if l := LastLeaf(children[i]); l != nil {
			return l
		}
	}
	return nil
}
