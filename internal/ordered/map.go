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

// Package ordered provides a small ordered-map wrapper used by the
// symbol table, so that name listings come out in a deterministic order
// without re-sorting on every query.
package ordered

import (
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Map is an ordered map from K to V.
//
// A zero value is ready to use.
type Map[K constraints.Ordered, V any] struct {
	tree btree.Map[K, V]
}

// Get looks up the value for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.tree.Get(key)
	return ok
}

// Set inserts or replaces the value for key.
func (m *Map[K, V]) Set(key K, value V) {
	m.tree.Set(key, value)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.tree.Scan(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Values returns an iterator over the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.tree.Scan(func(_ K, value V) bool {
			return yield(value)
		})
	}
}
