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

package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antimony-lang/antcompile/symbols"
)

var allTypes = []symbols.Type{
	symbols.Unknown,
	symbols.Variable,
	symbols.Submodel,
	symbols.Model,
	symbols.Function,
	symbols.Unit,
	symbols.Parameter,
	symbols.Species,
	symbols.Compartment,
	symbols.Reaction,
	symbols.Event,
	symbols.Constraint,
}

// parent is the immediate supertype of each type in the lattice.
// DerivesFrom must agree with the reflexive transitive closure of this
// relation.
var parent = map[symbols.Type]symbols.Type{
	symbols.Variable:    symbols.Unknown,
	symbols.Submodel:    symbols.Unknown,
	symbols.Model:       symbols.Unknown,
	symbols.Function:    symbols.Unknown,
	symbols.Unit:        symbols.Unknown,
	symbols.Event:       symbols.Unknown,
	symbols.Parameter:   symbols.Variable,
	symbols.Species:     symbols.Parameter,
	symbols.Compartment: symbols.Parameter,
	symbols.Reaction:    symbols.Parameter,
	symbols.Constraint:  symbols.Parameter,
}

func derives(t, other symbols.Type) bool {
	for {
		if t == other {
			return true
		}
		next, ok := parent[t]
		if !ok {
			return false
		}
		t = next
	}
}

func TestDerivesFrom(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for _, a := range allTypes {
		for _, b := range allTypes {
			assert.Equal(derives(a, b), a.DerivesFrom(b), "%v derives from %v", a, b)
		}
	}
}

func TestLatticeProperties(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for _, a := range allTypes {
		assert.True(a.DerivesFrom(a), "%v must derive from itself", a)
		assert.True(a.DerivesFrom(symbols.Unknown), "Unknown is the top element")

		for _, b := range allTypes {
			if a != b {
				assert.False(a.DerivesFrom(b) && b.DerivesFrom(a),
					"%v and %v must not derive from each other", a, b)
			}
		}
	}

	// Sibling leaves are incomparable.
	assert.False(symbols.Species.DerivesFrom(symbols.Compartment))
	assert.False(symbols.Compartment.DerivesFrom(symbols.Species))
	assert.False(symbols.Model.DerivesFrom(symbols.Variable))
}

func TestTypeString(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("unknown", symbols.Unknown.String())
	assert.Equal("species", symbols.Species.String())
	assert.Equal("compartment", symbols.Compartment.String())
	assert.Equal("parameter", symbols.Parameter.String())
	assert.Equal("reaction", symbols.Reaction.String())

	assert.Equal("const", symbols.VariabilityConstant.String())
	assert.Equal("var", symbols.VariabilityVariable.String())
	assert.Equal("unknown", symbols.VariabilityUnknown.String())
}

func TestScopes(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(symbols.BaseScope(), symbols.BaseScope())
	assert.NotEqual(symbols.BaseScope(), symbols.ModelScope("m"))
	assert.NotEqual(symbols.ModelScope("m"), symbols.ModelScope("n"))
	assert.NotEqual(symbols.ModelScope("m"), symbols.FunctionScope("m"))

	assert.Equal("<base>", symbols.BaseScope().String())
	assert.Equal("model cell", symbols.ModelScope("cell").String())
	assert.Equal("function hill", symbols.FunctionScope("hill").String())
}
