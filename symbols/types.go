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
	// Unknown is the top of the type lattice: nothing is known about the
	// symbol yet.
	Unknown Type = iota

	// Direct subtypes of Unknown.
	Variable
	Submodel
	Model
	Function
	Unit

	// Subtype of Variable. Also known as "formula".
	Parameter

	// Subtypes of Parameter.
	Species
	Compartment
	Reaction
	Event
	Constraint
)

// Type categorizes a symbol in the type lattice:
//
//	Unknown ⊒ Variable ⊒ Parameter ⊒ {Species, Compartment, Reaction, Constraint}
//	Unknown ⊒ Submodel, Model, Function, Unit
//
// Later occurrences of a name may narrow its recorded type down the
// lattice; see [Type.DerivesFrom] and [Table.Insert].
type Type int8

// String implements [fmt.Stringer].
func (t Type) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case Variable:
		return "variable"
	case Submodel:
		return "submodel"
	case Model:
		return "model"
	case Function:
		return "function"
	case Unit:
		return "unit"
	case Parameter:
		return "parameter"
	case Species:
		return "species"
	case Compartment:
		return "compartment"
	case Reaction:
		return "reaction"
	case Event:
		return "event"
	case Constraint:
		return "constraint"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// DerivesFrom reports whether t is the same as or narrower than other in
// the type lattice. It is a partial order: reflexive, antisymmetric, and
// with Unknown as the top element.
func (t Type) DerivesFrom(other Type) bool {
	if t == other || other == Unknown {
		return true
	}

	derivesFromParameter := t == Species || t == Compartment ||
		t == Reaction || t == Constraint

	switch other {
	case Variable:
		return derivesFromParameter || t == Parameter
	case Parameter:
		return derivesFromParameter
	default:
		return false
	}
}

const (
	VariabilityUnknown Variability = iota
	VariabilityConstant
	VariabilityVariable
)

// Variability is the const/var marker of a declaration.
type Variability int8

// String implements [fmt.Stringer].
func (v Variability) String() string {
	switch v {
	case VariabilityUnknown:
		return "unknown"
	case VariabilityConstant:
		return "const"
	case VariabilityVariable:
		return "var"
	default:
		return fmt.Sprintf("variability(%d)", int(v))
	}
}
