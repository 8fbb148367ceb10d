// Copyright 2025 The Relay Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ir is the Relay intermediate representation (IR) tree.
//
// The tree is built by a front end (builder or parser) before checking
// begins. The checker only reads the structure: inferred types are recorded
// in a side table keyed by node identity, never on the nodes themselves.
package ir

import "github.com/relay-lang/relay/build/ir/irkind"

// ----------------------------------------------------------------------------
// Types of node in the tree.
type (
	// Node in the tree.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		node()
	}

	// Type of a value.
	Type interface {
		Node

		// Kind of the type.
		Kind() irkind.Kind

		// Equal returns true if other is structurally the same type.
		Equal(Type) bool

		// String representation of the type.
		String() string
	}

	// Expr is an expression node producing a value.
	Expr interface {
		Node

		// expr marks a node as an expression.
		expr()

		// String representation of the expression.
		String() string
	}
)

// IsTensorOf returns true if typ is a tensor with the given element kind.
func IsTensorOf(typ Type, k irkind.Kind) bool {
	tensor, ok := typ.(*TensorType)
	if !ok {
		return false
	}
	return tensor.DTyp == k
}

// IsFloat returns true if the type is a float scalar or a float tensor.
func IsFloat(typ Type) bool {
	k, ok := ElemKind(typ)
	return ok && irkind.IsFloatKind(k)
}

// IsNumeric returns true if the type supports arithmetic operators.
func IsNumeric(typ Type) bool {
	k, ok := ElemKind(typ)
	return ok && irkind.IsNumericKind(k)
}

// ElemKind returns the element kind of a scalar or tensor type.
// Returns false for any other type.
func ElemKind(typ Type) (irkind.Kind, bool) {
	switch typT := typ.(type) {
	case *ScalarType:
		return typT.Knd, true
	case *TensorType:
		return typT.DTyp, true
	}
	return irkind.Invalid, false
}
