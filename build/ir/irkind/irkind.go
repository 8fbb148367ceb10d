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

// Package irkind defines kinds for the Relay intermediate representation (IR).
package irkind

import "github.com/gx-org/backend/dtype"

// Kind of a type.
type Kind uint

// Kinds of data supported by the IR.
// Element kinds share their values with the backend data types.
const (
	Invalid = Kind(dtype.Invalid)

	Bool     = Kind(dtype.Bool)
	Int32    = Kind(dtype.Int32)
	Int64    = Kind(dtype.Int64)
	Uint32   = Kind(dtype.Uint32)
	Uint64   = Kind(dtype.Uint64)
	Bfloat16 = Kind(dtype.Bfloat16)
	Float32  = Kind(dtype.Float32)
	Float64  = Kind(dtype.Float64)

	Tensor = Kind(iota + dtype.MaxDataType)
	Func

	// Unknown is a proxy kind used while a type is being inferred by the checker.
	Unknown
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Bfloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Tensor:
		return "tensor"
	case Func:
		return "func"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

// DType converts a kind into a backend data type.
// Returns dtype.Invalid for kinds that are not element kinds.
func (k Kind) DType() dtype.DataType {
	if k >= Kind(dtype.MaxDataType) {
		return dtype.Invalid
	}
	return dtype.DataType(k)
}

// IsElementKind returns true if the kind can be stored as a tensor element.
func IsElementKind(k Kind) bool {
	switch k {
	case Bool:
	case Bfloat16, Float32, Float64:
	case Int32, Int64:
	case Uint32, Uint64:
	default:
		return false
	}
	return true
}

// IsFloatKind returns true if the kind is a floating point kind.
func IsFloatKind(k Kind) bool {
	switch k {
	case Bfloat16, Float32, Float64:
		return true
	}
	return false
}

// IsIntegerKind returns true if the kind is an integer kind.
func IsIntegerKind(k Kind) bool {
	switch k {
	case Int32, Int64, Uint32, Uint64:
		return true
	}
	return false
}

// IsNumericKind returns true if the kind supports arithmetic operators.
func IsNumericKind(k Kind) bool {
	return IsFloatKind(k) || IsIntegerKind(k)
}

// SameFamily returns true if two kinds belong to the same family
// (both floats, both integers, or both booleans).
func SameFamily(x, y Kind) bool {
	if x == y {
		return true
	}
	if IsFloatKind(x) && IsFloatKind(y) {
		return true
	}
	return IsIntegerKind(x) && IsIntegerKind(y)
}
