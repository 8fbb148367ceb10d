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

package ir

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gx-org/backend/shape"
	"github.com/relay-lang/relay/build/ir/irkind"
)

// ScalarType is the type of a single value of an element kind.
type ScalarType struct {
	Knd irkind.Kind
}

var (
	boolT     = &ScalarType{Knd: irkind.Bool}
	int32T    = &ScalarType{Knd: irkind.Int32}
	int64T    = &ScalarType{Knd: irkind.Int64}
	uint32T   = &ScalarType{Knd: irkind.Uint32}
	uint64T   = &ScalarType{Knd: irkind.Uint64}
	bfloat16T = &ScalarType{Knd: irkind.Bfloat16}
	float32T  = &ScalarType{Knd: irkind.Float32}
	float64T  = &ScalarType{Knd: irkind.Float64}
)

// BoolType returns the type for a boolean.
func BoolType() *ScalarType { return boolT }

// Int32Type returns the type for an int32.
func Int32Type() *ScalarType { return int32T }

// Int64Type returns the type for an int64.
func Int64Type() *ScalarType { return int64T }

// Uint32Type returns the type for a uint32.
func Uint32Type() *ScalarType { return uint32T }

// Uint64Type returns the type for a uint64.
func Uint64Type() *ScalarType { return uint64T }

// Bfloat16Type returns the type for a bfloat16.
func Bfloat16Type() *ScalarType { return bfloat16T }

// Float32Type returns the type for a float32.
func Float32Type() *ScalarType { return float32T }

// Float64Type returns the type for a float64.
func Float64Type() *ScalarType { return float64T }

// ScalarOf returns the scalar type of an element kind,
// or nil if k is not an element kind.
func ScalarOf(k irkind.Kind) *ScalarType {
	switch k {
	case irkind.Bool:
		return boolT
	case irkind.Int32:
		return int32T
	case irkind.Int64:
		return int64T
	case irkind.Uint32:
		return uint32T
	case irkind.Uint64:
		return uint64T
	case irkind.Bfloat16:
		return bfloat16T
	case irkind.Float32:
		return float32T
	case irkind.Float64:
		return float64T
	}
	return nil
}

var _ Type = (*ScalarType)(nil)

func (*ScalarType) node() {}

// Kind of the scalar.
func (s *ScalarType) Kind() irkind.Kind { return s.Knd }

// Equal returns true if other is the same scalar type.
func (s *ScalarType) Equal(other Type) bool {
	otherT, ok := other.(*ScalarType)
	if !ok {
		return false
	}
	return s.Knd == otherT.Knd
}

// String representation of the scalar type.
func (s *ScalarType) String() string { return s.Knd.String() }

// TensorType is the type of a tensor: an element kind and the length of
// every axis, outermost axis first. A tensor of rank zero holds a single
// element but is a distinct type from the scalar of its element kind.
type TensorType struct {
	DTyp irkind.Kind
	Dims []int
}

var _ Type = (*TensorType)(nil)

// NewTensorType returns the type of a tensor given its element kind
// and its axis lengths.
func NewTensorType(k irkind.Kind, dims ...int) *TensorType {
	return &TensorType{DTyp: k, Dims: dims}
}

func (*TensorType) node() {}

// Kind of the type.
func (s *TensorType) Kind() irkind.Kind { return irkind.Tensor }

// Rank returns the number of axes of the tensor.
func (s *TensorType) Rank() int { return len(s.Dims) }

// Equal returns true if other is a tensor with the same element kind
// and the same axis lengths. Tensors of different ranks are never equal.
func (s *TensorType) Equal(other Type) bool {
	otherT, ok := other.(*TensorType)
	if !ok {
		return false
	}
	return s.DTyp == otherT.DTyp && slices.Equal(s.Dims, otherT.Dims)
}

// BackendShape returns the shape of the tensor for the backend
// materialising its values.
func (s *TensorType) BackendShape() *shape.Shape {
	return &shape.Shape{
		DType:       s.DTyp.DType(),
		AxisLengths: slices.Clone(s.Dims),
	}
}

// NumElements returns the total number of elements in the tensor.
func (s *TensorType) NumElements() int {
	return s.BackendShape().Size()
}

// String representation of the tensor type.
func (s *TensorType) String() string {
	bld := strings.Builder{}
	bld.WriteString("[")
	for i, dim := range s.Dims {
		if i > 0 {
			bld.WriteString(" ")
		}
		bld.WriteString(strconv.Itoa(dim))
	}
	bld.WriteString("]")
	bld.WriteString(s.DTyp.String())
	return bld.String()
}

// FuncType defines a function signature.
type FuncType struct {
	// Params are the types of the parameters in declaration order.
	Params []Type
	// Result is the type of the value returned by the function.
	// A nil result marks a signature which return type is still
	// being inferred from the function body.
	Result Type
}

var _ Type = (*FuncType)(nil)

func (*FuncType) node() {}

// Kind of the type.
func (s *FuncType) Kind() irkind.Kind { return irkind.Func }

// Pending returns true if the return type of the signature
// has not been inferred yet.
func (s *FuncType) Pending() bool { return s.Result == nil }

// Equal returns true if other is a function type with structurally equal
// parameter and result types.
func (s *FuncType) Equal(other Type) bool {
	otherT, ok := other.(*FuncType)
	if !ok {
		return false
	}
	if len(s.Params) != len(otherT.Params) {
		return false
	}
	for i, param := range s.Params {
		if !param.Equal(otherT.Params[i]) {
			return false
		}
	}
	if s.Result == nil || otherT.Result == nil {
		return s.Result == otherT.Result
	}
	return s.Result.Equal(otherT.Result)
}

// String representation of the function type.
func (s *FuncType) String() string {
	params := make([]string, len(s.Params))
	for i, param := range s.Params {
		params[i] = param.String()
	}
	result := "unknown"
	if s.Result != nil {
		result = s.Result.String()
	}
	return "func(" + strings.Join(params, ", ") + ") " + result
}

// unknownType is a proxy standing for a type the checker has not
// resolved yet: the return type of a call checked while the signature
// of its target is still being inferred. It carries that tentative
// signature so that the checker can substitute the return type for the
// proxy once the signature is finalised.
type unknownType struct {
	sig *FuncType
}

var _ Type = (*unknownType)(nil)

// UnknownType returns the proxy for the return type of sig while it is
// being inferred.
func UnknownType(sig *FuncType) Type { return &unknownType{sig: sig} }

// IsUnknown returns true if the type has not been resolved yet.
func IsUnknown(typ Type) bool {
	return typ != nil && typ.Kind() == irkind.Unknown
}

// UnknownSignature returns the tentative signature an unresolved type
// waits on.
func UnknownSignature(typ Type) (*FuncType, bool) {
	unknownT, ok := typ.(*unknownType)
	if !ok {
		return nil, false
	}
	return unknownT.sig, true
}

func (*unknownType) node() {}

// Kind of the type.
func (s *unknownType) Kind() irkind.Kind { return irkind.Unknown }

// Equal returns true if other is unresolved and waits on the same
// signature.
func (s *unknownType) Equal(other Type) bool {
	otherT, ok := other.(*unknownType)
	return ok && s.sig == otherT.sig
}

// String representation of the type.
func (s *unknownType) String() string { return "unknown" }
