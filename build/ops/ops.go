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

// Package ops implements the type rules of the primitive operators.
//
// Each operator maps to a rule computing the result type of an
// application from the types of its arguments. The table is keyed by the
// operator identifiers of the IR: names have already been resolved by the
// front end when a rule runs.
package ops

import (
	"github.com/pkg/errors"
	"github.com/relay-lang/relay/build/ir"
	"github.com/relay-lang/relay/build/ir/irkind"
	"github.com/relay-lang/relay/build/shapes"
	"github.com/relay-lang/relay/build/typerr"
)

// rule computes the result type of op applied to arguments of the given
// types. The axis is only meaningful to operators taking one.
type rule func(op ir.Op, args []ir.Type, axis int) (ir.Type, error)

var rules = map[ir.Op]rule{
	ir.OpLog:      unaryFloat,
	ir.OpExp:      unaryFloat,
	ir.OpNeg:      unaryNumeric,
	ir.OpAdd:      binaryArith,
	ir.OpSub:      binaryArith,
	ir.OpMul:      binaryArith,
	ir.OpDiv:      binaryArith,
	ir.OpEqual:    comparison,
	ir.OpNotEqual: comparison,
	ir.OpConcat:   concat,
}

// TypeRule returns the result type of a primitive operator applied to
// arguments of the given types, or the error making the application
// ill-typed.
func TypeRule(op ir.Op, args []ir.Type, axis int) (ir.Type, error) {
	opRule, ok := rules[op]
	if !ok {
		return nil, errors.WithStack(&typerr.UnknownOperator{Op: op})
	}
	return opRule(op, args, axis)
}

func checkArity(op ir.Op, args []ir.Type, want int) error {
	if len(args) != want {
		return errors.WithStack(&typerr.ArityMismatch{Callee: op.String(), Want: want, Got: len(args)})
	}
	return nil
}

// unaryFloat types elementwise operators defined on floats only (log,
// exp): the argument type, scalar or tensor, is preserved.
func unaryFloat(op ir.Op, args []ir.Type, axis int) (ir.Type, error) {
	if err := checkArity(op, args, 1); err != nil {
		return nil, err
	}
	if !ir.IsFloat(args[0]) {
		return nil, errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: args[0]})
	}
	return args[0], nil
}

// unaryNumeric types elementwise operators defined on any numeric
// element kind (negative): the argument type is preserved.
func unaryNumeric(op ir.Op, args []ir.Type, axis int) (ir.Type, error) {
	if err := checkArity(op, args, 1); err != nil {
		return nil, err
	}
	if !ir.IsNumeric(args[0]) {
		return nil, errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: args[0]})
	}
	return args[0], nil
}

// binaryOperands checks that both operands of a binary elementwise
// operator carry the same element kind.
func binaryOperands(op ir.Op, args []ir.Type) error {
	kindX, ok := ir.ElemKind(args[0])
	if !ok {
		return errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: args[0]})
	}
	kindY, ok := ir.ElemKind(args[1])
	if !ok {
		return errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: args[1]})
	}
	if kindX != kindY {
		return errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: args[0], Y: args[1]})
	}
	return nil
}

func bothScalars(args []ir.Type) bool {
	_, scalarX := args[0].(*ir.ScalarType)
	_, scalarY := args[1].(*ir.ScalarType)
	return scalarX && scalarY
}

// broadcastType computes the tensor type resulting from broadcasting the
// operand shapes, a scalar operand counting as a rank-0 tensor.
func broadcastType(op ir.Op, args []ir.Type) (*ir.TensorType, error) {
	dims := func(typ ir.Type) []int {
		if tensor, ok := typ.(*ir.TensorType); ok {
			return tensor.Dims
		}
		return nil
	}
	out, err := shapes.Broadcast(dims(args[0]), dims(args[1]))
	if err != nil {
		return nil, errors.WithStack(&typerr.ShapeMismatch{Op: op, Err: err})
	}
	kind, _ := ir.ElemKind(args[0])
	return ir.NewTensorType(kind, out...), nil
}

// binaryArith types broadcasting arithmetic operators (add, subtract,
// multiply, divide): two scalars produce that scalar type; any tensor
// operand produces a tensor of the broadcast shape.
func binaryArith(op ir.Op, args []ir.Type, axis int) (ir.Type, error) {
	if err := checkArity(op, args, 2); err != nil {
		return nil, err
	}
	if !ir.IsNumeric(args[0]) {
		return nil, errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: args[0]})
	}
	if err := binaryOperands(op, args); err != nil {
		return nil, err
	}
	if bothScalars(args) {
		return args[0], nil
	}
	return broadcastType(op, args)
}

// comparison types broadcasting comparison operators (equal, not_equal):
// operands follow the arithmetic rules, the result is a boolean scalar or
// a boolean tensor of the broadcast shape.
func comparison(op ir.Op, args []ir.Type, axis int) (ir.Type, error) {
	if err := checkArity(op, args, 2); err != nil {
		return nil, err
	}
	if err := binaryOperands(op, args); err != nil {
		return nil, err
	}
	if bothScalars(args) {
		return ir.BoolType(), nil
	}
	tensor, err := broadcastType(op, args)
	if err != nil {
		return nil, err
	}
	return ir.NewTensorType(irkind.Bool, tensor.Dims...), nil
}

// concat types the concatenation of two tensors along an axis: both
// operands must be tensors of the same element kind; ranks, axis bounds
// and axis lengths are checked by the shape algebra.
func concat(op ir.Op, args []ir.Type, axis int) (ir.Type, error) {
	if err := checkArity(op, args, 2); err != nil {
		return nil, err
	}
	tensorX, ok := args[0].(*ir.TensorType)
	if !ok {
		return nil, errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: args[0]})
	}
	tensorY, ok := args[1].(*ir.TensorType)
	if !ok {
		return nil, errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: args[1]})
	}
	if tensorX.DTyp != tensorY.DTyp {
		return nil, errors.WithStack(&typerr.UnsupportedOperand{Op: op, X: tensorX, Y: tensorY})
	}
	out, err := shapes.Concat(tensorX.Dims, tensorY.Dims, axis)
	if err != nil {
		return nil, errors.WithStack(&typerr.ShapeMismatch{Op: op, Err: err})
	}
	return ir.NewTensorType(tensorX.DTyp, out...), nil
}
