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

// Package typerr defines the errors reported by the checker.
//
// Each error kind is a distinct type carrying the context required to
// render a precise diagnostic: the caller distinguishes kinds with
// errors.As. The checker raises every kind wrapped with
// github.com/pkg/errors, so formatting a checking error with %+v also
// renders the stack of the check that rejected the tree. All errors are
// terminal for the checking session that produced them.
package typerr

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/relay-lang/relay/build/ir"
)

// UnboundVariable reports a reference to a name not in scope.
type UnboundVariable struct {
	Name string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf("undefined: %s", e.Name)
}

// ConstantTypeMismatch reports a literal which declared type is not
// compatible with the intrinsic type of its value.
type ConstantTypeMismatch struct {
	Declared ir.Type
	Inferred ir.Type
}

func (e *ConstantTypeMismatch) Error() string {
	return fmt.Sprintf("cannot use constant of type %s as %s", e.Inferred, e.Declared)
}

// LetTypeMismatch reports a let binding which declared type differs from
// the type of its bound expression.
type LetTypeMismatch struct {
	Name     string
	Declared ir.Type
	Inferred ir.Type
}

func (e *LetTypeMismatch) Error() string {
	return fmt.Sprintf("cannot bind %s of type %s: declared type is %s", e.Name, e.Inferred, e.Declared)
}

// NonBooleanCondition reports a conditional which condition is not a
// boolean scalar.
type NonBooleanCondition struct {
	Got ir.Type
}

func (e *NonBooleanCondition) Error() string {
	return fmt.Sprintf("non-boolean condition: got %s but want bool", e.Got)
}

// BranchTypeMismatch reports a conditional which branches have
// different types.
type BranchTypeMismatch struct {
	Then ir.Type
	Else ir.Type
}

func (e *BranchTypeMismatch) Error() string {
	return fmt.Sprintf("mismatched branch types: %s and %s", e.Then, e.Else)
}

// NotCallable reports a call to a value that is not a function.
type NotCallable struct {
	Got ir.Type
}

func (e *NotCallable) Error() string {
	return fmt.Sprintf("cannot call value of type %s", e.Got)
}

// ArityMismatch reports a call or operator application with the wrong
// number of arguments.
type ArityMismatch struct {
	// Callee is the name of the function or operator being applied.
	Callee string
	Want   int
	Got    int
}

func (e *ArityMismatch) Error() string {
	return fmt.Sprintf("wrong number of arguments in call to %s: got %d but want %d", e.Callee, e.Got, e.Want)
}

// ArgumentTypeMismatch reports a call argument which type differs from
// the parameter type at the same position.
type ArgumentTypeMismatch struct {
	Callee   string
	Position int
	Want     ir.Type
	Got      ir.Type
}

func (e *ArgumentTypeMismatch) Error() string {
	return fmt.Sprintf("cannot use argument %d of type %s as %s in call to %s", e.Position, e.Got, e.Want, e.Callee)
}

// ReturnTypeMismatch reports a declaration which body type differs from
// its declared return type.
type ReturnTypeMismatch struct {
	Name     string
	Declared ir.Type
	Inferred ir.Type
}

func (e *ReturnTypeMismatch) Error() string {
	return fmt.Sprintf("%s returns %s: declared return type is %s", e.Name, e.Inferred, e.Declared)
}

// UnknownOperator reports the application of an operator with no
// registered type rule.
type UnknownOperator struct {
	Op ir.Op
}

func (e *UnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %s", e.Op)
}

// UnsupportedOperand reports an operator applied to a type it is not
// defined on. Y is nil for unary operators, and for binary operators
// applied to two operands of the same unsupported type.
type UnsupportedOperand struct {
	Op ir.Op
	X  ir.Type
	Y  ir.Type
}

func (e *UnsupportedOperand) Error() string {
	if e.Y == nil {
		return fmt.Sprintf("invalid operation: operator %s not defined on %s", e.Op, e.X)
	}
	return fmt.Sprintf("invalid operation: mismatched types %s and %s in %s", e.X, e.Y, e.Op)
}

// ShapeMismatch reports operand shapes an operator cannot reconcile.
// It wraps the shapes error describing the offending axis.
type ShapeMismatch struct {
	Op  ir.Op
	Err error
}

func (e *ShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying shapes error.
func (e *ShapeMismatch) Unwrap() error {
	return e.Err
}

// UnresolvedRecursiveReturn reports a recursive call which return type is
// required before the body of its declaration has produced one.
type UnresolvedRecursiveReturn struct {
	Name string
}

func (e *UnresolvedRecursiveReturn) Error() string {
	return fmt.Sprintf("cannot infer return type of recursive function %s: no branch returns a resolved type", e.Name)
}

// Internalf returns an error for a state the checker should never reach
// on trees produced by the front end.
func Internalf(format string, a ...any) error {
	return errors.Errorf("relay internal error: "+format, a...)
}
