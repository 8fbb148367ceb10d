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

// Package irhelper provides helper functions to build IR programmatically.
package irhelper

import (
	"github.com/relay-lang/relay/build/ir"
	"github.com/relay-lang/relay/build/ir/irkind"
)

// Const returns a literal with the intrinsic type of its value.
func Const(value any) *ir.Const {
	return &ir.Const{Value: value}
}

// TypedConst returns a literal with a declared type.
func TypedConst(value any, typ ir.Type) *ir.Const {
	return &ir.Const{Value: value, Declared: typ}
}

// Zero returns a valueless literal standing for a value of a type.
func Zero(typ ir.Type) *ir.Const {
	return &ir.Const{Declared: typ}
}

// Var returns a reference to a local binding or parameter.
func Var(name string) *ir.VarRef {
	return &ir.VarRef{Name: name}
}

// Global returns a reference to a global declaration.
func Global(name string) *ir.GlobalRef {
	return &ir.GlobalRef{Name: name}
}

// Let binds a name within a body.
func Let(name string, bound, body ir.Expr) *ir.Let {
	return &ir.Let{Name: name, Bound: bound, Body: body}
}

// TypedLet binds a name with a declared type within a body.
func TypedLet(name string, bound ir.Expr, typ ir.Type, body ir.Expr) *ir.Let {
	return &ir.Let{Name: name, Bound: bound, Declared: typ, Body: body}
}

// If returns a conditional expression.
func If(cond, then, els ir.Expr) *ir.If {
	return &ir.If{Cond: cond, Then: then, Else: els}
}

// Param returns a function parameter with its declared type.
func Param(name string, typ ir.Type) *ir.Param {
	return &ir.Param{Name: name, Typ: typ}
}

// FuncLit returns an anonymous function.
func FuncLit(body ir.Expr, params ...*ir.Param) *ir.FuncLit {
	return &ir.FuncLit{Params: params, Body: body}
}

// Decl returns a top-level declaration which return type is inferred
// from its body.
func Decl(name string, body ir.Expr, params ...*ir.Param) *ir.GlobalDecl {
	return &ir.GlobalDecl{Name: name, Params: params, Body: body}
}

// TypedDecl returns a top-level declaration with a declared return type.
func TypedDecl(name string, result ir.Type, body ir.Expr, params ...*ir.Param) *ir.GlobalDecl {
	return &ir.GlobalDecl{Name: name, Params: params, Result: result, Body: body}
}

// Group returns a group of mutually recursive declarations.
func Group(decls ...*ir.GlobalDecl) *ir.DeclGroup {
	return &ir.DeclGroup{Decls: decls}
}

// Call applies a function to arguments.
func Call(callee ir.Expr, args ...ir.Expr) *ir.Call {
	return &ir.Call{Callee: callee, Args: args}
}

// Prim applies a primitive operator to arguments.
func Prim(op ir.Op, args ...ir.Expr) *ir.PrimCall {
	return &ir.PrimCall{Op: op, Args: args}
}

// ConcatAxis applies the concatenation operator along an axis.
func ConcatAxis(axis int, args ...ir.Expr) *ir.PrimCall {
	return &ir.PrimCall{Op: ir.OpConcat, Args: args, Axis: axis}
}

// TensorType returns a tensor type given its element kind and axis lengths.
func TensorType(k irkind.Kind, dims ...int) *ir.TensorType {
	return ir.NewTensorType(k, dims...)
}

// FuncType returns a function type given its result and parameter types.
func FuncType(result ir.Type, params ...ir.Type) *ir.FuncType {
	return &ir.FuncType{Params: params, Result: result}
}
