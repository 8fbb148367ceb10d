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

type (
	// Const is a literal scalar or tensor value.
	Const struct {
		// Value of the literal: a Go scalar (bool, int32, int64, uint32,
		// uint64, float32, float64) or a flat slice of one of the element
		// types for a rank-1 tensor literal. May be nil when Declared
		// fully specifies the type.
		Value any

		// Declared is the optional type accompanying the literal.
		// It must be compatible with the intrinsic type of Value.
		Declared Type
	}

	// VarRef references a let binding or a function parameter by name.
	// The front end guarantees the name is in scope; the checker still
	// verifies it.
	VarRef struct {
		Name string
	}

	// GlobalRef references a top-level function by name, resolved against
	// the global declaration environment.
	GlobalRef struct {
		Name string
	}

	// Let binds a name to the value of an expression within a body.
	// The binding is monomorphic and scoped strictly to Body.
	Let struct {
		Name string
		// Bound is the expression the name is bound to.
		Bound Expr
		// Declared is the optional type annotation of the binding.
		// When present, the type of Bound must be structurally equal to it.
		Declared Type
		Body     Expr
	}

	// If evaluates one of two branches depending on a boolean condition.
	// Both branches must have the same type.
	If struct {
		Cond Expr
		Then Expr
		Else Expr
	}

	// Param is a function parameter and its declared type.
	// Parameter types are always explicit: they are never inferred
	// from the uses of the parameter.
	Param struct {
		Name string
		Typ  Type
	}

	// FuncLit is an anonymous function.
	FuncLit struct {
		Params []*Param
		Body   Expr
	}

	// GlobalDecl declares a top-level function. Its body may reference the
	// declaration itself, or any other global declared before it.
	GlobalDecl struct {
		Name   string
		Params []*Param
		// Result is the optional declared return type. When nil, the
		// return type is inferred from the body.
		Result Type
		Body   Expr
	}

	// DeclGroup declares a group of top-level functions which bodies may
	// reference any declaration of the group, forward or backward.
	DeclGroup struct {
		Decls []*GlobalDecl
	}

	// Call applies a function to arguments.
	Call struct {
		Callee Expr
		Args   []Expr
	}

	// PrimCall applies a primitive operator to arguments.
	PrimCall struct {
		Op   Op
		Args []Expr
		// Axis is the axis argument of operators taking one (concat).
		// The front end defaults it to 0 when unspecified.
		Axis int
	}
)

var (
	_ Expr = (*Const)(nil)
	_ Expr = (*VarRef)(nil)
	_ Expr = (*GlobalRef)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*FuncLit)(nil)
	_ Expr = (*GlobalDecl)(nil)
	_ Expr = (*DeclGroup)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*PrimCall)(nil)
)

func (*Const) node()      {}
func (*VarRef) node()     {}
func (*GlobalRef) node()  {}
func (*Let) node()        {}
func (*If) node()         {}
func (*Param) node()      {}
func (*FuncLit) node()    {}
func (*GlobalDecl) node() {}
func (*DeclGroup) node()  {}
func (*Call) node()       {}
func (*PrimCall) node()   {}

func (*Const) expr()      {}
func (*VarRef) expr()     {}
func (*GlobalRef) expr()  {}
func (*Let) expr()        {}
func (*If) expr()         {}
func (*FuncLit) expr()    {}
func (*GlobalDecl) expr() {}
func (*DeclGroup) expr()  {}
func (*Call) expr()       {}
func (*PrimCall) expr()   {}
