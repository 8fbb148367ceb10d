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

// Package checker infers the type of every subexpression of a Relay IR
// tree, or reports the first ill-typed construct it encounters.
//
// Checking is a single depth-first post-order traversal: children before
// parents, except global declarations which signature is stored in the
// environment before their body is checked so that recursive and forward
// calls resolve. A session is synchronous and fails fast: the first error
// terminates it.
package checker

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/relay-lang/relay/build/ir"
	"github.com/relay-lang/relay/build/ir/irkind"
	"github.com/relay-lang/relay/build/ops"
	"github.com/relay-lang/relay/build/typerr"
)

// Check infers the types of expr and of all its subexpressions against
// the globals defined in env. A nil env is an empty environment.
//
// The tree is not modified: inferred types are recorded in the returned
// Checked, which also carries the environment updated with the
// declarations of the tree. On failure, the error describes the first
// ill-typed node in traversal order.
func Check(env *Env, expr ir.Expr) (*Checked, error) {
	if env == nil {
		env = NewEnv()
	}
	c := &Checked{
		env:   env,
		types: make(map[ir.Expr]ir.Type),
	}
	if _, err := c.check(nil, expr); err != nil {
		return nil, err
	}
	// An annotation can only stay unresolved against a signature left
	// pending by a previously failed session on the same environment.
	for _, typ := range c.types {
		if err := c.requireResolved(typ); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CheckAll checks independent root expressions in order against the same
// environment, so that declarations checked by earlier roots are visible
// to later ones. Each root is its own fail-fast session; the errors of
// failed roots are combined, and the results of successful roots are
// returned in position (failed positions are nil).
func CheckAll(env *Env, exprs ...ir.Expr) ([]*Checked, error) {
	if env == nil {
		env = NewEnv()
	}
	app := &typerr.Appender{}
	all := make([]*Checked, len(exprs))
	for i, expr := range exprs {
		checked, err := Check(env, expr)
		if err != nil {
			app.Append(err)
			continue
		}
		all[i] = checked
	}
	return all, app.Error()
}

// check infers the type of an expression given the local bindings in
// scope, records it for the node, and returns it.
func (c *Checked) check(sc *scope, expr ir.Expr) (ir.Type, error) {
	var typ ir.Type
	var err error
	switch exprT := expr.(type) {
	case *ir.Const:
		typ, err = c.checkConst(exprT)
	case *ir.VarRef:
		typ, err = c.checkVarRef(sc, exprT)
	case *ir.GlobalRef:
		typ, err = c.checkGlobalRef(exprT)
	case *ir.Let:
		typ, err = c.checkLet(sc, exprT)
	case *ir.If:
		typ, err = c.checkIf(sc, exprT)
	case *ir.FuncLit:
		typ, err = c.checkFuncLit(sc, exprT)
	case *ir.GlobalDecl:
		typ, err = c.checkGlobalDecl(exprT)
	case *ir.DeclGroup:
		typ, err = c.checkDeclGroup(exprT)
	case *ir.Call:
		typ, err = c.checkCall(sc, exprT)
	case *ir.PrimCall:
		typ, err = c.checkPrimCall(sc, exprT)
	case nil:
		return nil, typerr.Internalf("cannot check a nil expression")
	default:
		return nil, typerr.Internalf("expression node %T not supported", expr)
	}
	if err != nil {
		return nil, err
	}
	c.types[expr] = typ
	return typ, nil
}

func (c *Checked) checkConst(n *ir.Const) (ir.Type, error) {
	if n.Value == nil {
		if n.Declared == nil {
			return nil, typerr.Internalf("constant with no value and no declared type")
		}
		return n.Declared, nil
	}
	intrinsic, ok := ir.IntrinsicType(n.Value)
	if !ok {
		return nil, typerr.Internalf("constant value %T not supported", n.Value)
	}
	if n.Declared == nil {
		return intrinsic, nil
	}
	if !constCompatible(n.Declared, intrinsic) {
		return nil, errors.WithStack(&typerr.ConstantTypeMismatch{Declared: n.Declared, Inferred: intrinsic})
	}
	return n.Declared, nil
}

// constCompatible returns true if a declared literal type agrees with the
// intrinsic type of the literal value: same scalar structure or the same
// axis lengths, element kinds in the same family.
func constCompatible(declared, intrinsic ir.Type) bool {
	switch declaredT := declared.(type) {
	case *ir.ScalarType:
		intrinsicT, ok := intrinsic.(*ir.ScalarType)
		if !ok {
			return false
		}
		return irkind.SameFamily(declaredT.Knd, intrinsicT.Knd)
	case *ir.TensorType:
		intrinsicT, ok := intrinsic.(*ir.TensorType)
		if !ok {
			return false
		}
		if !slices.Equal(declaredT.Dims, intrinsicT.Dims) {
			return false
		}
		return irkind.SameFamily(declaredT.DTyp, intrinsicT.DTyp)
	}
	return false
}

func (c *Checked) checkVarRef(sc *scope, n *ir.VarRef) (ir.Type, error) {
	typ, ok := sc.lookup(n.Name)
	if !ok {
		return nil, errors.WithStack(&typerr.UnboundVariable{Name: n.Name})
	}
	return typ, nil
}

func (c *Checked) checkGlobalRef(n *ir.GlobalRef) (ir.Type, error) {
	ftype, ok := c.env.Lookup(n.Name)
	if !ok {
		return nil, errors.WithStack(&typerr.UnboundVariable{Name: n.Name})
	}
	return ftype, nil
}

func (c *Checked) checkLet(sc *scope, n *ir.Let) (ir.Type, error) {
	boundType, err := c.check(sc, n.Bound)
	if err != nil {
		return nil, err
	}
	bindType := boundType
	if n.Declared != nil {
		if err := c.requireResolved(boundType); err != nil {
			return nil, err
		}
		if !n.Declared.Equal(boundType) {
			return nil, errors.WithStack(&typerr.LetTypeMismatch{Name: n.Name, Declared: n.Declared, Inferred: boundType})
		}
		bindType = n.Declared
	}
	return c.check(sc.bind(n.Name, bindType), n.Body)
}

func (c *Checked) checkIf(sc *scope, n *ir.If) (ir.Type, error) {
	condType, err := c.check(sc, n.Cond)
	if err != nil {
		return nil, err
	}
	if err := c.requireResolved(condType); err != nil {
		return nil, err
	}
	if !condType.Equal(ir.BoolType()) {
		return nil, errors.WithStack(&typerr.NonBooleanCondition{Got: condType})
	}
	thenType, err := c.check(sc, n.Then)
	if err != nil {
		return nil, err
	}
	elseType, err := c.check(sc, n.Else)
	if err != nil {
		return nil, err
	}
	// A branch reduced to a recursive or forward call has no resolved
	// type yet: the other branch establishes the type of the conditional,
	// and the branches are compared again once the signature the call
	// waits on is finalised.
	switch {
	case ir.IsUnknown(thenType):
		c.deferred = append(c.deferred, n)
		return elseType, nil
	case ir.IsUnknown(elseType):
		c.deferred = append(c.deferred, n)
		return thenType, nil
	}
	if !thenType.Equal(elseType) {
		return nil, errors.WithStack(&typerr.BranchTypeMismatch{Then: thenType, Else: elseType})
	}
	return thenType, nil
}

func paramTypes(params []*ir.Param) ([]ir.Type, error) {
	types := make([]ir.Type, len(params))
	for i, param := range params {
		if param.Typ == nil {
			return nil, typerr.Internalf("parameter %s has no declared type", param.Name)
		}
		types[i] = param.Typ
	}
	return types, nil
}

func bindParams(sc *scope, params []*ir.Param) *scope {
	for _, param := range params {
		sc = sc.bind(param.Name, param.Typ)
	}
	return sc
}

func (c *Checked) checkFuncLit(sc *scope, n *ir.FuncLit) (ir.Type, error) {
	types, err := paramTypes(n.Params)
	if err != nil {
		return nil, err
	}
	bodyType, err := c.check(bindParams(sc, n.Params), n.Body)
	if err != nil {
		return nil, err
	}
	if err := c.requireResolved(bodyType); err != nil {
		return nil, err
	}
	return &ir.FuncType{Params: types, Result: bodyType}, nil
}

// declare stores the tentative signature of a declaration in the
// environment: its declared parameter types, and its declared return type
// or nil while the return type is inferred from the body.
func (c *Checked) declare(n *ir.GlobalDecl) (*ir.FuncType, error) {
	types, err := paramTypes(n.Params)
	if err != nil {
		return nil, err
	}
	ftype := &ir.FuncType{Params: types, Result: n.Result}
	c.env.Define(n.Name, ftype)
	return ftype, nil
}

// checkDecl checks the body of a declaration which tentative signature
// has already been stored in the environment, and finalises the
// signature with the inferred return type.
func (c *Checked) checkDecl(n *ir.GlobalDecl, ftype *ir.FuncType) (ir.Type, error) {
	bodyType, err := c.check(bindParams(nil, n.Params), n.Body)
	if err != nil {
		return nil, err
	}
	if ir.IsUnknown(bodyType) {
		return nil, errors.WithStack(&typerr.UnresolvedRecursiveReturn{Name: n.Name})
	}
	if n.Result != nil && !n.Result.Equal(bodyType) {
		return nil, errors.WithStack(&typerr.ReturnTypeMismatch{Name: n.Name, Declared: n.Result, Inferred: bodyType})
	}
	if ftype.Result == nil {
		ftype.Result = bodyType
	}
	if err := c.resolve(ftype); err != nil {
		return nil, err
	}
	return ftype, nil
}

// resolve substitutes the return type of a finalised signature for the
// proxy annotation of every node that waited on it, then verifies again
// the conditionals typed from a single branch while the other branch
// was waiting.
func (c *Checked) resolve(ftype *ir.FuncType) error {
	for node, typ := range c.types {
		if sig, ok := ir.UnknownSignature(typ); ok && sig == ftype {
			c.types[node] = ftype.Result
		}
	}
	kept := c.deferred[:0]
	for _, cond := range c.deferred {
		thenType, elseType := c.types[cond.Then], c.types[cond.Else]
		if ir.IsUnknown(thenType) || ir.IsUnknown(elseType) {
			kept = append(kept, cond)
			continue
		}
		if !thenType.Equal(elseType) {
			return errors.WithStack(&typerr.BranchTypeMismatch{Then: thenType, Else: elseType})
		}
	}
	c.deferred = kept
	return nil
}

func (c *Checked) checkGlobalDecl(n *ir.GlobalDecl) (ir.Type, error) {
	ftype, err := c.declare(n)
	if err != nil {
		return nil, err
	}
	return c.checkDecl(n, ftype)
}

func (c *Checked) checkDeclGroup(n *ir.DeclGroup) (ir.Type, error) {
	if len(n.Decls) == 0 {
		return nil, typerr.Internalf("empty declaration group")
	}
	// All signatures are stored before any body is checked so that the
	// bodies can reference any declaration of the group.
	ftypes := make([]*ir.FuncType, len(n.Decls))
	for i, decl := range n.Decls {
		ftype, err := c.declare(decl)
		if err != nil {
			return nil, err
		}
		ftypes[i] = ftype
	}
	var typ ir.Type
	for i, decl := range n.Decls {
		declType, err := c.checkDecl(decl, ftypes[i])
		if err != nil {
			return nil, err
		}
		c.types[decl] = declType
		typ = declType
	}
	return typ, nil
}

// calleeName returns the name rendering a call target in errors.
func calleeName(callee ir.Expr) string {
	switch calleeT := callee.(type) {
	case *ir.GlobalRef:
		return calleeT.Name
	case *ir.VarRef:
		return calleeT.Name
	}
	return "function"
}

func (c *Checked) checkCall(sc *scope, n *ir.Call) (ir.Type, error) {
	calleeType, err := c.check(sc, n.Callee)
	if err != nil {
		return nil, err
	}
	if err := c.requireResolved(calleeType); err != nil {
		return nil, err
	}
	ftype, ok := calleeType.(*ir.FuncType)
	if !ok {
		return nil, errors.WithStack(&typerr.NotCallable{Got: calleeType})
	}
	name := calleeName(n.Callee)
	if len(n.Args) != len(ftype.Params) {
		return nil, errors.WithStack(&typerr.ArityMismatch{Callee: name, Want: len(ftype.Params), Got: len(n.Args)})
	}
	for i, arg := range n.Args {
		argType, err := c.check(sc, arg)
		if err != nil {
			return nil, err
		}
		if err := c.requireResolved(argType); err != nil {
			return nil, err
		}
		if !argType.Equal(ftype.Params[i]) {
			return nil, errors.WithStack(&typerr.ArgumentTypeMismatch{Callee: name, Position: i, Want: ftype.Params[i], Got: argType})
		}
	}
	if ftype.Pending() {
		// Recursive or forward call to a declaration which return type is
		// still being inferred: the annotation resolves when the
		// declaration is finalised.
		return ir.UnknownType(ftype), nil
	}
	return ftype.Result, nil
}

func (c *Checked) checkPrimCall(sc *scope, n *ir.PrimCall) (ir.Type, error) {
	argTypes := make([]ir.Type, len(n.Args))
	for i, arg := range n.Args {
		argType, err := c.check(sc, arg)
		if err != nil {
			return nil, err
		}
		if err := c.requireResolved(argType); err != nil {
			return nil, err
		}
		argTypes[i] = argType
	}
	return ops.TypeRule(n.Op, argTypes, n.Axis)
}

// requireResolved fails when a type is still the proxy of a call to a
// declaration being checked: the construct needing it cannot be typed
// before the declaration producing it is finalised.
func (c *Checked) requireResolved(typ ir.Type) error {
	sig, ok := ir.UnknownSignature(typ)
	if !ok {
		return nil
	}
	return errors.WithStack(&typerr.UnresolvedRecursiveReturn{Name: c.signatureName(sig)})
}

// signatureName returns the name a tentative signature is defined under
// in the environment.
func (c *Checked) signatureName(sig *ir.FuncType) string {
	for name := range c.env.GlobalNames() {
		if ftype, ok := c.env.Lookup(name); ok && ftype == sig {
			return name
		}
	}
	return ""
}
