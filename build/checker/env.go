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

package checker

import (
	"github.com/relay-lang/relay/base/ordered"
	"github.com/relay-lang/relay/build/ir"
)

// Env is the global declaration environment: the signatures of the
// top-level functions visible during a checking session, in declaration
// order.
//
// The environment is owned by a single session at a time. The checker
// stores the signature of a declaration before checking its body, so
// that recursive and forward calls resolve against the declared
// parameter types.
type Env struct {
	globals *ordered.Map[string, *ir.FuncType]
}

// NewEnv returns a new empty environment.
func NewEnv() *Env {
	return &Env{globals: ordered.NewMap[string, *ir.FuncType]()}
}

// Define stores the signature of a global function, overwriting any
// previous signature for the same name.
func (e *Env) Define(name string, ftype *ir.FuncType) {
	e.globals.Store(name, ftype)
}

// Lookup returns the signature of a global function.
func (e *Env) Lookup(name string) (*ir.FuncType, bool) {
	return e.globals.Load(name)
}

// GlobalNames returns an iterator over the defined global names in
// declaration order.
func (e *Env) GlobalNames() func(func(string) bool) {
	return e.globals.Keys()
}

// Size returns the number of defined globals.
func (e *Env) Size() int {
	return e.globals.Size()
}

// Clone returns an independent environment with the same definitions,
// for example to run concurrent sessions sharing a prelude.
func (e *Env) Clone() *Env {
	return &Env{globals: e.globals.Clone()}
}
