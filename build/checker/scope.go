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

import "github.com/relay-lang/relay/build/ir"

// scope is the chain of local bindings (let bindings and function
// parameters) visible while checking an expression. A nil scope is the
// empty scope. Extending a scope never mutates its parent, so sibling
// subexpressions cannot see each other's bindings.
type scope struct {
	parent *scope
	name   string
	typ    ir.Type
}

// bind returns a scope extending s with one binding.
func (s *scope) bind(name string, typ ir.Type) *scope {
	return &scope{parent: s, name: name, typ: typ}
}

// lookup returns the type of the innermost binding of name.
func (s *scope) lookup(name string) (ir.Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.typ, true
		}
	}
	return nil, false
}
