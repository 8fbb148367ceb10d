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
	"golang.org/x/exp/maps"

	"github.com/relay-lang/relay/build/ir"
)

// Checked is the result of a checking session: the type of every
// subexpression of the root, keyed by node identity, and the environment
// updated with the declarations checked during the session.
//
// Collaborators reading an already-checked tree (evaluator,
// pretty-printer) query it through TypeOf and Env.
type Checked struct {
	env   *Env
	types map[ir.Expr]ir.Type

	// deferred lists the conditionals typed from a single branch while
	// the other branch waited on a signature still being inferred. They
	// are verified again as signatures finalise.
	deferred []*ir.If
}

// TypeOf returns the checked type of a node of the tree.
// Returns false for nodes that do not belong to the checked tree.
func (c *Checked) TypeOf(node ir.Expr) (ir.Type, bool) {
	typ, ok := c.types[node]
	return typ, ok
}

// Env returns the environment of the session, including the declarations
// registered while checking.
func (c *Checked) Env() *Env {
	return c.env
}

// Nodes returns all the annotated nodes of the tree, in no particular
// order.
func (c *Checked) Nodes() []ir.Expr {
	return maps.Keys(c.types)
}
