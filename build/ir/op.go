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

// Op identifies a primitive operator. The front end resolves operator
// names to Op values when it builds the tree: the checker never
// dispatches on operator names.
type Op int

// Primitive operators.
const (
	OpInvalid Op = iota
	OpLog
	OpExp
	OpNeg
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpEqual
	OpNotEqual
	OpConcat
)

// String returns the name of the operator.
func (op Op) String() string {
	switch op {
	case OpLog:
		return "log"
	case OpExp:
		return "exp"
	case OpNeg:
		return "negative"
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpEqual:
		return "equal"
	case OpNotEqual:
		return "not_equal"
	case OpConcat:
		return "concat"
	}
	return "invalid"
}
