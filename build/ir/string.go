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
	"fmt"
	"strings"
)

func (n *Const) String() string {
	if n.Value == nil && n.Declared != nil {
		return n.Declared.String()
	}
	return fmt.Sprintf("%v", n.Value)
}

func (n *VarRef) String() string { return n.Name }

// String renders the reference with the @ prefix marking global names.
func (n *GlobalRef) String() string { return "@" + n.Name }

func (n *Let) String() string {
	return fmt.Sprintf("let %s = %s; %s", n.Name, n.Bound, n.Body)
}

func (n *If) String() string {
	return fmt.Sprintf("if %s { %s } else { %s }", n.Cond, n.Then, n.Else)
}

func (n *Param) String() string {
	return fmt.Sprintf("%s %s", n.Name, n.Typ)
}

func paramsString(params []*Param) string {
	strs := make([]string, len(params))
	for i, param := range params {
		strs[i] = param.String()
	}
	return strings.Join(strs, ", ")
}

func (n *FuncLit) String() string {
	return fmt.Sprintf("fn(%s) { %s }", paramsString(n.Params), n.Body)
}

func (n *GlobalDecl) String() string {
	result := ""
	if n.Result != nil {
		result = " " + n.Result.String()
	}
	return fmt.Sprintf("def %s(%s)%s { %s }", n.Name, paramsString(n.Params), result, n.Body)
}

func (n *DeclGroup) String() string {
	strs := make([]string, len(n.Decls))
	for i, decl := range n.Decls {
		strs[i] = decl.String()
	}
	return strings.Join(strs, "\n")
}

func argsString(args []Expr) string {
	strs := make([]string, len(args))
	for i, arg := range args {
		strs[i] = arg.String()
	}
	return strings.Join(strs, ", ")
}

func (n *Call) String() string {
	return fmt.Sprintf("%s(%s)", n.Callee, argsString(n.Args))
}

func (n *PrimCall) String() string {
	return fmt.Sprintf("%s(%s)", n.Op, argsString(n.Args))
}
