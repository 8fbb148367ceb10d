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

package ir_test

import (
	"fmt"
	"testing"

	"github.com/gx-org/backend/dtype"
	"github.com/relay-lang/relay/build/ir"
	"github.com/relay-lang/relay/build/ir/irhelper"
	"github.com/relay-lang/relay/build/ir/irkind"
)

func TestTypeEqual(t *testing.T) {
	tests := []struct {
		x, y ir.Type
		want bool
	}{
		{x: ir.Float32Type(), y: ir.Float32Type(), want: true},
		{x: ir.Float32Type(), y: ir.Float64Type(), want: false},
		{x: ir.BoolType(), y: ir.BoolType(), want: true},
		{
			x:    irhelper.TensorType(irkind.Float32, 10, 4),
			y:    irhelper.TensorType(irkind.Float32, 10, 4),
			want: true,
		},
		{
			// Tensors of different ranks are never equal, even when one
			// shape is a prefix of the other.
			x:    irhelper.TensorType(irkind.Float32, 10, 4),
			y:    irhelper.TensorType(irkind.Float32, 10, 4, 1),
			want: false,
		},
		{
			x:    irhelper.TensorType(irkind.Float32, 10, 4),
			y:    irhelper.TensorType(irkind.Float64, 10, 4),
			want: false,
		},
		{
			// A rank-0 tensor is not the scalar of its element kind.
			x:    irhelper.TensorType(irkind.Float32),
			y:    ir.Float32Type(),
			want: false,
		},
		{
			x:    irhelper.FuncType(ir.Float32Type(), ir.Int32Type(), ir.Float32Type()),
			y:    irhelper.FuncType(ir.Float32Type(), ir.Int32Type(), ir.Float32Type()),
			want: true,
		},
		{
			x:    irhelper.FuncType(ir.Float32Type(), ir.Int32Type()),
			y:    irhelper.FuncType(ir.Float64Type(), ir.Int32Type()),
			want: false,
		},
		{
			x:    irhelper.FuncType(ir.Float32Type()),
			y:    irhelper.FuncType(ir.Float32Type(), ir.Int32Type()),
			want: false,
		},
		{
			x:    irhelper.FuncType(ir.Float32Type(), ir.Int32Type()),
			y:    ir.Float32Type(),
			want: false,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			if got := test.x.Equal(test.y); got != test.want {
				t.Errorf("%s.Equal(%s) = %v but want %v", test.x, test.y, got, test.want)
			}
			// Structural equality is symmetric.
			if got := test.y.Equal(test.x); got != test.want {
				t.Errorf("%s.Equal(%s) = %v but want %v", test.y, test.x, got, test.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want string
	}{
		{typ: ir.Float64Type(), want: "float64"},
		{typ: irhelper.TensorType(irkind.Float32, 5, 10, 4), want: "[5 10 4]float32"},
		{typ: irhelper.TensorType(irkind.Bool), want: "[]bool"},
		{
			typ:  irhelper.FuncType(ir.Float32Type(), ir.Int32Type(), ir.Float32Type()),
			want: "func(int32, float32) float32",
		},
		{
			typ:  &ir.FuncType{Params: []ir.Type{ir.Int32Type()}},
			want: "func(int32) unknown",
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			if got := test.typ.String(); got != test.want {
				t.Errorf("unexpected rendering: got %q but want %q", got, test.want)
			}
		})
	}
}

func TestIsTensorOf(t *testing.T) {
	tensor := irhelper.TensorType(irkind.Float32, 3, 2)
	if !ir.IsTensorOf(tensor, irkind.Float32) {
		t.Errorf("IsTensorOf(%s, float32) = false but want true", tensor)
	}
	if ir.IsTensorOf(tensor, irkind.Float64) {
		t.Errorf("IsTensorOf(%s, float64) = true but want false", tensor)
	}
	if ir.IsTensorOf(ir.Float32Type(), irkind.Float32) {
		t.Errorf("IsTensorOf(float32 scalar, float32) = true but want false")
	}
}

func TestBackendShape(t *testing.T) {
	tensor := irhelper.TensorType(irkind.Float32, 5, 10, 4)
	sh := tensor.BackendShape()
	if sh.DType != dtype.Float32 {
		t.Errorf("unexpected data type: got %v but want %v", sh.DType, dtype.Float32)
	}
	if got := sh.Size(); got != 200 {
		t.Errorf("unexpected element count: got %d but want 200", got)
	}
	if got := tensor.NumElements(); got != 200 {
		t.Errorf("NumElements() = %d but want 200", got)
	}
	// The shape is a copy: mutating it does not affect the type.
	sh.AxisLengths[0] = 1
	if tensor.Dims[0] != 5 {
		t.Errorf("tensor type mutated through its backend shape")
	}
}

func TestIntrinsicType(t *testing.T) {
	tests := []struct {
		value any
		want  ir.Type
	}{
		{value: true, want: ir.BoolType()},
		{value: int32(1), want: ir.Int32Type()},
		{value: int64(1), want: ir.Int64Type()},
		{value: float32(1), want: ir.Float32Type()},
		{value: 1.0, want: ir.Float64Type()},
		{value: []float32{1, 2, 3}, want: irhelper.TensorType(irkind.Float32, 3)},
		{value: []int64{}, want: irhelper.TensorType(irkind.Int64, 0)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			got, ok := ir.IntrinsicType(test.value)
			if !ok {
				t.Fatalf("IntrinsicType(%v) not supported", test.value)
			}
			if !got.Equal(test.want) {
				t.Errorf("IntrinsicType(%v) = %s but want %s", test.value, got, test.want)
			}
		})
	}
	if _, ok := ir.IntrinsicType("not a tensor"); ok {
		t.Errorf("IntrinsicType accepted a string value")
	}
}

func TestExprString(t *testing.T) {
	fn := irhelper.Decl("f",
		irhelper.Let("t1", irhelper.Prim(ir.OpLog, irhelper.Var("x")), irhelper.Var("t1")),
		irhelper.Param("x", ir.Float32Type()))
	const want = "def f(x float32) { let t1 = log(x); t1 }"
	if got := fn.String(); got != want {
		t.Errorf("unexpected rendering:\ngot  %q\nwant %q", got, want)
	}
	call := irhelper.Call(irhelper.Global("f"), irhelper.Const(float32(2)))
	if got, want := call.String(), "@f(2)"; got != want {
		t.Errorf("unexpected rendering: got %q but want %q", got, want)
	}
}
