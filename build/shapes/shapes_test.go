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

package shapes_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/relay-lang/relay/build/shapes"
)

func TestBroadcast(t *testing.T) {
	tests := []struct {
		x, y []int
		want []int
	}{
		{x: []int{5, 5, 5}, y: []int{5, 5, 5}, want: []int{5, 5, 5}},
		{x: []int{10, 4}, y: []int{5, 10, 1}, want: []int{5, 10, 4}},
		{x: []int{}, y: []int{3, 2}, want: []int{3, 2}},
		{x: nil, y: nil, want: []int{}},
		{x: []int{1}, y: []int{7}, want: []int{7}},
		{x: []int{8, 1, 6, 1}, y: []int{7, 1, 5}, want: []int{8, 7, 6, 5}},
		{x: []int{256, 256, 3}, y: []int{3}, want: []int{256, 256, 3}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			got, err := shapes.Broadcast(test.x, test.y)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Broadcast(%v, %v): unexpected shape:\n%s", test.x, test.y, diff)
			}
			// Broadcasting is commutative.
			swapped, err := shapes.Broadcast(test.y, test.x)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(got, swapped); diff != "" {
				t.Errorf("Broadcast(%v, %v) is not commutative:\n%s", test.x, test.y, diff)
			}
		})
	}
}

func TestBroadcastIdentity(t *testing.T) {
	for _, sh := range [][]int{{}, {1}, {4}, {2, 3}, {5, 10, 4}} {
		got, err := shapes.Broadcast(sh, sh)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(sh, got); diff != "" {
			t.Errorf("Broadcast(%v, %v): unexpected shape:\n%s", sh, sh, diff)
		}
	}
}

func TestBroadcastIncompatible(t *testing.T) {
	tests := []struct {
		x, y     []int
		wantAxis int
	}{
		{x: []int{3}, y: []int{4}, wantAxis: 0},
		{x: []int{2, 3}, y: []int{2, 4}, wantAxis: 1},
		{x: []int{5, 2, 3}, y: []int{4, 3}, wantAxis: 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			_, err := shapes.Broadcast(test.x, test.y)
			incompatible := &shapes.IncompatibleError{}
			if !errors.As(err, &incompatible) {
				t.Fatalf("Broadcast(%v, %v) returned %v but want an IncompatibleError", test.x, test.y, err)
			}
			if incompatible.Axis != test.wantAxis {
				t.Errorf("unexpected axis: got %d but want %d", incompatible.Axis, test.wantAxis)
			}
		})
	}
}

func TestBroadcastDoesNotMutateInputs(t *testing.T) {
	x := []int{10, 4}
	y := []int{5, 10, 1}
	if _, err := shapes.Broadcast(x, y); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{10, 4}, x); diff != "" {
		t.Errorf("first input mutated:\n%s", diff)
	}
	if diff := cmp.Diff([]int{5, 10, 1}, y); diff != "" {
		t.Errorf("second input mutated:\n%s", diff)
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		x, y []int
		axis int
		want []int
	}{
		{x: []int{3, 2}, y: []int{2, 2}, axis: 0, want: []int{5, 2}},
		{x: []int{3, 2}, y: []int{3, 4}, axis: 1, want: []int{3, 6}},
		{x: []int{7}, y: []int{2}, axis: 0, want: []int{9}},
		{x: []int{2, 3, 4}, y: []int{2, 5, 4}, axis: 1, want: []int{2, 8, 4}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			got, err := shapes.Concat(test.x, test.y, test.axis)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Concat(%v, %v, %d): unexpected shape:\n%s", test.x, test.y, test.axis, diff)
			}
			if got[test.axis] != test.x[test.axis]+test.y[test.axis] {
				t.Errorf("concatenation axis %d has length %d but want %d", test.axis, got[test.axis], test.x[test.axis]+test.y[test.axis])
			}
		})
	}
}

func TestConcatErrors(t *testing.T) {
	tests := []struct {
		x, y []int
		axis int
		want error
	}{
		{x: []int{3, 2}, y: []int{2, 3}, axis: 0, want: &shapes.ConcatMismatchError{}},
		{x: []int{3, 2}, y: []int{2}, axis: 0, want: &shapes.RankMismatchError{}},
		{x: []int{3, 2}, y: []int{2, 2}, axis: 2, want: &shapes.AxisOutOfBoundsError{}},
		{x: []int{3, 2}, y: []int{2, 2}, axis: -1, want: &shapes.AxisOutOfBoundsError{}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			_, err := shapes.Concat(test.x, test.y, test.axis)
			if err == nil {
				t.Fatalf("Concat(%v, %v, %d) returned no error but want %T", test.x, test.y, test.axis, test.want)
			}
			switch want := test.want.(type) {
			case *shapes.ConcatMismatchError:
				if !errors.As(err, &want) {
					t.Errorf("got %T but want %T", err, test.want)
				}
				if want.Axis != 1 {
					t.Errorf("unexpected mismatched axis: got %d but want 1", want.Axis)
				}
			case *shapes.RankMismatchError:
				if !errors.As(err, &want) {
					t.Errorf("got %T but want %T", err, test.want)
				}
			case *shapes.AxisOutOfBoundsError:
				if !errors.As(err, &want) {
					t.Errorf("got %T but want %T", err, test.want)
				}
			}
		})
	}
}
