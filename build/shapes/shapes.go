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

// Package shapes computes the result shapes of elementwise and
// concatenation operators. A shape is the length of every axis of a
// tensor, outermost axis first. All functions are pure: inputs are never
// mutated and results are always fresh slices.
package shapes

import "fmt"

// IncompatibleError reports two axis lengths that cannot be
// broadcast together.
type IncompatibleError struct {
	// Axis index in the aligned shapes, counted from the left.
	Axis int
	// X and Y are the axis lengths in each input shape.
	X, Y int
}

var _ error = (*IncompatibleError)(nil)

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("cannot broadcast axis %d with sizes %d and %d: equal sizes or a size of 1 required", e.Axis, e.X, e.Y)
}

// ConcatMismatchError reports an axis which lengths must be equal
// for a concatenation but are not.
type ConcatMismatchError struct {
	// Axis index of the mismatched axis.
	Axis int
	// X and Y are the axis lengths in each input shape.
	X, Y int
}

var _ error = (*ConcatMismatchError)(nil)

func (e *ConcatMismatchError) Error() string {
	return fmt.Sprintf("cannot concatenate: axis %d has sizes %d and %d: all axes but the concatenation axis must match", e.Axis, e.X, e.Y)
}

// RankMismatchError reports two shapes which ranks must be equal but are not.
type RankMismatchError struct {
	X, Y int
}

var _ error = (*RankMismatchError)(nil)

func (e *RankMismatchError) Error() string {
	return fmt.Sprintf("expected tensors of the same rank: got ranks %d and %d", e.X, e.Y)
}

// AxisOutOfBoundsError reports an axis argument outside the rank
// of the operand shapes.
type AxisOutOfBoundsError struct {
	Axis int
	Rank int
}

var _ error = (*AxisOutOfBoundsError)(nil)

func (e *AxisOutOfBoundsError) Error() string {
	return fmt.Sprintf("axis %d is out of bounds for tensor of rank %d", e.Axis, e.Rank)
}

// Broadcast aligns two shapes on their trailing axes and returns the shape
// of the result of an elementwise binary operator applied to both.
//
// The shorter shape is padded with axes of length 1 on its leading side
// until both shapes have the same rank. Each pair of aligned axis lengths
// then broadcasts to the larger of the two if they are equal or if either
// is 1. Any other pair fails with IncompatibleError.
func Broadcast(x, y []int) ([]int, error) {
	rank := max(len(x), len(y))
	out := make([]int, rank)
	for i := rank - 1; i >= 0; i-- {
		dimX, dimY := 1, 1
		if j := i - (rank - len(x)); j >= 0 {
			dimX = x[j]
		}
		if j := i - (rank - len(y)); j >= 0 {
			dimY = y[j]
		}
		switch {
		case dimX == dimY:
			out[i] = dimX
		case dimX == 1:
			out[i] = dimY
		case dimY == 1:
			out[i] = dimX
		default:
			return nil, &IncompatibleError{Axis: i, X: dimX, Y: dimY}
		}
	}
	return out, nil
}

// Concat returns the shape of the concatenation of two tensors along an
// axis. Both shapes must have the same rank and agree on every axis but
// the concatenation axis; the result is the input shape with the
// concatenation axis replaced by the sum of both input lengths.
func Concat(x, y []int, axis int) ([]int, error) {
	if len(x) != len(y) {
		return nil, &RankMismatchError{X: len(x), Y: len(y)}
	}
	if axis < 0 || axis >= len(x) {
		return nil, &AxisOutOfBoundsError{Axis: axis, Rank: len(x)}
	}
	out := make([]int, len(x))
	for i := range x {
		if i == axis {
			out[i] = x[i] + y[i]
			continue
		}
		if x[i] != y[i] {
			return nil, &ConcatMismatchError{Axis: i, X: x[i], Y: y[i]}
		}
		out[i] = x[i]
	}
	return out, nil
}
