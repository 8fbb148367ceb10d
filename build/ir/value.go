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

import "github.com/relay-lang/relay/build/ir/irkind"

// IntrinsicType returns the type of a literal value carried by a Const
// node: the scalar type of a Go scalar, or a rank-1 tensor type for a
// flat slice of elements. Returns false for unsupported values.
func IntrinsicType(value any) (Type, bool) {
	switch val := value.(type) {
	case bool:
		return boolT, true
	case int32:
		return int32T, true
	case int64:
		return int64T, true
	case uint32:
		return uint32T, true
	case uint64:
		return uint64T, true
	case float32:
		return float32T, true
	case float64:
		return float64T, true
	case []bool:
		return NewTensorType(irkind.Bool, len(val)), true
	case []int32:
		return NewTensorType(irkind.Int32, len(val)), true
	case []int64:
		return NewTensorType(irkind.Int64, len(val)), true
	case []float32:
		return NewTensorType(irkind.Float32, len(val)), true
	case []float64:
		return NewTensorType(irkind.Float64, len(val)), true
	}
	return nil, false
}
