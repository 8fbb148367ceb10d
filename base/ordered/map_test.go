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

package ordered_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/relay-lang/relay/base/ordered"
)

func keysOf(m *ordered.Map[string, int]) []string {
	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func TestMapKeepsInsertionOrder(t *testing.T) {
	m := ordered.NewMap[string, int]()
	m.Store("c", 1)
	m.Store("a", 2)
	m.Store("b", 3)
	if diff := cmp.Diff([]string{"c", "a", "b"}, keysOf(m)); diff != "" {
		t.Errorf("unexpected key order:\n%s", diff)
	}
}

func TestMapOverwriteKeepsPosition(t *testing.T) {
	m := ordered.NewMap[string, int]()
	m.Store("a", 1)
	m.Store("b", 2)
	m.Store("a", 3)
	if diff := cmp.Diff([]string{"a", "b"}, keysOf(m)); diff != "" {
		t.Errorf("unexpected key order:\n%s", diff)
	}
	got, ok := m.Load("a")
	if !ok || got != 3 {
		t.Errorf("Load(a) = %d,%v but want 3,true", got, ok)
	}
	if m.Size() != 2 {
		t.Errorf("Size() = %d but want 2", m.Size())
	}
}

func TestMapClone(t *testing.T) {
	m := ordered.NewMap[string, int]()
	m.Store("a", 1)
	clone := m.Clone()
	clone.Store("b", 2)
	if m.Size() != 1 {
		t.Errorf("source map has %d elements after cloning but want 1", m.Size())
	}
	if diff := cmp.Diff([]string{"a", "b"}, keysOf(clone)); diff != "" {
		t.Errorf("unexpected clone key order:\n%s", diff)
	}
}

func TestMapIter(t *testing.T) {
	m := ordered.NewMap[string, int]()
	m.Store("a", 1)
	m.Store("b", 2)
	got := map[string]int{}
	for k, v := range m.Iter() {
		got[k] = v
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, got); diff != "" {
		t.Errorf("unexpected elements:\n%s", diff)
	}
}
