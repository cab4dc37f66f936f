// Copyright 2026 The Outlinekit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package forest implements an ordered-forest cursor: a positioned view
// into an ordered sequence of multi-way trees that supports pre-order
// search, ancestry queries, lossless flattening, and topology-preserving
// relocation of a focused subtree. It is the engine behind
// drag-to-reorder outline UIs, where "move this row one step up" must be
// translated into the correct structural edit of the underlying trees.
//
// All values are immutable: every operation returns a new Forest or
// Cursor and leaves its inputs untouched. Nodes are addressed by a
// caller-supplied key projection rather than by structural position.
package forest

// A Tree is a payload plus an ordered sequence of child trees. Children
// are owned by value, so a tree can never contain itself.
type Tree[V any] struct {
	Value    V
	Children []Tree[V]
}

// A Forest is an ordered sequence of root trees. Root order is the
// canonical display order.
type Forest[V any] []Tree[V]

// MakeTree constructs a tree from a value and its children in order.
func MakeTree[V any](v V, children ...Tree[V]) Tree[V] {
	return Tree[V]{Value: v, Children: children}
}

// Walk visits every value in pre-order (each root, then its subtree,
// left to right), calling visit with the value and its depth (roots are
// depth 0). Returning false from visit stops the walk.
func (f Forest[V]) Walk(visit func(v V, depth int) bool) {
	walkForest(f, 0, visit)
}

func walkForest[V any](f Forest[V], depth int, visit func(V, int) bool) bool {
	for i := range f {
		if !visit(f[i].Value, depth) {
			return false
		}
		if !walkForest(f[i].Children, depth+1, visit) {
			return false
		}
	}
	return true
}

// Find returns the first value in pre-order satisfying pred.
func (f Forest[V]) Find(pred func(V) bool) (found V, ok bool) {
	f.Walk(func(v V, _ int) bool {
		if pred(v) {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// Len returns the total number of nodes in the forest.
func (f Forest[V]) Len() int {
	n := 0
	f.Walk(func(V, int) bool {
		n++
		return true
	})
	return n
}

// Values returns every value in pre-order.
func (f Forest[V]) Values() []V {
	out := make([]V, 0, f.Len())
	f.Walk(func(v V, _ int) bool {
		out = append(out, v)
		return true
	})
	return out
}

// A Row is one line of the pre-order flattening of a forest, the shape a
// UI renders top to bottom with Depth as indentation.
type Row[V any] struct {
	Depth int
	Value V
}

// Rows returns the pre-order flattening of the forest.
func (f Forest[V]) Rows() []Row[V] {
	out := make([]Row[V], 0, f.Len())
	f.Walk(func(v V, depth int) bool {
		out = append(out, Row[V]{Depth: depth, Value: v})
		return true
	})
	return out
}

// Equal reports whether two forests have the same shape with the same
// values in the same order.
func Equal[V comparable](a, b Forest[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Value != b[i].Value {
			return false
		}
		if !Equal(a[i].Children, b[i].Children) {
			return false
		}
	}
	return true
}
