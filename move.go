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

package forest

// The relocation primitives detach the focused subtree (value plus all
// descendants, as a unit) and reattach it at a position named by a
// target key, returning a cursor still focused on the moved value. They
// fail with ErrTargetNotFound if the key resolves to no node, and with
// ErrTargetInMovedSubtree if it resolves into the moving subtree, which
// would create a cycle.

// MoveToAfter reattaches the focused subtree as the immediate next
// sibling of the target node, at the target's nesting level.
func MoveToAfter[V any, K comparable](c Cursor[V], target K, keyOf func(V) K) (Cursor[V], error) {
	sub, tc, err := prepareMove(c, target, keyOf)
	if err != nil {
		return Cursor[V]{}, err
	}
	return Cursor[V]{
		focus: sub,
		left:  pushTree(tc.left, tc.focus),
		right: tc.right,
		path:  tc.path,
	}, nil
}

// MoveToFirstChildOf reattaches the focused subtree as the target's new
// first child; the target's existing children shift one position right.
func MoveToFirstChildOf[V any, K comparable](c Cursor[V], target K, keyOf func(V) K) (Cursor[V], error) {
	sub, tc, err := prepareMove(c, target, keyOf)
	if err != nil {
		return Cursor[V]{}, err
	}
	return Cursor[V]{
		focus: sub,
		right: tc.focus.Children,
		path:  pushCrumb(tc.path, crumb[V]{value: tc.focus.Value, left: tc.left, right: tc.right}),
	}, nil
}

// MoveToLastChildOf reattaches the focused subtree as the target's new
// last child; the target's existing children keep their order before it.
func MoveToLastChildOf[V any, K comparable](c Cursor[V], target K, keyOf func(V) K) (Cursor[V], error) {
	sub, tc, err := prepareMove(c, target, keyOf)
	if err != nil {
		return Cursor[V]{}, err
	}
	return Cursor[V]{
		focus: sub,
		left:  tc.focus.Children,
		path:  pushCrumb(tc.path, crumb[V]{value: tc.focus.Value, left: tc.left, right: tc.right}),
	}, nil
}

// MoveToFirstRoot reattaches the focused subtree as the forest's new
// first root, all other roots shifting right. It always succeeds and is
// a structural no-op when the focus already is the first root.
func (c Cursor[V]) MoveToFirstRoot() Cursor[V] {
	sub, rest := c.detach()
	return Cursor[V]{focus: sub, right: rest}
}

func prepareMove[V any, K comparable](c Cursor[V], target K, keyOf func(V) K) (Tree[V], Cursor[V], error) {
	if containsKey(c.focus, target, keyOf) {
		return Tree[V]{}, Cursor[V]{}, ErrTargetInMovedSubtree
	}
	sub, rest := c.detach()
	tc, ok := FindByKey(rest, target, keyOf)
	if !ok {
		return Tree[V]{}, Cursor[V]{}, ErrTargetNotFound
	}
	return sub, tc, nil
}

// detach removes the focused subtree, returning it together with the
// forest that remains. The remainder is rebuilt by folding the crumbs
// outward with the focus omitted.
func (c Cursor[V]) detach() (Tree[V], Forest[V]) {
	level := make(Forest[V], 0, len(c.left)+len(c.right))
	level = append(level, c.left...)
	level = append(level, c.right...)
	for i := len(c.path) - 1; i >= 0; i-- {
		fr := c.path[i]
		node := Tree[V]{Value: fr.value, Children: level}
		level = make(Forest[V], 0, len(fr.left)+1+len(fr.right))
		level = append(level, fr.left...)
		level = append(level, node)
		level = append(level, fr.right...)
	}
	return c.focus, level
}

func containsKey[V any, K comparable](t Tree[V], target K, keyOf func(V) K) bool {
	if keyOf(t.Value) == target {
		return true
	}
	for i := range t.Children {
		if containsKey(t.Children[i], target, keyOf) {
			return true
		}
	}
	return false
}
