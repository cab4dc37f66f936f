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

// PlacementKind names the structural relocation that realizes a one-row
// move of the focused subtree.
type PlacementKind uint8

const (
	// FirstRoot places the moved subtree as the forest's new first root.
	FirstRoot PlacementKind = iota
	// FirstChildOf places the moved subtree as the anchor's new first child.
	FirstChildOf
	// After places the moved subtree as the anchor's immediate next sibling.
	After
)

// A Placement is the answer of the GoUp/GoDown classifiers: which
// relocation, against which anchor, moves the focused subtree exactly
// one visual row. Anchor is meaningful for FirstChildOf and After.
type Placement[V any] struct {
	Kind   PlacementKind
	Anchor V
}

// GoUp decides which relocation moves the focused subtree exactly one
// row up in the pre-order flattening of the whole forest. It performs no
// relocation itself. Absence means the focus already occupies the first
// row.
//
// The answer is determined by local structure alone:
//
//   - The focus has a previous sibling S (at the root level, a previous
//     root): the row above is S's last visible descendant D, and the
//     focus indents to become D's first child.
//   - The focus is a first child: the row above is the parent. With a
//     grandparent G the focus outdents to G's first child, displacing
//     the parent to second position. A root parent with a preceding root
//     R sends the focus out of the tree, becoming a root right after R;
//     if the parent is the very first root the focus becomes the new
//     first root.
func (c Cursor[V]) GoUp() (Placement[V], bool) {
	if n := len(c.left); n > 0 {
		d := lastDescendant(c.left[n-1])
		return Placement[V]{Kind: FirstChildOf, Anchor: d.Value}, true
	}
	switch n := len(c.path); n {
	case 0:
		// First root: no row above.
		return Placement[V]{}, false
	case 1:
		// Parent is a root. Rootness is exactly two levels, so this
		// never escalates further.
		if left := c.path[0].left; len(left) > 0 {
			return Placement[V]{Kind: After, Anchor: left[len(left)-1].Value}, true
		}
		return Placement[V]{Kind: FirstRoot}, true
	default:
		return Placement[V]{Kind: FirstChildOf, Anchor: c.path[n-2].value}, true
	}
}

// GoDown is the mirror image of GoUp: it decides which relocation moves
// the focused subtree one row down. The node after a subtree in
// pre-order is never deeper than the subtree's root, so no descendant
// walk is needed: a next sibling T means the focus slides below T as its
// first child; a last child outdents to sit right after its parent.
func (c Cursor[V]) GoDown() (Placement[V], bool) {
	if len(c.right) > 0 {
		return Placement[V]{Kind: FirstChildOf, Anchor: c.right[0].Value}, true
	}
	if n := len(c.path); n > 0 {
		return Placement[V]{Kind: After, Anchor: c.path[n-1].value}, true
	}
	return Placement[V]{}, false
}

// Apply performs the relocation named by p, resolving the anchor through
// keyOf.
func Apply[V any, K comparable](c Cursor[V], p Placement[V], keyOf func(V) K) (Cursor[V], error) {
	switch p.Kind {
	case FirstRoot:
		return c.MoveToFirstRoot(), nil
	case FirstChildOf:
		return MoveToFirstChildOf(c, keyOf(p.Anchor), keyOf)
	case After:
		return MoveToAfter(c, keyOf(p.Anchor), keyOf)
	default:
		panic("unknown placement kind")
	}
}

// MoveUp moves the focused subtree one row up. moved is false when the
// focus already occupies the first row, in which case c is returned
// unchanged.
func MoveUp[V any, K comparable](c Cursor[V], keyOf func(V) K) (moved Cursor[V], ok bool, err error) {
	p, ok := c.GoUp()
	if !ok {
		return c, false, nil
	}
	moved, err = Apply(c, p, keyOf)
	if err != nil {
		return c, false, err
	}
	return moved, true, nil
}

// MoveDown moves the focused subtree one row down.
func MoveDown[V any, K comparable](c Cursor[V], keyOf func(V) K) (moved Cursor[V], ok bool, err error) {
	p, ok := c.GoDown()
	if !ok {
		return c, false, nil
	}
	moved, err = Apply(c, p, keyOf)
	if err != nil {
		return c, false, err
	}
	return moved, true, nil
}

func lastDescendant[V any](t Tree[V]) Tree[V] {
	for n := len(t.Children); n > 0; n = len(t.Children) {
		t = t.Children[n-1]
	}
	return t
}
