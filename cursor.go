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

// crumb is one reconstruction frame of a cursor's path: the payload of
// an ancestor plus that ancestor's own left and right siblings at its
// level. Folding crumbs outward rebuilds the full forest.
type crumb[V any] struct {
	value V
	left  []Tree[V]
	right []Tree[V]
}

// A Cursor is a focus subtree plus enough context to rebuild the forest
// it came from and to step to neighboring positions. The path holds one
// crumb per ancestor level, nearest ancestor last; it is empty when the
// focus is a root.
//
// Cursors are values. Stepping or relocating returns a new Cursor and
// never modifies the slices it shares with earlier cursors, so older
// cursors stay valid (though logically superseded after a relocation).
type Cursor[V any] struct {
	focus Tree[V]
	left  []Tree[V]
	right []Tree[V]
	path  []crumb[V]
}

// MakeCursor returns a cursor focused on the first root of f. It fails
// with ErrEmptyForest if f has no roots.
func MakeCursor[V any](f Forest[V]) (Cursor[V], error) {
	if len(f) == 0 {
		return Cursor[V]{}, ErrEmptyForest
	}
	return Cursor[V]{focus: f[0], right: f[1:]}, nil
}

// FromFlatForest is MakeCursor with absence instead of an error, the
// inverse of FlatForest for non-empty forests.
func FromFlatForest[V any](f Forest[V]) (Cursor[V], bool) {
	c, err := MakeCursor(f)
	return c, err == nil
}

// Label returns the focused value.
func (c Cursor[V]) Label() V {
	return c.focus.Value
}

// Depth returns the number of ancestors above the focus.
func (c Cursor[V]) Depth() int {
	return len(c.path)
}

// Ancestors returns the values of the focus's ancestors, immediate
// parent first, root last. It is empty when the focus is a root.
func (c Cursor[V]) Ancestors() []V {
	out := make([]V, 0, len(c.path))
	for i := len(c.path) - 1; i >= 0; i-- {
		out = append(out, c.path[i].value)
	}
	return out
}

// Forest rebuilds the entire forest the cursor is positioned in.
func (c Cursor[V]) Forest() Forest[V] {
	for {
		p, ok := c.Parent()
		if !ok {
			return c.level()
		}
		c = p
	}
}

// FlatForest discards the cursor position and keeps the content. It is
// identical to Forest and exists for symmetry with FromFlatForest.
func (c Cursor[V]) FlatForest() Forest[V] {
	return c.Forest()
}

// FirstChild steps to the focus's first child.
func (c Cursor[V]) FirstChild() (Cursor[V], bool) {
	if len(c.focus.Children) == 0 {
		return c, false
	}
	return Cursor[V]{
		focus: c.focus.Children[0],
		right: c.focus.Children[1:],
		path:  pushCrumb(c.path, crumb[V]{value: c.focus.Value, left: c.left, right: c.right}),
	}, true
}

// Parent steps to the focus's parent, reassembling the focus level into
// the parent's children.
func (c Cursor[V]) Parent() (Cursor[V], bool) {
	if len(c.path) == 0 {
		return c, false
	}
	fr := c.path[len(c.path)-1]
	return Cursor[V]{
		focus: Tree[V]{Value: fr.value, Children: c.level()},
		left:  fr.left,
		right: fr.right,
		path:  c.path[:len(c.path)-1],
	}, true
}

// NextSibling steps to the sibling immediately after the focus. At the
// root level siblings are the other roots.
func (c Cursor[V]) NextSibling() (Cursor[V], bool) {
	if len(c.right) == 0 {
		return c, false
	}
	return Cursor[V]{
		focus: c.right[0],
		left:  pushTree(c.left, c.focus),
		right: c.right[1:],
		path:  c.path,
	}, true
}

// PrevSibling steps to the sibling immediately before the focus.
func (c Cursor[V]) PrevSibling() (Cursor[V], bool) {
	if len(c.left) == 0 {
		return c, false
	}
	return Cursor[V]{
		focus: c.left[len(c.left)-1],
		left:  c.left[:len(c.left)-1],
		right: pushFront(c.focus, c.right),
		path:  c.path,
	}, true
}

// NextPreOrder steps to the next node in pre-order: the first child if
// there is one, otherwise the next sibling of the nearest ancestor (or
// the focus itself) that has one.
func (c Cursor[V]) NextPreOrder() (Cursor[V], bool) {
	if d, ok := c.FirstChild(); ok {
		return d, true
	}
	for at := c; ; {
		if n, ok := at.NextSibling(); ok {
			return n, true
		}
		p, ok := at.Parent()
		if !ok {
			return c, false
		}
		at = p
	}
}

// PrevPreOrder steps to the node drawn in the row directly above the
// focus: the last visible descendant of the previous sibling if there is
// one, otherwise the parent.
func (c Cursor[V]) PrevPreOrder() (Cursor[V], bool) {
	if p, ok := c.PrevSibling(); ok {
		return p.lastVisible(), true
	}
	return c.Parent()
}

// lastVisible descends along last children until it reaches a node with
// none: the bottom row of the focus's subtree.
func (c Cursor[V]) lastVisible() Cursor[V] {
	for n := len(c.focus.Children); n > 0; n = len(c.focus.Children) {
		c = Cursor[V]{
			focus: c.focus.Children[n-1],
			left:  c.focus.Children[:n-1],
			path:  pushCrumb(c.path, crumb[V]{value: c.focus.Value, left: c.left, right: c.right}),
		}
	}
	return c
}

// level reassembles the focus's sibling level, focus included.
func (c Cursor[V]) level() Forest[V] {
	out := make(Forest[V], 0, len(c.left)+1+len(c.right))
	out = append(out, c.left...)
	out = append(out, c.focus)
	out = append(out, c.right...)
	return out
}

// pushTree appends without sharing the backing array, so sibling slices
// held by other cursors are never written through.
func pushTree[V any](ts []Tree[V], t Tree[V]) []Tree[V] {
	out := make([]Tree[V], len(ts)+1)
	copy(out, ts)
	out[len(ts)] = t
	return out
}

func pushFront[V any](t Tree[V], ts []Tree[V]) []Tree[V] {
	out := make([]Tree[V], len(ts)+1)
	out[0] = t
	copy(out[1:], ts)
	return out
}

func pushCrumb[V any](path []crumb[V], fr crumb[V]) []crumb[V] {
	out := make([]crumb[V], len(path)+1)
	copy(out, path)
	out[len(path)] = fr
	return out
}
