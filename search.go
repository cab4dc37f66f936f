package forest

// FindCursor returns a cursor focused on the first value, in pre-order,
// satisfying pred. It finds the same node Find does.
func FindCursor[V any](f Forest[V], pred func(V) bool) (Cursor[V], bool) {
	c, err := MakeCursor(f)
	if err != nil {
		return Cursor[V]{}, false
	}
	for {
		if pred(c.Label()) {
			return c, true
		}
		n, ok := c.NextPreOrder()
		if !ok {
			return Cursor[V]{}, false
		}
		c = n
	}
}

// FindByKey returns a cursor focused on the first node whose projected
// key equals target.
func FindByKey[V any, K comparable](f Forest[V], target K, keyOf func(V) K) (Cursor[V], bool) {
	return FindCursor(f, func(v V) bool { return keyOf(v) == target })
}
