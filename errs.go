package forest

import "errors"

// Structural boundaries (no parent, no next sibling, no row above) are
// reported as absence through ok booleans, not as errors. The errors
// below indicate caller contract violations.
var (
	// ErrEmptyForest indicates that a cursor was requested over a forest
	// with no roots.
	ErrEmptyForest = errors.New("empty forest")

	// ErrTargetNotFound indicates that a relocation target key does not
	// resolve to any node in the forest.
	ErrTargetNotFound = errors.New("relocation target not found")

	// ErrTargetInMovedSubtree indicates that a relocation target lies
	// inside the subtree being moved (including the focus itself), which
	// would detach the subtree from the forest entirely.
	ErrTargetInMovedSubtree = errors.New("relocation target is inside the moved subtree")
)
