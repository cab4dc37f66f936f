package forest

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func assertLabel(t *testing.T, want int, c Cursor[int], ok bool) Cursor[int] {
	t.Helper()
	if !ok {
		t.Fatalf("expected a cursor at %d, got none", want)
	}
	if got := c.Label(); got != want {
		t.Fatalf("expected label %d, got %d", want, got)
	}
	return c
}

func TestMakeCursorEmpty(t *testing.T) {
	_, err := MakeCursor[int](nil)
	if !errors.Is(err, ErrEmptyForest) {
		t.Fatalf("expected ErrEmptyForest, got %v", err)
	}
	if _, ok := FromFlatForest[int](nil); ok {
		t.Fatal("expected no cursor for an empty forest")
	}
}

func TestNavigation(t *testing.T) {
	c, err := MakeCursor(sample())
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Label(); got != 0 {
		t.Fatalf("expected focus on first root, got %d", got)
	}

	n, ok := c.FirstChild()
	c = assertLabel(t, -1, n, ok)
	n, ok = c.FirstChild()
	c = assertLabel(t, -10, n, ok)
	n, ok = c.NextSibling()
	c = assertLabel(t, -20, n, ok)
	n, ok = c.Parent()
	c = assertLabel(t, -1, n, ok)
	n, ok = c.NextSibling()
	c = assertLabel(t, 1, n, ok)
	n, ok = c.PrevSibling()
	c = assertLabel(t, -1, n, ok)
	n, ok = c.Parent()
	c = assertLabel(t, 0, n, ok)
	n, ok = c.NextSibling()
	c = assertLabel(t, 100, n, ok)

	if _, ok := c.NextSibling(); ok {
		t.Fatal("expected no sibling after the last root")
	}
	if _, ok := c.Parent(); ok {
		t.Fatal("expected no parent for a root")
	}
}

func TestPreOrderSteps(t *testing.T) {
	c, err := MakeCursor(sample())
	if err != nil {
		t.Fatal(err)
	}
	want := samplePreOrder()
	for i, v := range want {
		if got := c.Label(); got != v {
			t.Fatalf("step %d: expected %d, got %d", i, v, got)
		}
		n, ok := c.NextPreOrder()
		if i == len(want)-1 {
			if ok {
				t.Fatalf("expected traversal to end after %d", v)
			}
			break
		}
		if !ok {
			t.Fatalf("traversal ended early at %d", v)
		}
		c = n
	}
	// And back again.
	for i := len(want) - 1; i >= 0; i-- {
		if got := c.Label(); got != want[i] {
			t.Fatalf("reverse step %d: expected %d, got %d", i, want[i], got)
		}
		p, ok := c.PrevPreOrder()
		if i == 0 {
			if ok {
				t.Fatal("expected no row above the first root")
			}
			break
		}
		if !ok {
			t.Fatalf("reverse traversal ended early at %d", want[i])
		}
		c = p
	}
}

func TestAncestors(t *testing.T) {
	c, ok := FindByKey(sample(), -20, intKey)
	if !ok {
		t.Fatal("expected to find -20")
	}
	if diff := cmp.Diff([]int{-1, 0}, c.Ancestors()); diff != "" {
		t.Fatalf("ancestors mismatch (-want +got):\n%s", diff)
	}
	if c.Depth() != len(c.Ancestors()) {
		t.Fatal("expected depth to equal ancestor count")
	}

	root, err := MakeCursor(sample())
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Ancestors()) != 0 {
		t.Fatal("expected a root to have no ancestors")
	}
}

func TestForestReconstruction(t *testing.T) {
	f := sample()
	c, err := MakeCursor(f)
	if err != nil {
		t.Fatal(err)
	}
	for {
		if diff := cmp.Diff(f, c.Forest()); diff != "" {
			t.Fatalf("reconstruction from %d mismatch (-want +got):\n%s", c.Label(), diff)
		}
		n, ok := c.NextPreOrder()
		if !ok {
			break
		}
		c = n
	}
}

func TestFlatForestRoundTrip(t *testing.T) {
	f := sample()
	c, ok := FromFlatForest(f)
	if !ok {
		t.Fatal("expected a cursor")
	}
	if !Equal(f, c.FlatForest()) {
		t.Fatal("expected FlatForest to reproduce the input forest")
	}
	again, ok := FromFlatForest(c.FlatForest())
	if !ok {
		t.Fatal("expected a cursor on the round-tripped forest")
	}
	if again.Label() != c.Label() || !Equal(again.Forest(), c.Forest()) {
		t.Fatal("expected round trip to reproduce the first-root cursor")
	}
}

func TestCursorRandomized(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		next := 0
		f := genForest(r, &next, 0)

		// Locator agreement: Find and FindCursor name the same node.
		for j := 0; j < 10; j++ {
			bound := r.Intn(next + 1)
			pred := func(v int) bool { return v >= bound }
			v, okV := f.Find(pred)
			c, okC := FindCursor(f, pred)
			if okV != okC {
				t.Fatalf("locators disagree on presence for bound %d", bound)
			}
			if okV && c.Label() != v {
				t.Fatalf("locators disagree: Find=%d FindCursor=%d", v, c.Label())
			}
		}

		// Walk forward, checking reconstruction, ancestry shape, and
		// that PrevPreOrder inverts NextPreOrder at every step.
		c, err := MakeCursor(f)
		if err != nil {
			t.Fatal(err)
		}
		rows := f.Rows()
		for j := 0; ; j++ {
			if c.Label() != rows[j].Value {
				t.Fatalf("step %d: expected %d, got %d", j, rows[j].Value, c.Label())
			}
			if got := len(c.Ancestors()); got != rows[j].Depth {
				t.Fatalf("step %d: expected depth %d, got %d", j, rows[j].Depth, got)
			}
			if !Equal(f, c.Forest()) {
				t.Fatalf("step %d: reconstruction mismatch", j)
			}
			n, ok := c.NextPreOrder()
			if !ok {
				if j != len(rows)-1 {
					t.Fatalf("traversal ended early at step %d of %d", j, len(rows))
				}
				break
			}
			back, ok := n.PrevPreOrder()
			if !ok || back.Label() != c.Label() {
				t.Fatalf("step %d: PrevPreOrder did not invert NextPreOrder", j)
			}
			c = n
		}
	}
}
