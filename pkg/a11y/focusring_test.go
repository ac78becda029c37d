package a11y_test

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-adaptive/pkg/a11y"
)

func ringWith(ids ...string) *a11y.FocusRing {
	ring := a11y.NewFocusRing()
	for _, id := range ids {
		ring.Add(id)
	}
	return ring
}

func TestFocusRing_NextWrapsAround(t *testing.T) {
	const size = 5
	ids := make([]string, size)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%d", i)
	}
	ring := ringWith(ids...)

	// Exactly size moves bring the cursor back to the start.
	for i := 0; i < size; i++ {
		ring.MoveFocus(a11y.FocusNext)
	}
	if got := ring.CurrentIndex(); got != 0 {
		t.Fatalf("n advances on an n-item ring must return to 0, got %d", got)
	}
}

func TestFocusRing_PreviousWrapsBackward(t *testing.T) {
	ring := ringWith("a", "b", "c")

	ring.MoveFocus(a11y.FocusPrevious)
	if got := ring.CurrentIndex(); got != 2 {
		t.Fatalf("previous from 0 should land on the last item, got %d", got)
	}

	// Continue backward through every position.
	want := []int{1, 0, 2}
	for i, expected := range want {
		ring.MoveFocus(a11y.FocusPrevious)
		if got := ring.CurrentIndex(); got != expected {
			t.Fatalf("step %d: want index %d, got %d", i, expected, got)
		}
	}
}

func TestFocusRing_FirstAndLast(t *testing.T) {
	ring := ringWith("a", "b", "c", "d")

	ring.MoveFocus(a11y.FocusLast)
	if ring.Current() != "d" {
		t.Fatalf("last should focus the final item, got %q", ring.Current())
	}
	ring.MoveFocus(a11y.FocusFirst)
	if ring.Current() != "a" {
		t.Fatalf("first should focus the initial item, got %q", ring.Current())
	}
}

func TestFocusRing_AddDuplicateIsNoOp(t *testing.T) {
	ring := ringWith("a", "b")
	ring.Add("a")

	if got := ring.Len(); got != 2 {
		t.Fatalf("duplicate add must not grow the ring: %d", got)
	}
	if got := ring.Items(); got[0] != "a" || got[1] != "b" {
		t.Fatalf("order must be preserved: %v", got)
	}
}

func TestFocusRing_RemoveClampsCursor(t *testing.T) {
	ring := ringWith("a", "b", "c")
	ring.MoveFocus(a11y.FocusLast)

	ring.Remove("c")
	if got := ring.CurrentIndex(); got != 0 {
		t.Fatalf("cursor past the end must clamp to 0, got %d", got)
	}

	ring.Remove("missing")
	if got := ring.Len(); got != 2 {
		t.Fatalf("removing an unknown id must be a no-op, got len %d", got)
	}
}

func TestFocusRing_RemoveBeforeCursorKeepsIndexValid(t *testing.T) {
	ring := ringWith("a", "b", "c")
	ring.FocusItem("b")

	ring.Remove("a")
	if got := ring.CurrentIndex(); got < 0 || got >= ring.Len() {
		t.Fatalf("cursor must stay in range after removal, got %d of %d", got, ring.Len())
	}
}

func TestFocusRing_EmptyRingNoOps(t *testing.T) {
	ring := a11y.NewFocusRing()

	ring.MoveFocus(a11y.FocusNext)
	ring.MoveFocus(a11y.FocusPrevious)
	ring.MoveFocus(a11y.FocusLast)
	ring.FocusItem("anything")
	ring.Remove("anything")

	if ring.CurrentIndex() != 0 || ring.Current() != "" || ring.Len() != 0 {
		t.Fatalf("empty ring operations must all be no-ops: %d %q %d", ring.CurrentIndex(), ring.Current(), ring.Len())
	}
}

func TestFocusRing_FocusItem(t *testing.T) {
	ring := ringWith("a", "b", "c")

	ring.FocusItem("c")
	if ring.Current() != "c" {
		t.Fatalf("focus should land on c, got %q", ring.Current())
	}

	ring.FocusItem("unknown")
	if ring.Current() != "c" {
		t.Fatalf("unknown id must leave the cursor untouched, got %q", ring.Current())
	}
}

func TestFocusRing_ItemsReturnsCopy(t *testing.T) {
	ring := ringWith("a", "b")

	items := ring.Items()
	items[0] = "mutated"

	if ring.Items()[0] != "a" {
		t.Fatalf("mutating the returned slice must not affect the ring")
	}
}

func TestFocusRing_NilReceiver(t *testing.T) {
	var ring *a11y.FocusRing

	ring.Add("a")
	ring.MoveFocus(a11y.FocusNext)

	if ring.Len() != 0 || ring.CurrentIndex() != 0 || ring.Current() != "" {
		t.Fatalf("nil ring should be inert")
	}
}
