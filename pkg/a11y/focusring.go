package a11y

// FocusDirection enumerates focus ring movements.
type FocusDirection string

const (
	FocusNext     FocusDirection = "next"
	FocusPrevious FocusDirection = "previous"
	FocusFirst    FocusDirection = "first"
	FocusLast     FocusDirection = "last"
)

// FocusRing is an ordered set of keyboard-focusable item identifiers plus a
// current-position cursor. next/previous wrap circularly. All operations on an
// empty ring are no-ops with the cursor pinned at zero.
type FocusRing struct {
	items []string
	index int
}

// NewFocusRing creates an empty ring.
func NewFocusRing() *FocusRing {
	return &FocusRing{}
}

// Add appends the identifier unless it is already present. The cursor is
// unchanged either way.
func (r *FocusRing) Add(id string) {
	if r == nil || id == "" {
		return
	}
	if r.position(id) >= 0 {
		return
	}
	r.items = append(r.items, id)
}

// Remove drops the identifier if present. The cursor only moves when removal
// leaves it out of range, in which case it clamps to zero.
func (r *FocusRing) Remove(id string) {
	if r == nil {
		return
	}
	pos := r.position(id)
	if pos < 0 {
		return
	}
	r.items = append(r.items[:pos], r.items[pos+1:]...)
	if r.index >= len(r.items) {
		r.index = 0
	}
}

// MoveFocus advances the cursor. On an empty ring this is a no-op.
func (r *FocusRing) MoveFocus(direction FocusDirection) {
	if r == nil || len(r.items) == 0 {
		return
	}
	count := len(r.items)
	switch direction {
	case FocusNext:
		r.index = (r.index + 1) % count
	case FocusPrevious:
		r.index = (r.index - 1 + count) % count
	case FocusFirst:
		r.index = 0
	case FocusLast:
		r.index = count - 1
	}
}

// FocusItem moves the cursor to the identifier's position. Unknown identifiers
// leave the cursor where it is.
func (r *FocusRing) FocusItem(id string) {
	if r == nil || len(r.items) == 0 {
		return
	}
	if pos := r.position(id); pos >= 0 {
		r.index = pos
	}
}

// CurrentIndex reports the cursor position; zero on an empty ring.
func (r *FocusRing) CurrentIndex() int {
	if r == nil {
		return 0
	}
	return r.index
}

// Current returns the focused identifier, or empty when the ring is empty.
func (r *FocusRing) Current() string {
	if r == nil || len(r.items) == 0 {
		return ""
	}
	return r.items[r.index]
}

// Items returns a copy of the ordered identifier sequence.
func (r *FocusRing) Items() []string {
	if r == nil || len(r.items) == 0 {
		return nil
	}
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// Len reports the ring size.
func (r *FocusRing) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

func (r *FocusRing) position(id string) int {
	for i, item := range r.items {
		if item == id {
			return i
		}
	}
	return -1
}
