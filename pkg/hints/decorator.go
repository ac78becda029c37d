package hints

import (
	"github.com/goliatone/go-adaptive/pkg/strategy"
)

// Decorator merges stored hint profiles into presentation contexts.
type Decorator struct {
	store *Store
}

// NewDecorator wraps a store. A nil or empty store produces a decorator that
// leaves every context untouched.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate returns a context enriched with the hints registered for its data
// type. Contexts with no matching profile pass through unchanged.
func (d *Decorator) Decorate(ctx strategy.PresentationContext) strategy.PresentationContext {
	if d == nil || d.store.Empty() {
		return ctx
	}
	matched := d.store.HintsFor(ctx.DataType)
	if len(matched) == 0 {
		return ctx
	}
	return ctx.WithHints(matched...)
}
