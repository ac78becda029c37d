package adaptive_test

import (
	"context"
	"testing"
	"time"

	adaptive "github.com/goliatone/go-adaptive"
	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/strategy"
)

type invoice struct {
	Number   string
	IssuedAt time.Time
	DueAt    time.Time
	Lines    []invoiceLine
	Total    float64
	Currency string
	Paid     bool
}

type invoiceLine struct {
	Description string
	Amount      float64
}

func TestAnalyze(t *testing.T) {
	got := adaptive.Analyze(invoice{})

	if len(got.Fields) != 7 {
		t.Fatalf("want 7 fields, got %d", len(got.Fields))
	}
	if !got.Patterns.HasDates || !got.Patterns.HasRelationships {
		t.Fatalf("invoice shape should flag dates and relations: %+v", got.Patterns)
	}
	if got.Complexity == analysis.ComplexitySimple {
		t.Fatalf("an invoice is not a simple shape")
	}
}

func TestAnalyzeCollection(t *testing.T) {
	got := adaptive.AnalyzeCollection(make([]invoice, 30))

	if got.CollectionType != analysis.CollectionMedium {
		t.Fatalf("30 invoices should tier medium, got %s", got.CollectionType)
	}
	if got.ItemCount != 30 {
		t.Fatalf("item count: %d", got.ItemCount)
	}
}

func TestPresent_EndToEnd(t *testing.T) {
	got, err := adaptive.Present(context.Background(), adaptive.Request{
		Value:          invoice{},
		Collection:     make([]invoice, 12),
		AvailableWidth: 1024,
		Interaction:    strategy.InteractionTouch,
	})
	if err != nil {
		t.Fatalf("present: %v", err)
	}

	if got.Layout.Columns < 1 {
		t.Fatalf("layout should select at least one column: %+v", got.Layout)
	}
	if got.Expansion.Primary == "" {
		t.Fatalf("expansion strategy should always be populated")
	}
	if len(got.Recommendations) == 0 {
		t.Fatalf("a populated shape should yield recommendations")
	}
}

func TestNewPresenter_Reusable(t *testing.T) {
	p := adaptive.NewPresenter()

	first, err := p.Present(context.Background(), adaptive.Request{Value: invoice{}, AvailableWidth: 800})
	if err != nil {
		t.Fatalf("first present: %v", err)
	}
	second, err := p.Present(context.Background(), adaptive.Request{Value: invoice{}, AvailableWidth: 800})
	if err != nil {
		t.Fatalf("second present: %v", err)
	}
	if first.Layout != second.Layout {
		t.Fatalf("identical requests must decide identically: %+v vs %+v", first.Layout, second.Layout)
	}
}
