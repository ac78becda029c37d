// Package adaptive decides how application data should be presented. It
// introspects arbitrary record shapes, combines the analysis with platform
// capabilities and presentation context, and emits declarative layout,
// expansion, OCR, and photo strategies for a rendering layer to consume.
package adaptive

import (
	"context"

	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/capability"
	"github.com/goliatone/go-adaptive/pkg/introspect"
	"github.com/goliatone/go-adaptive/pkg/presenter"
	"github.com/goliatone/go-adaptive/pkg/strategy"
)

// DataAnalysis aliases the introspection result for convenience.
type DataAnalysis = analysis.DataAnalysis

// CollectionAnalysis aliases the collection introspection result.
type CollectionAnalysis = analysis.CollectionAnalysis

// Recommendation aliases the advisory entry type.
type Recommendation = analysis.Recommendation

// Snapshot aliases the capability snapshot consumed per decision call.
type Snapshot = capability.Snapshot

// LayoutStrategy aliases the card/grid layout decision.
type LayoutStrategy = strategy.LayoutStrategy

// ExpansionStrategy aliases the card expansion decision.
type ExpansionStrategy = strategy.ExpansionStrategy

// OCRStrategy aliases the text-recognition configuration.
type OCRStrategy = strategy.OCRStrategy

// Presentation aliases the full decision bundle.
type Presentation = presenter.Presentation

// Request aliases the presenter request.
type Request = presenter.Request

// NewPresenter exposes the presenter constructor from the top-level module.
func NewPresenter(options ...presenter.Option) *presenter.Presenter {
	return presenter.New(options...)
}

// Analyze introspects a single value with a default analyzer.
func Analyze(value any) DataAnalysis {
	return introspect.New().Analyze(value)
}

// AnalyzeCollection introspects a slice value with a default analyzer.
func AnalyzeCollection(value any) CollectionAnalysis {
	return introspect.New().AnalyzeSlice(value)
}

// Present runs the full pipeline with default wiring. It is the simplest
// entry point for callers that just want a decision.
func Present(ctx context.Context, req Request, options ...presenter.Option) (Presentation, error) {
	return presenter.New(options...).Present(ctx, req)
}
