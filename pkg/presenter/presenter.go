// Package presenter coordinates the full decision pipeline: introspection,
// recommendations, hint decoration, and strategy selection. It applies
// sensible defaults while remaining open to dependency injection for advanced
// callers, mirroring the rest of the module's options-first style.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/capability"
	"github.com/goliatone/go-adaptive/pkg/hints"
	"github.com/goliatone/go-adaptive/pkg/introspect"
	"github.com/goliatone/go-adaptive/pkg/recommend"
	"github.com/goliatone/go-adaptive/pkg/strategy"
)

// Decorator enriches a presentation context before strategy selection.
type Decorator interface {
	Decorate(strategy.PresentationContext) strategy.PresentationContext
}

// Option customises the presenter configuration.
type Option func(*Presenter)

// WithAnalyzer injects a custom introspection analyzer.
func WithAnalyzer(analyzer *introspect.Analyzer) Option {
	return func(p *Presenter) {
		p.analyzer = analyzer
	}
}

// WithProvider injects the capability provider consulted per decision call.
func WithProvider(provider capability.Provider) Option {
	return func(p *Presenter) {
		p.provider = provider
	}
}

// WithHintFS supplies an fs.FS holding hint overlay documents. Pass nil to
// disable the embedded defaults.
func WithHintFS(fsys fs.FS) Option {
	return func(p *Presenter) {
		p.hintFS = fsys
		p.hintFSSpecified = true
	}
}

// WithDecorators registers additional context decorators that run after the
// hint store decorator.
func WithDecorators(decorators ...Decorator) Option {
	return func(p *Presenter) {
		if len(decorators) == 0 {
			return
		}
		p.decorators = append(p.decorators, decorators...)
	}
}

// Presenter runs the analyze → recommend → decorate → select sequence.
type Presenter struct {
	analyzer        *introspect.Analyzer
	provider        capability.Provider
	decorators      []Decorator
	hintFS          fs.FS
	hintFSSpecified bool
	hintsConfigured bool
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Presenter applying any provided options. Missing
// dependencies are initialised with built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Presenter {
	p := &Presenter{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

// Request describes the inputs required to decide a presentation.
type Request struct {
	// Value is the record (or a representative item) to introspect. Optional
	// when Analysis is supplied directly.
	Value any

	// Collection, when non-nil, is the slice being presented; it drives the
	// collection analysis and the item count fed to the selectors.
	Collection any

	// Analysis bypasses introspection when the caller already holds one.
	Analysis *analysis.DataAnalysis

	// AvailableWidth is the layout width in points.
	AvailableWidth float64

	// Interaction defaults to touch when empty.
	Interaction strategy.InteractionStyle

	// Density defaults to balanced when empty.
	Density strategy.ContentDensity

	// DataType, Preference, and Usage seed the presentation context.
	DataType   strategy.DataTypeHint
	Preference strategy.PresentationPreference
	Usage      strategy.UsageContext

	// Preferences carries free-form caller preferences into the context.
	Preferences map[string]string
}

// Presentation is the declarative decision bundle the rendering layer
// consumes.
type Presentation struct {
	Analysis        analysis.DataAnalysis        `json:"analysis"`
	Collection      *analysis.CollectionAnalysis `json:"collection,omitempty"`
	Recommendations []analysis.Recommendation    `json:"recommendations,omitempty"`
	Layout          strategy.LayoutStrategy      `json:"layout"`
	Expansion       strategy.ExpansionStrategy   `json:"expansion"`
	Context         strategy.PresentationContext `json:"-"`
	Capabilities    capability.Snapshot          `json:"capabilities"`
}

// Present executes the pipeline. The only failure modes are configuration
// problems; decision inputs themselves never error, they degrade.
func (p *Presenter) Present(ctx context.Context, req Request) (Presentation, error) {
	if ctx == nil {
		return Presentation{}, errors.New("presenter: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Presentation{}, err
	}
	if !p.defaultsApplied {
		p.applyDefaults()
	}
	if err := p.initialiseErr; err != nil {
		return Presentation{}, err
	}

	result := Presentation{Capabilities: p.provider.Capabilities()}

	result.Analysis = p.resolveAnalysis(req)
	itemCount := 1
	if req.Collection != nil {
		collection := p.analyzer.AnalyzeSlice(req.Collection)
		result.Collection = &collection
		itemCount = collection.ItemCount
	}

	result.Recommendations = recommend.Recommend(result.Analysis)
	if result.Collection != nil {
		result.Recommendations = append(result.Recommendations, result.Collection.Recommendations...)
	}

	pctx := strategy.NewContext(req.DataType, req.Preference, result.Analysis.Complexity, req.Usage).
		WithPreferences(req.Preferences)
	for _, decorator := range p.decorators {
		if decorator == nil {
			continue
		}
		pctx = decorator.Decorate(pctx)
	}
	result.Context = pctx

	interaction := req.Interaction
	if interaction == "" {
		interaction = defaultInteraction(result.Capabilities)
	}
	density := req.Density
	if density == "" {
		density = strategy.DensityBalanced
	}

	device := result.Capabilities.Device
	result.Layout = strategy.SelectCardLayoutForContext(pctx, itemCount, req.AvailableWidth, device)
	result.Expansion = strategy.SelectExpansion(itemCount, req.AvailableWidth, device, interaction, density)

	return result, nil
}

func (p *Presenter) resolveAnalysis(req Request) analysis.DataAnalysis {
	if req.Analysis != nil {
		return *req.Analysis
	}
	return p.analyzer.Analyze(req.Value)
}

// defaultInteraction maps the capability snapshot onto the most natural
// interaction style.
func defaultInteraction(snapshot capability.Snapshot) strategy.InteractionStyle {
	switch {
	case snapshot.SupportsTouch:
		return strategy.InteractionTouch
	case snapshot.SupportsHover:
		return strategy.InteractionPointer
	case snapshot.Device == capability.DeviceTV:
		return strategy.InteractionRemote
	default:
		return strategy.InteractionStatic
	}
}

func (p *Presenter) applyDefaults() {
	if p.defaultsApplied {
		return
	}

	if p.analyzer == nil {
		p.analyzer = introspect.New()
	}
	if p.provider == nil {
		p.provider = capability.NewStatic(capability.PlatformUnknown)
	}

	p.ensureHintDecorator()

	p.defaultsApplied = true
}

func (p *Presenter) ensureHintDecorator() {
	if p.hintsConfigured {
		return
	}
	p.hintsConfigured = true

	if !p.hintFSSpecified && p.hintFS == nil {
		p.hintFS = hints.EmbeddedFS()
	}
	if p.hintFS == nil {
		return
	}

	store, err := hints.LoadFS(p.hintFS)
	if err != nil {
		p.initialiseErr = fmt.Errorf("presenter: load hint overlays: %w", err)
		return
	}
	if store.Empty() {
		return
	}

	// Hint decoration runs before any caller-registered decorators.
	p.decorators = append([]Decorator{hints.NewDecorator(store)}, p.decorators...)
}
