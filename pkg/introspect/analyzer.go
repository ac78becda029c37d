// Package introspect reflects over arbitrary Go values and produces the
// structural analyses the strategy layer consumes. Analysis depends only on a
// value's type, never on its contents, so results are cached per type and the
// analyzer is safe for concurrent use.
package introspect

import (
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"

	internalanalysis "github.com/goliatone/go-adaptive/internal/analysis"
	"github.com/goliatone/go-adaptive/internal/introspect"
	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/recommend"
)

const defaultCacheSize = 256

// Option customises analyzer construction.
type Option func(*Analyzer)

// WithMaxDepth bounds recursion into nested records. Values below one fall
// back to the default bound.
func WithMaxDepth(depth int) Option {
	return func(a *Analyzer) {
		a.maxDepth = depth
	}
}

// WithCacheSize sizes the per-type analysis cache. Zero or negative disables
// caching entirely.
func WithCacheSize(size int) Option {
	return func(a *Analyzer) {
		a.cacheSize = size
	}
}

// Analyzer derives DataAnalysis values from arbitrary record shapes.
type Analyzer struct {
	walker    *introspect.Walker
	cache     *lru.Cache[reflect.Type, analysis.DataAnalysis]
	maxDepth  int
	cacheSize int
}

// New constructs an analyzer, applying any provided options.
func New(options ...Option) *Analyzer {
	a := &Analyzer{
		maxDepth:  introspect.DefaultMaxDepth,
		cacheSize: defaultCacheSize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	a.walker = introspect.NewWalker(a.maxDepth)
	if a.cacheSize > 0 {
		// lru.New only fails for non-positive sizes, which the guard excludes.
		a.cache, _ = lru.New[reflect.Type, analysis.DataAnalysis](a.cacheSize)
	}
	return a
}

// Analyze inspects the supplied value's shape. Nil values and shapeless inputs
// degrade to the empty analysis; Analyze never fails.
func (a *Analyzer) Analyze(value any) analysis.DataAnalysis {
	if value == nil {
		return emptyAnalysis()
	}
	return a.analyzeType(reflect.TypeOf(value))
}

// AnalyzeType inspects a reflect.Type directly, for callers that do not hold
// an instance of the record.
func (a *Analyzer) AnalyzeType(t reflect.Type) analysis.DataAnalysis {
	if t == nil {
		return emptyAnalysis()
	}
	return a.analyzeType(t)
}

func (a *Analyzer) analyzeType(t reflect.Type) analysis.DataAnalysis {
	if a.cache != nil {
		if cached, ok := a.cache.Get(t); ok {
			return cached
		}
	}

	fields, depth := a.walker.Walk(t)
	patterns := internalanalysis.DerivePatterns(fields)
	result := analysis.DataAnalysis{
		Fields:     fields,
		Patterns:   patterns,
		Complexity: internalanalysis.ScoreComplexity(len(fields), patterns, depth),
	}

	if a.cache != nil {
		a.cache.Add(t, result)
	}
	return result
}

// AnalyzeCollection inspects a homogeneous collection. The item shape is taken
// from the first element; an empty collection analyses to the empty tier with
// no recommendations.
func (a *Analyzer) AnalyzeCollection(values []any) analysis.CollectionAnalysis {
	count := len(values)
	kind := analysis.ClassifyCollection(count)

	itemComplexity := analysis.ComplexitySimple
	if count > 0 {
		itemComplexity = a.Analyze(values[0]).Complexity
	}

	return analysis.CollectionAnalysis{
		ItemCount:       count,
		CollectionType:  kind,
		ItemComplexity:  itemComplexity,
		Recommendations: recommend.RecommendCollection(count, kind, itemComplexity),
	}
}

// AnalyzeSlice is a convenience wrapper accepting any slice value. Non-slice
// inputs degrade to the empty collection analysis.
func (a *Analyzer) AnalyzeSlice(value any) analysis.CollectionAnalysis {
	if value == nil {
		return a.AnalyzeCollection(nil)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return a.AnalyzeCollection(nil)
	}

	count := rv.Len()
	kind := analysis.ClassifyCollection(count)

	itemComplexity := analysis.ComplexitySimple
	if count > 0 {
		itemComplexity = a.AnalyzeType(rv.Type().Elem()).Complexity
	}

	return analysis.CollectionAnalysis{
		ItemCount:       count,
		CollectionType:  kind,
		ItemComplexity:  itemComplexity,
		Recommendations: recommend.RecommendCollection(count, kind, itemComplexity),
	}
}

func emptyAnalysis() analysis.DataAnalysis {
	return analysis.DataAnalysis{Complexity: analysis.ComplexitySimple}
}
