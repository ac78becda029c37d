package recommend_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/recommend"
)

func makeAnalysis(fieldCount int, complexity analysis.ComplexityTier, patterns analysis.Patterns) analysis.DataAnalysis {
	fields := make([]analysis.FieldDescriptor, fieldCount)
	for i := range fields {
		fields[i] = analysis.FieldDescriptor{Name: "f", Type: analysis.FieldTypeString}
	}
	return analysis.DataAnalysis{Fields: fields, Patterns: patterns, Complexity: complexity}
}

func TestRecommend_EmptyAnalysis(t *testing.T) {
	if got := recommend.Recommend(analysis.DataAnalysis{}); got != nil {
		t.Fatalf("no fields should yield no recommendations, got %+v", got)
	}
}

func TestRecommend_ComplexityRules(t *testing.T) {
	tests := []struct {
		name       string
		complexity analysis.ComplexityTier
		fragment   string
	}{
		{"simple", analysis.ComplexitySimple, "compact"},
		{"moderate", analysis.ComplexityModerate, "sections"},
		{"complex", analysis.ComplexityComplex, "tabbed"},
		{"veryComplex", analysis.ComplexityVeryComplex, "master-detail"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := recommend.Recommend(makeAnalysis(5, tc.complexity, analysis.Patterns{}))
			if len(got) == 0 {
				t.Fatalf("non-empty analysis must yield at least one recommendation")
			}
			if got[0].Type != analysis.RecommendationLayout {
				t.Fatalf("first rule should be a layout recommendation, got %s", got[0].Type)
			}
			if !containsFragment(got, tc.fragment) {
				t.Fatalf("want a recommendation mentioning %q, got %+v", tc.fragment, got)
			}
		})
	}
}

func TestRecommend_PatternRules(t *testing.T) {
	withMedia := recommend.Recommend(makeAnalysis(5, analysis.ComplexityModerate, analysis.Patterns{HasMedia: true}))
	if !hasType(withMedia, analysis.RecommendationAccessibility) {
		t.Fatalf("media pattern should add an accessibility recommendation: %+v", withMedia)
	}

	withRelations := recommend.Recommend(makeAnalysis(5, analysis.ComplexityModerate, analysis.Patterns{HasRelationships: true}))
	if !containsFragment(withRelations, "drill-in") {
		t.Fatalf("relationship pattern should suggest drill-in navigation: %+v", withRelations)
	}
}

func TestRecommend_StableOrder(t *testing.T) {
	input := makeAnalysis(12, analysis.ComplexityVeryComplex, analysis.Patterns{
		HasMedia: true, HasDates: true, HasRelationships: true, IsHierarchical: true,
	})

	first := recommend.Recommend(input)
	second := recommend.Recommend(input)
	if len(first) != len(second) {
		t.Fatalf("repeated evaluation changed output length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("recommendation order is not stable at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRecommendCollection(t *testing.T) {
	if got := recommend.RecommendCollection(0, analysis.CollectionEmpty, analysis.ComplexitySimple); got != nil {
		t.Fatalf("empty collection should yield nil, got %+v", got)
	}

	small := recommend.RecommendCollection(5, analysis.CollectionSmall, analysis.ComplexitySimple)
	if hasType(small, analysis.RecommendationPerformance) {
		t.Fatalf("small collections need no performance recommendations: %+v", small)
	}

	medium := recommend.RecommendCollection(40, analysis.CollectionMedium, analysis.ComplexitySimple)
	if !containsFragment(medium, "paginate") {
		t.Fatalf("medium collections should suggest pagination: %+v", medium)
	}

	large := recommend.RecommendCollection(500, analysis.CollectionLarge, analysis.ComplexitySimple)
	if !hasType(large, analysis.RecommendationPerformance) {
		t.Fatalf("large collections must carry a performance recommendation: %+v", large)
	}
	if !containsFragment(large, "search") {
		t.Fatalf("large collections should suggest search and filtering: %+v", large)
	}

	complexItems := recommend.RecommendCollection(40, analysis.CollectionMedium, analysis.ComplexityVeryComplex)
	if !containsFragment(complexItems, "summary rows") {
		t.Fatalf("complex items should suggest summary rows: %+v", complexItems)
	}
}

func hasType(recs []analysis.Recommendation, kind analysis.RecommendationType) bool {
	for _, rec := range recs {
		if rec.Type == kind {
			return true
		}
	}
	return false
}

func containsFragment(recs []analysis.Recommendation, fragment string) bool {
	for _, rec := range recs {
		if strings.Contains(rec.Description, fragment) {
			return true
		}
	}
	return false
}
