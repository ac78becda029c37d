// Package recommend turns analysis results into ranked presentation
// recommendations. Every function here is pure: the output is a function of
// the supplied analysis alone.
package recommend

import (
	"fmt"

	"github.com/goliatone/go-adaptive/pkg/analysis"
)

// rule is one row of the ordered recommendation table. Every matching rule
// fires; emission order is table order.
type rule struct {
	matches func(analysis.DataAnalysis) bool
	emit    func(analysis.DataAnalysis) analysis.Recommendation
}

var recordRules = []rule{
	{
		matches: func(a analysis.DataAnalysis) bool {
			return a.Complexity == analysis.ComplexitySimple
		},
		emit: func(analysis.DataAnalysis) analysis.Recommendation {
			return analysis.Recommendation{
				Type:        analysis.RecommendationLayout,
				Description: "use a compact single-column layout for this simple record",
			}
		},
	},
	{
		matches: func(a analysis.DataAnalysis) bool {
			return a.Complexity == analysis.ComplexityModerate
		},
		emit: func(analysis.DataAnalysis) analysis.Recommendation {
			return analysis.Recommendation{
				Type:        analysis.RecommendationLayout,
				Description: "group related fields into sections",
			}
		},
	},
	{
		matches: func(a analysis.DataAnalysis) bool {
			return a.Complexity >= analysis.ComplexityComplex
		},
		emit: func(a analysis.DataAnalysis) analysis.Recommendation {
			layout := "tabbed"
			if a.Complexity == analysis.ComplexityVeryComplex {
				layout = "master-detail"
			}
			return analysis.Recommendation{
				Type:        analysis.RecommendationLayout,
				Description: fmt.Sprintf("use a %s layout to split %d fields across views", layout, len(a.Fields)),
			}
		},
	},
	{
		matches: func(a analysis.DataAnalysis) bool {
			return a.Patterns.HasMedia
		},
		emit: func(analysis.DataAnalysis) analysis.Recommendation {
			return analysis.Recommendation{
				Type:        analysis.RecommendationAccessibility,
				Description: "media fields need descriptive labels for assistive technology",
			}
		},
	},
	{
		matches: func(a analysis.DataAnalysis) bool {
			return a.Patterns.HasRelationships
		},
		emit: func(analysis.DataAnalysis) analysis.Recommendation {
			return analysis.Recommendation{
				Type:        analysis.RecommendationLayout,
				Description: "related records benefit from drill-in navigation",
			}
		},
	},
}

// Recommend evaluates the record rule table against the analysis. A non-empty
// field list always yields at least one recommendation.
func Recommend(a analysis.DataAnalysis) []analysis.Recommendation {
	if len(a.Fields) == 0 {
		return nil
	}

	var out []analysis.Recommendation
	for _, r := range recordRules {
		if r.matches(a) {
			out = append(out, r.emit(a))
		}
	}
	return out
}

// RecommendCollection evaluates collection-level rules. Large collections
// always receive at least one performance recommendation.
func RecommendCollection(itemCount int, kind analysis.CollectionType, itemComplexity analysis.ComplexityTier) []analysis.Recommendation {
	var out []analysis.Recommendation

	switch kind {
	case analysis.CollectionEmpty:
		return nil
	case analysis.CollectionMedium:
		out = append(out, analysis.Recommendation{
			Type:        analysis.RecommendationLayout,
			Description: "paginate or section the collection for easier scanning",
		})
	case analysis.CollectionLarge:
		out = append(out, analysis.Recommendation{
			Type:        analysis.RecommendationPerformance,
			Description: fmt.Sprintf("virtualize rendering: %d items exceed the large-collection threshold", itemCount),
		})
		out = append(out, analysis.Recommendation{
			Type:        analysis.RecommendationLayout,
			Description: "offer search and filtering for large collections",
		})
	}

	if itemComplexity >= analysis.ComplexityComplex && kind != analysis.CollectionEmpty {
		out = append(out, analysis.Recommendation{
			Type:        analysis.RecommendationLayout,
			Description: "complex items render better as summary rows with detail views",
		})
	}

	return out
}
