package introspect

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	internalanalysis "github.com/goliatone/go-adaptive/internal/analysis"
	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/recommend"
)

// AnalyzeMap inspects a decoded JSON object. Unlike typed records, a generic
// map carries its shape in the values, so classification falls back to value
// inspection: string contents are probed for UUID, timestamp, and URL forms.
// Keys are visited in sorted order so the result is deterministic.
func (a *Analyzer) AnalyzeMap(value map[string]any) analysis.DataAnalysis {
	fields, depth := walkJSONObject(value, 0, a.walkerDepth())
	patterns := internalanalysis.DerivePatterns(fields)
	return analysis.DataAnalysis{
		Fields:     fields,
		Patterns:   patterns,
		Complexity: internalanalysis.ScoreComplexity(len(fields), patterns, depth),
	}
}

// AnalyzeJSONCollection inspects a decoded JSON array of objects.
func (a *Analyzer) AnalyzeJSONCollection(items []any) analysis.CollectionAnalysis {
	count := len(items)
	kind := analysis.ClassifyCollection(count)

	itemComplexity := analysis.ComplexitySimple
	if count > 0 {
		if first, ok := items[0].(map[string]any); ok {
			itemComplexity = a.AnalyzeMap(first).Complexity
		}
	}

	return analysis.CollectionAnalysis{
		ItemCount:       count,
		CollectionType:  kind,
		ItemComplexity:  itemComplexity,
		Recommendations: recommend.RecommendCollection(count, kind, itemComplexity),
	}
}

func (a *Analyzer) walkerDepth() int {
	if a.maxDepth > 0 {
		return a.maxDepth
	}
	return 4
}

func walkJSONObject(obj map[string]any, depth, maxDepth int) ([]analysis.FieldDescriptor, int) {
	if len(obj) == 0 || depth >= maxDepth {
		return nil, depth
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([]analysis.FieldDescriptor, 0, len(keys))
	deepest := depth

	for _, key := range keys {
		desc, nested := classifyJSONValue(key, obj[key], depth, maxDepth)
		fields = append(fields, desc)
		if nested > deepest {
			deepest = nested
		}
	}

	return fields, deepest
}

func classifyJSONValue(name string, value any, depth, maxDepth int) (analysis.FieldDescriptor, int) {
	desc := analysis.FieldDescriptor{Name: name}

	switch v := value.(type) {
	case nil:
		desc.Type = analysis.FieldTypeString
		desc.IsOptional = true
	case bool:
		desc.Type = analysis.FieldTypeBoolean
	case float64:
		desc.Type = analysis.FieldTypeNumber
	case string:
		desc.Type = classifyJSONString(v)
	case map[string]any:
		desc.Type = analysis.FieldTypeNestedRecord
		_, nested := walkJSONObject(v, depth+1, maxDepth)
		return desc, nested
	case []any:
		desc.IsArray = true
		if len(v) == 0 {
			desc.Type = analysis.FieldTypeString
			return desc, depth
		}
		if obj, ok := v[0].(map[string]any); ok {
			desc.Type = analysis.FieldTypeCollection
			_, nested := walkJSONObject(obj, depth+1, maxDepth)
			return desc, nested
		}
		element, _ := classifyJSONValue(name, v[0], depth, maxDepth)
		desc.Type = element.Type
	default:
		desc.Type = analysis.FieldTypeString
	}

	return desc, depth
}

// classifyJSONString probes the content for identifier, temporal, and URL
// forms, in that precedence.
func classifyJSONString(value string) analysis.FieldType {
	if _, err := uuid.Parse(value); err == nil {
		return analysis.FieldTypeUUID
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if _, err := time.Parse(layout, value); err == nil {
			return analysis.FieldTypeDate
		}
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return analysis.FieldTypeURL
	}
	return analysis.FieldTypeString
}
