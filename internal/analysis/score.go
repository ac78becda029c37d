package analysis

// Complexity scoring weights. Field count contributes linearly, each pattern
// flag adds a fixed increment, and nesting deepens the score multiplicatively
// so a deeply nested shape cannot score below a flat one.
const (
	fieldWeight       = 1
	patternWeight     = 2
	depthWeight       = 2
	simpleBoundary    = 4
	complexBoundary   = 14
	veryComplexFields = 10
)

// ScoreComplexity derives the tier from field count, structural pattern flags,
// and maximum nesting depth. The function is monotonic: adding fields, flags,
// or depth never lowers the resulting tier.
func ScoreComplexity(fieldCount int, patterns Patterns, maxDepth int) ComplexityTier {
	if fieldCount < 0 {
		fieldCount = 0
	}
	if maxDepth < 0 {
		maxDepth = 0
	}

	flags := countFlags(patterns)
	score := fieldCount*fieldWeight + flags*patternWeight + maxDepth*depthWeight

	if fieldCount >= veryComplexFields && flags >= 2 {
		return ComplexityVeryComplex
	}

	switch {
	case score <= simpleBoundary && flags == 0:
		return ComplexitySimple
	case score < complexBoundary:
		return ComplexityModerate
	default:
		return ComplexityComplex
	}
}

func countFlags(p Patterns) int {
	count := 0
	for _, set := range []bool{p.HasMedia, p.HasDates, p.HasRelationships, p.IsHierarchical} {
		if set {
			count++
		}
	}
	return count
}

// DerivePatterns computes the structural flags from a descriptor list.
func DerivePatterns(fields []FieldDescriptor) Patterns {
	var p Patterns
	for _, field := range fields {
		switch field.Type {
		case FieldTypeImage, FieldTypeDocument:
			p.HasMedia = true
		case FieldTypeDate:
			p.HasDates = true
		case FieldTypeCollection:
			p.HasRelationships = true
			p.IsHierarchical = true
		case FieldTypeNestedRecord:
			p.IsHierarchical = true
			if field.IsArray {
				p.HasRelationships = true
			}
		}
		if field.IsArray {
			p.IsHierarchical = true
		}
	}
	return p
}
