package analysis

import internalanalysis "github.com/goliatone/go-adaptive/internal/analysis"

// FieldType re-exports the internal field-kind enumeration.
type FieldType = internalanalysis.FieldType

const (
	FieldTypeString       = internalanalysis.FieldTypeString
	FieldTypeNumber       = internalanalysis.FieldTypeNumber
	FieldTypeBoolean      = internalanalysis.FieldTypeBoolean
	FieldTypeDate         = internalanalysis.FieldTypeDate
	FieldTypeUUID         = internalanalysis.FieldTypeUUID
	FieldTypeImage        = internalanalysis.FieldTypeImage
	FieldTypeDocument     = internalanalysis.FieldTypeDocument
	FieldTypeURL          = internalanalysis.FieldTypeURL
	FieldTypeEnum         = internalanalysis.FieldTypeEnum
	FieldTypeNestedRecord = internalanalysis.FieldTypeNestedRecord
	FieldTypeCollection   = internalanalysis.FieldTypeCollection
)

// ComplexityTier orders data shapes from simple to very complex.
type ComplexityTier = internalanalysis.ComplexityTier

const (
	ComplexitySimple      = internalanalysis.ComplexitySimple
	ComplexityModerate    = internalanalysis.ComplexityModerate
	ComplexityComplex     = internalanalysis.ComplexityComplex
	ComplexityVeryComplex = internalanalysis.ComplexityVeryComplex
)

// CollectionType tiers collections by item count.
type CollectionType = internalanalysis.CollectionType

const (
	CollectionEmpty  = internalanalysis.CollectionEmpty
	CollectionSmall  = internalanalysis.CollectionSmall
	CollectionMedium = internalanalysis.CollectionMedium
	CollectionLarge  = internalanalysis.CollectionLarge
)

// RecommendationType partitions recommendations by audience.
type RecommendationType = internalanalysis.RecommendationType

const (
	RecommendationLayout        = internalanalysis.RecommendationLayout
	RecommendationPerformance   = internalanalysis.RecommendationPerformance
	RecommendationAccessibility = internalanalysis.RecommendationAccessibility
)

type FieldDescriptor = internalanalysis.FieldDescriptor
type Patterns = internalanalysis.Patterns
type DataAnalysis = internalanalysis.DataAnalysis
type CollectionAnalysis = internalanalysis.CollectionAnalysis
type Recommendation = internalanalysis.Recommendation

// ClassifyCollection maps an item count onto its collection tier.
func ClassifyCollection(itemCount int) CollectionType {
	return internalanalysis.ClassifyCollection(itemCount)
}
