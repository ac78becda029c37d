package analysis

// FieldType is the closed enumeration of presentation-relevant field kinds.
type FieldType string

const (
	FieldTypeString       FieldType = "string"
	FieldTypeNumber       FieldType = "number"
	FieldTypeBoolean      FieldType = "boolean"
	FieldTypeDate         FieldType = "date"
	FieldTypeUUID         FieldType = "uuid"
	FieldTypeImage        FieldType = "image"
	FieldTypeDocument     FieldType = "document"
	FieldTypeURL          FieldType = "url"
	FieldTypeEnum         FieldType = "enum-like"
	FieldTypeNestedRecord FieldType = "nested-record"
	FieldTypeCollection   FieldType = "collection"
)

// ComplexityTier orders data shapes from simple to very complex. The numeric
// ordering is part of the contract: a richer shape never maps to a lower tier.
type ComplexityTier int

const (
	ComplexitySimple ComplexityTier = iota
	ComplexityModerate
	ComplexityComplex
	ComplexityVeryComplex
)

var complexityNames = map[ComplexityTier]string{
	ComplexitySimple:      "simple",
	ComplexityModerate:    "moderate",
	ComplexityComplex:     "complex",
	ComplexityVeryComplex: "veryComplex",
}

// String reports the canonical tier name.
func (c ComplexityTier) String() string {
	if name, ok := complexityNames[c]; ok {
		return name
	}
	return "simple"
}

// MarshalText serialises the tier name so analyses round-trip through JSON
// snapshots by name rather than ordinal.
func (c ComplexityTier) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText restores a tier from its canonical name. Unknown names degrade
// to the simple tier rather than failing.
func (c *ComplexityTier) UnmarshalText(data []byte) error {
	for tier, name := range complexityNames {
		if name == string(data) {
			*c = tier
			return nil
		}
	}
	*c = ComplexitySimple
	return nil
}

// FieldDescriptor captures one public field of an analysed record. Descriptors
// are derived once per shape and never mutated afterwards.
type FieldDescriptor struct {
	Name       string    `json:"name"`
	Type       FieldType `json:"type"`
	IsArray    bool      `json:"isArray"`
	IsOptional bool      `json:"isOptional"`
}

// Patterns flags structural traits the strategy layer keys on.
type Patterns struct {
	HasMedia         bool `json:"hasMedia"`
	HasDates         bool `json:"hasDates"`
	HasRelationships bool `json:"hasRelationships"`
	IsHierarchical   bool `json:"isHierarchical"`
}

// DataAnalysis is the introspection result for a single record shape.
type DataAnalysis struct {
	Fields     []FieldDescriptor `json:"fields"`
	Patterns   Patterns          `json:"patterns"`
	Complexity ComplexityTier    `json:"complexity"`
}

// CollectionType tiers a collection by item count.
type CollectionType string

const (
	CollectionEmpty  CollectionType = "empty"
	CollectionSmall  CollectionType = "small"
	CollectionMedium CollectionType = "medium"
	CollectionLarge  CollectionType = "large"
)

// Collection count boundaries. The upper bounds are exclusive: a ten-item
// collection is already medium, a hundred-item collection already large.
const (
	SmallCollectionMax  = 10
	MediumCollectionMax = 100
)

// ClassifyCollection maps an item count onto its tier.
func ClassifyCollection(itemCount int) CollectionType {
	switch {
	case itemCount <= 0:
		return CollectionEmpty
	case itemCount < SmallCollectionMax:
		return CollectionSmall
	case itemCount < MediumCollectionMax:
		return CollectionMedium
	default:
		return CollectionLarge
	}
}

// RecommendationType partitions recommendations by audience.
type RecommendationType string

const (
	RecommendationLayout        RecommendationType = "layout"
	RecommendationPerformance   RecommendationType = "performance"
	RecommendationAccessibility RecommendationType = "accessibility"
)

// Recommendation is a single advisory entry. Lists keep insertion order; the
// position of an entry carries no significance.
type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Description string             `json:"description"`
}

// CollectionAnalysis is the introspection result for a homogeneous collection.
type CollectionAnalysis struct {
	ItemCount       int              `json:"itemCount"`
	CollectionType  CollectionType   `json:"collectionType"`
	ItemComplexity  ComplexityTier   `json:"itemComplexity"`
	Recommendations []Recommendation `json:"recommendations"`
}
