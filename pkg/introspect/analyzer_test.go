package introspect_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/introspect"
	"github.com/goliatone/go-adaptive/pkg/testsupport"
)

type contact struct {
	Name  string
	Email string
	Phone string
}

type article struct {
	ID        uuid.UUID
	Title     string
	Summary   string
	Published time.Time
	Tags      []string
	Views     int
	Draft     bool
}

type orderLine struct {
	SKU      string
	Quantity int
}

type order struct {
	ID        uuid.UUID
	Reference string
	CreatedAt time.Time
	UpdatedAt time.Time
	Customer  contact
	Lines     []orderLine
	Notes     []string
	Total     float64
	Currency  string
	Paid      bool
}

func TestAnalyzer_SimpleRecord(t *testing.T) {
	got := introspect.New().Analyze(contact{})

	if got.Complexity != analysis.ComplexitySimple {
		t.Fatalf("want simple, got %s", got.Complexity)
	}
	if len(got.Fields) != 3 {
		t.Fatalf("want 3 fields, got %d", len(got.Fields))
	}
	if got.Patterns != (analysis.Patterns{}) {
		t.Fatalf("flat record should derive no patterns, got %+v", got.Patterns)
	}
}

func TestAnalyzer_ModerateRecord(t *testing.T) {
	got := introspect.New().Analyze(article{})

	if got.Complexity != analysis.ComplexityModerate {
		t.Fatalf("want moderate, got %s", got.Complexity)
	}
	if !got.Patterns.HasDates {
		t.Fatalf("expected date pattern: %+v", got.Patterns)
	}
	if !got.Patterns.IsHierarchical {
		t.Fatalf("expected hierarchy from the tags array: %+v", got.Patterns)
	}

	byName := fieldIndex(got.Fields)
	if byName["ID"].Type != analysis.FieldTypeUUID {
		t.Fatalf("ID should classify as uuid, got %s", byName["ID"].Type)
	}
	if byName["Published"].Type != analysis.FieldTypeDate {
		t.Fatalf("Published should classify as date, got %s", byName["Published"].Type)
	}
	if !byName["Tags"].IsArray {
		t.Fatalf("Tags should be an array field")
	}
}

func TestAnalyzer_VeryComplexRecord(t *testing.T) {
	got := introspect.New().Analyze(order{})

	if len(got.Fields) != 10 {
		t.Fatalf("want 10 fields, got %d", len(got.Fields))
	}
	if got.Complexity != analysis.ComplexityVeryComplex {
		t.Fatalf("want veryComplex, got %s", got.Complexity)
	}
	if !got.Patterns.HasRelationships {
		t.Fatalf("repeated records should flag relationships: %+v", got.Patterns)
	}

	byName := fieldIndex(got.Fields)
	if byName["Customer"].Type != analysis.FieldTypeNestedRecord {
		t.Fatalf("Customer should classify as nested-record, got %s", byName["Customer"].Type)
	}
	if byName["Lines"].Type != analysis.FieldTypeCollection || !byName["Lines"].IsArray {
		t.Fatalf("Lines should classify as an array of records, got %+v", byName["Lines"])
	}
}

func TestAnalyzer_FieldClassification(t *testing.T) {
	type sample struct {
		Homepage  url.URL
		Avatar    []byte
		Contract  []byte  `json:"contract"`
		Nickname  *string `json:"nickname"`
		Status    analysis.CollectionType
		Secret    string `json:"-"`
		unexposed int
	}

	got := introspect.New().Analyze(sample{})
	if len(got.Fields) != 5 {
		t.Fatalf("want 5 visible fields, got %d (%+v)", len(got.Fields), got.Fields)
	}

	byName := fieldIndex(got.Fields)
	if byName["Homepage"].Type != analysis.FieldTypeURL {
		t.Fatalf("Homepage should classify as url, got %s", byName["Homepage"].Type)
	}
	if byName["Avatar"].Type != analysis.FieldTypeImage {
		t.Fatalf("Avatar bytes should classify as image, got %s", byName["Avatar"].Type)
	}
	if byName["contract"].Type != analysis.FieldTypeDocument {
		t.Fatalf("contract bytes should classify as document, got %s", byName["contract"].Type)
	}
	if !byName["nickname"].IsOptional {
		t.Fatalf("pointer field should be optional")
	}
	if byName["Status"].Type != analysis.FieldTypeEnum {
		t.Fatalf("named string type should classify as enum-like, got %s", byName["Status"].Type)
	}
}

func TestAnalyzer_EmptyAndNilValues(t *testing.T) {
	analyzer := introspect.New()

	empty := analyzer.Analyze(struct{}{})
	if len(empty.Fields) != 0 || empty.Complexity != analysis.ComplexitySimple {
		t.Fatalf("empty record should analyze to empty simple, got %+v", empty)
	}

	nilResult := analyzer.Analyze(nil)
	if len(nilResult.Fields) != 0 || nilResult.Complexity != analysis.ComplexitySimple {
		t.Fatalf("nil should analyze to empty simple, got %+v", nilResult)
	}

	scalar := analyzer.Analyze(42)
	if len(scalar.Fields) != 0 {
		t.Fatalf("scalar should analyze to no fields, got %+v", scalar)
	}
}

type node struct {
	Label    string
	Children []node
	Parent   *node
}

func TestAnalyzer_SelfReferentialTypeTerminates(t *testing.T) {
	got := introspect.New().Analyze(node{})
	if len(got.Fields) != 3 {
		t.Fatalf("want 3 fields, got %d", len(got.Fields))
	}
	if !got.Patterns.IsHierarchical {
		t.Fatalf("self-referential shape should flag hierarchy")
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	analyzer := introspect.New()

	first := analyzer.Analyze(order{Reference: "a"})
	second := analyzer.Analyze(order{Reference: "completely different", Total: 99.5})

	if diff := testsupport.CompareGolden(first, second); diff != "" {
		t.Fatalf("same shape should produce identical analyses (-first +second):\n%s", diff)
	}

	uncached := introspect.New(introspect.WithCacheSize(0)).Analyze(order{})
	if diff := testsupport.CompareGolden(first, uncached); diff != "" {
		t.Fatalf("cache must not change results (-cached +uncached):\n%s", diff)
	}
}

func TestAnalyzer_GoldenSnapshot(t *testing.T) {
	got := introspect.New().Analyze(order{})

	testsupport.WriteGolden(t, "testdata/order_analysis.json", got)
	want := testsupport.MustLoadAnalysis(t, "testdata/order_analysis.json")

	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("analysis drifted from the golden snapshot (-want +got):\n%s", diff)
	}
}

func TestAnalyzer_Collections(t *testing.T) {
	analyzer := introspect.New()

	empty := analyzer.AnalyzeCollection(nil)
	if empty.ItemCount != 0 || empty.CollectionType != analysis.CollectionEmpty {
		t.Fatalf("empty collection: %+v", empty)
	}
	if len(empty.Recommendations) != 0 {
		t.Fatalf("empty collection should carry no recommendations, got %+v", empty.Recommendations)
	}

	items := make([]any, 25)
	for i := range items {
		items[i] = contact{}
	}
	medium := analyzer.AnalyzeCollection(items)
	if medium.CollectionType != analysis.CollectionMedium {
		t.Fatalf("25 items should tier medium, got %s", medium.CollectionType)
	}
	if medium.ItemComplexity != analysis.ComplexitySimple {
		t.Fatalf("contact items should be simple, got %s", medium.ItemComplexity)
	}

	large := analyzer.AnalyzeSlice(make([]contact, 150))
	if large.CollectionType != analysis.CollectionLarge {
		t.Fatalf("150 items should tier large, got %s", large.CollectionType)
	}
	if !hasRecommendationType(large.Recommendations, analysis.RecommendationPerformance) {
		t.Fatalf("large collection should carry a performance recommendation: %+v", large.Recommendations)
	}
}

func TestAnalyzer_AnalyzeSliceDegenerate(t *testing.T) {
	analyzer := introspect.New()

	if got := analyzer.AnalyzeSlice(nil); got.CollectionType != analysis.CollectionEmpty {
		t.Fatalf("nil slice: %+v", got)
	}
	if got := analyzer.AnalyzeSlice("not a slice"); got.CollectionType != analysis.CollectionEmpty {
		t.Fatalf("non-slice value: %+v", got)
	}
}

func fieldIndex(fields []analysis.FieldDescriptor) map[string]analysis.FieldDescriptor {
	out := make(map[string]analysis.FieldDescriptor, len(fields))
	for _, field := range fields {
		out[field.Name] = field
	}
	return out
}

func hasRecommendationType(recs []analysis.Recommendation, kind analysis.RecommendationType) bool {
	for _, rec := range recs {
		if rec.Type == kind {
			return true
		}
	}
	return false
}
