package report_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/capability"
	"github.com/goliatone/go-adaptive/pkg/presenter"
	"github.com/goliatone/go-adaptive/pkg/report"
	"github.com/goliatone/go-adaptive/pkg/strategy"
)

func samplePresentation() presenter.Presentation {
	collection := analysis.CollectionAnalysis{
		ItemCount:      150,
		CollectionType: analysis.CollectionLarge,
		ItemComplexity: analysis.ComplexityModerate,
	}
	return presenter.Presentation{
		Analysis: analysis.DataAnalysis{
			Fields: []analysis.FieldDescriptor{
				{Name: "title", Type: analysis.FieldTypeString},
				{Name: "published", Type: analysis.FieldTypeDate},
			},
			Patterns:   analysis.Patterns{HasDates: true},
			Complexity: analysis.ComplexityModerate,
		},
		Collection: &collection,
		Recommendations: []analysis.Recommendation{
			{Type: analysis.RecommendationPerformance, Description: "virtualize rendering"},
		},
		Layout:    strategy.LayoutStrategy{Columns: 3, Spacing: 16, Reasoning: "width 1024 supports 3 columns"},
		Expansion: strategy.ExpansionStrategy{Primary: strategy.ExpandPress, ExpansionScale: 1.1, AnimationDuration: 0.25},
		Capabilities: capability.Snapshot{
			Platform: capability.PlatformIOS,
			Device:   capability.DevicePad,
		},
	}
}

func TestRenderer_EmbeddedTemplate(t *testing.T) {
	renderer, err := report.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(samplePresentation())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"ios/pad",
		"2 field(s)",
		"moderate",
		"contains date fields",
		"150 item(s)",
		"3 column(s)",
		"width 1024 supports 3 columns",
		"primary=press",
		"virtualize rendering",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderer_OmitsEmptySections(t *testing.T) {
	renderer, err := report.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	p := samplePresentation()
	p.Collection = nil
	p.Recommendations = nil
	p.Analysis.Patterns = analysis.Patterns{}

	out, err := renderer.Render(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "Collection:") {
		t.Errorf("collection section should be omitted:\n%s", out)
	}
	if strings.Contains(out, "Recommendations:") {
		t.Errorf("recommendations section should be omitted:\n%s", out)
	}
	if strings.Contains(out, "contains date fields") {
		t.Errorf("pattern lines should be omitted when flags are clear:\n%s", out)
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"presentation.tpl": &fstest.MapFile{Data: []byte("cols={{ layout.Columns }} on {{ device }}")},
	}

	renderer, err := report.New(report.WithFS(fsys))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(samplePresentation())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "cols=3 on pad" {
		t.Fatalf("custom template output: %q", out)
	}
}

func TestRenderer_GlobalData(t *testing.T) {
	fsys := fstest.MapFS{
		"presentation.tpl": &fstest.MapFile{Data: []byte("{{ app }}: {{ complexity }}")},
	}

	renderer, err := report.New(
		report.WithFS(fsys),
		report.WithGlobalData(map[string]any{"app": "inspector"}),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(samplePresentation())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "inspector: moderate" {
		t.Fatalf("global data should reach the template: %q", out)
	}
}

func TestRenderer_MissingTemplate(t *testing.T) {
	renderer, err := report.New(report.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(samplePresentation()); err == nil {
		t.Fatalf("missing template must surface an error")
	}
}
