// Package openapi derives data analyses from OpenAPI schema documents, so
// applications that describe their records in a contract rather than Go types
// get the same introspection output. The public surface keeps kin-openapi
// hidden from consumers.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	internalanalysis "github.com/goliatone/go-adaptive/internal/analysis"
	"github.com/goliatone/go-adaptive/pkg/analysis"
)

const maxSchemaDepth = 4

// Analyzer walks OpenAPI component schemas into DataAnalysis values.
type Analyzer struct {
	spec *openapi3.T
}

// Load parses a raw OpenAPI document. The payload may be JSON or YAML.
func Load(ctx context.Context, payload []byte) (*Analyzer, error) {
	if ctx == nil {
		return nil, errors.New("openapi: context is required")
	}
	if len(payload) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(payload)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return &Analyzer{spec: spec}, nil
}

// SchemaNames lists the component schemas available for analysis, sorted.
func (a *Analyzer) SchemaNames() []string {
	if a == nil || a.spec == nil || a.spec.Components == nil {
		return nil
	}
	names := make([]string, 0, len(a.spec.Components.Schemas))
	for name := range a.spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Analyze produces the analysis for a named component schema.
func (a *Analyzer) Analyze(name string) (analysis.DataAnalysis, error) {
	if a == nil || a.spec == nil {
		return analysis.DataAnalysis{}, errors.New("openapi: analyzer is not initialised")
	}
	if a.spec.Components == nil {
		return analysis.DataAnalysis{}, fmt.Errorf("openapi: schema %q not found", name)
	}
	ref, ok := a.spec.Components.Schemas[name]
	if !ok {
		return analysis.DataAnalysis{}, fmt.Errorf("openapi: schema %q not found", name)
	}

	fields, depth := walkSchema(ref, 0)
	patterns := internalanalysis.DerivePatterns(fields)
	return analysis.DataAnalysis{
		Fields:     fields,
		Patterns:   patterns,
		Complexity: internalanalysis.ScoreComplexity(len(fields), patterns, depth),
	}, nil
}

func walkSchema(ref *openapi3.SchemaRef, depth int) ([]analysis.FieldDescriptor, int) {
	if ref == nil || ref.Value == nil || depth >= maxSchemaDepth {
		return nil, depth
	}

	required := make(map[string]struct{}, len(ref.Value.Required))
	for _, name := range ref.Value.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]analysis.FieldDescriptor, 0, len(names))
	maxDepth := depth

	for _, name := range names {
		prop := ref.Value.Properties[name]
		desc, nested := classifyProperty(name, prop, depth)
		_, isRequired := required[name]
		desc.IsOptional = !isRequired
		fields = append(fields, desc)
		if nested > maxDepth {
			maxDepth = nested
		}
	}

	return fields, maxDepth
}

func classifyProperty(name string, ref *openapi3.SchemaRef, depth int) (analysis.FieldDescriptor, int) {
	desc := analysis.FieldDescriptor{Name: name, Type: analysis.FieldTypeString}
	if ref == nil || ref.Value == nil {
		return desc, depth
	}

	value := ref.Value
	schemaType := firstType(value.Type)

	if len(value.Enum) > 0 {
		desc.Type = analysis.FieldTypeEnum
		return desc, depth
	}

	switch schemaType {
	case "string":
		desc.Type = classifyStringFormat(name, value.Format)
	case "integer", "number":
		desc.Type = analysis.FieldTypeNumber
	case "boolean":
		desc.Type = analysis.FieldTypeBoolean
	case "object":
		desc.Type = analysis.FieldTypeNestedRecord
		_, nested := walkSchema(ref, depth+1)
		return desc, nested
	case "array":
		desc.IsArray = true
		elemType, nested := classifyElement(name, value.Items, depth)
		desc.Type = elemType
		return desc, nested
	}

	return desc, depth
}

func classifyElement(name string, items *openapi3.SchemaRef, depth int) (analysis.FieldType, int) {
	if items == nil || items.Value == nil {
		return analysis.FieldTypeString, depth
	}
	switch firstType(items.Value.Type) {
	case "object":
		_, nested := walkSchema(items, depth+1)
		return analysis.FieldTypeCollection, nested
	case "array":
		return analysis.FieldTypeCollection, depth + 1
	case "integer", "number":
		return analysis.FieldTypeNumber, depth
	case "boolean":
		return analysis.FieldTypeBoolean, depth
	default:
		return classifyStringFormat(name, items.Value.Format), depth
	}
}

// classifyStringFormat applies the same precedence the reflection walker uses:
// identifier formats first, then temporal, then URL and media formats.
func classifyStringFormat(name, format string) analysis.FieldType {
	switch strings.ToLower(format) {
	case "uuid":
		return analysis.FieldTypeUUID
	case "date", "date-time", "datetime":
		return analysis.FieldTypeDate
	case "uri", "url":
		return analysis.FieldTypeURL
	case "binary", "byte":
		return mediaTypeForName(name)
	default:
		return analysis.FieldTypeString
	}
}

var imageNameHints = []string{"image", "photo", "picture", "avatar", "thumbnail", "icon"}

func mediaTypeForName(name string) analysis.FieldType {
	lowered := strings.ToLower(name)
	for _, hint := range imageNameHints {
		if strings.Contains(lowered, hint) {
			return analysis.FieldTypeImage
		}
	}
	return analysis.FieldTypeDocument
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
