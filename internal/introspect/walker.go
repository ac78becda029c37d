package introspect

import (
	"image"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-adaptive/internal/analysis"
)

// DefaultMaxDepth bounds recursion into nested records. Self-referential types
// terminate at this depth instead of looping.
const DefaultMaxDepth = 4

var (
	uuidType  = reflect.TypeOf(uuid.UUID{})
	timeType  = reflect.TypeOf(time.Time{})
	urlType   = reflect.TypeOf(url.URL{})
	imageType = reflect.TypeOf((*image.Image)(nil)).Elem()
)

// Walker converts Go types into field descriptor lists. The walk is a pure
// function of the reflect.Type, so two values of the same type always produce
// identical descriptors.
type Walker struct {
	maxDepth int
}

// NewWalker constructs a walker with the supplied depth bound. Non-positive
// bounds fall back to DefaultMaxDepth.
func NewWalker(maxDepth int) *Walker {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Walker{maxDepth: maxDepth}
}

// Walk produces the descriptors and the maximum nested-record depth reached
// for the supplied type. Nil and non-record types yield an empty field list.
func (w *Walker) Walk(t reflect.Type) ([]analysis.FieldDescriptor, int) {
	t = unwrap(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, 0
	}
	return w.walkStruct(t, 0)
}

func (w *Walker) walkStruct(t reflect.Type, depth int) ([]analysis.FieldDescriptor, int) {
	if depth >= w.maxDepth {
		return nil, depth
	}

	fields := make([]analysis.FieldDescriptor, 0, t.NumField())
	maxDepth := depth

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, skip := fieldName(sf)
		if skip {
			continue
		}

		desc, nested := w.classifyField(name, sf.Type, depth)
		fields = append(fields, desc)
		if nested > maxDepth {
			maxDepth = nested
		}
	}

	return fields, maxDepth
}

// classifyField applies the fixed precedence: well-known identifier and
// date/url types first, media hints next, then containers, then scalar kinds.
func (w *Walker) classifyField(name string, t reflect.Type, depth int) (analysis.FieldDescriptor, int) {
	desc := analysis.FieldDescriptor{Name: name}
	maxDepth := depth

	if t.Kind() == reflect.Ptr {
		desc.IsOptional = true
		t = t.Elem()
	}

	switch {
	case t == uuidType || isUUIDLike(t):
		desc.Type = analysis.FieldTypeUUID
	case t == timeType:
		desc.Type = analysis.FieldTypeDate
	case t == urlType:
		desc.Type = analysis.FieldTypeURL
	case t.Implements(imageType):
		desc.Type = analysis.FieldTypeImage
	case isByteSlice(t):
		desc.Type = mediaTypeForName(name)
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		desc.IsArray = true
		desc.Type, maxDepth = w.classifyElement(name, t.Elem(), depth)
	case t.Kind() == reflect.Struct:
		desc.Type = analysis.FieldTypeNestedRecord
		_, maxDepth = w.walkStruct(t, depth+1)
	case t.Kind() == reflect.Map:
		desc.Type = analysis.FieldTypeNestedRecord
		if depth+1 > maxDepth {
			maxDepth = depth + 1
		}
	case t.Kind() == reflect.String:
		if t.Name() != "" && t.PkgPath() != "" {
			// Named string types are conventionally closed enumerations.
			desc.Type = analysis.FieldTypeEnum
		} else {
			desc.Type = analysis.FieldTypeString
		}
	case isNumeric(t.Kind()):
		desc.Type = analysis.FieldTypeNumber
	case t.Kind() == reflect.Bool:
		desc.Type = analysis.FieldTypeBoolean
	default:
		desc.Type = analysis.FieldTypeString
	}

	return desc, maxDepth
}

func (w *Walker) classifyElement(name string, elem reflect.Type, depth int) (analysis.FieldType, int) {
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	switch {
	case elem == uuidType || isUUIDLike(elem):
		return analysis.FieldTypeUUID, depth
	case elem == timeType:
		return analysis.FieldTypeDate, depth
	case elem.Kind() == reflect.Struct:
		// A repeated record is a relationship to another entity.
		_, nested := w.walkStruct(elem, depth+1)
		return analysis.FieldTypeCollection, nested
	case elem.Kind() == reflect.Slice, elem.Kind() == reflect.Map:
		return analysis.FieldTypeCollection, depth + 1
	case elem.Kind() == reflect.String:
		return analysis.FieldTypeString, depth
	case isNumeric(elem.Kind()):
		return analysis.FieldTypeNumber, depth
	case elem.Kind() == reflect.Bool:
		return analysis.FieldTypeBoolean, depth
	default:
		return analysis.FieldTypeString, depth
	}
}

func fieldName(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name, false
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", true
	case "":
		return sf.Name, false
	default:
		return name, false
	}
}

func unwrap(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func isUUIDLike(t reflect.Type) bool {
	return t.Kind() == reflect.Array && t.Len() == 16 && t.Elem().Kind() == reflect.Uint8 && t.Name() != ""
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 && t.Elem().Name() == "uint8"
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

var imageNameHints = []string{"image", "photo", "picture", "avatar", "thumbnail", "icon"}

// mediaTypeForName distinguishes image payloads from generic document blobs
// using the field name, which is part of the analysed shape.
func mediaTypeForName(name string) analysis.FieldType {
	lowered := strings.ToLower(name)
	for _, hint := range imageNameHints {
		if strings.Contains(lowered, hint) {
			return analysis.FieldTypeImage
		}
	}
	return analysis.FieldTypeDocument
}
