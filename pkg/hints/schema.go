package hints

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const overlaySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["profiles"],
  "properties": {
    "profiles": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "hints": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["type"],
              "properties": {
                "type": {"type": "string", "minLength": 1},
                "priority": {"type": "integer"},
                "overridesDefault": {"type": "boolean"},
                "icon": {"type": "string"},
                "data": {
                  "type": "object",
                  "additionalProperties": {"type": "string"}
                }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func overlayValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("hints-overlay.schema.json", overlaySchema)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a raw overlay payload against the embedded schema.
// YAML documents are normalised through a JSON round trip first so the
// validator sees plain maps and slices.
func validateDocument(data []byte, source string) error {
	validator, err := overlayValidator()
	if err != nil {
		return fmt.Errorf("hints: compile overlay schema: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("hints: decode %s: %w", source, err)
		}
		normalised, err := json.Marshal(generic)
		if err != nil {
			return fmt.Errorf("hints: normalise %s: %w", source, err)
		}
		if err := json.Unmarshal(normalised, &instance); err != nil {
			return fmt.Errorf("hints: normalise %s: %w", source, err)
		}
	}

	if err := validator.Validate(instance); err != nil {
		return fmt.Errorf("hints: validate %s: %w", source, err)
	}
	return nil
}
