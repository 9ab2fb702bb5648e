package managers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SnapshotSchema is the JSON Schema (Draft-7) every encoded Snapshot must satisfy
const SnapshotSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["counter_mode", "failure_policy", "factory_attempts", "managers"],
  "properties": {
    "counter_mode": {"enum": ["shared", "independent"]},
    "failure_policy": {"enum": ["permanent", "retry"]},
    "factory_attempts": {
      "type": "object",
      "additionalProperties": {"type": "integer", "minimum": 0}
    },
    "managers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "state", "attempts"],
        "properties": {
          "name": {"enum": ["manager1", "manager2", "manager3", "manager4"]},
          "state": {"enum": ["uninitialized", "ready", "ready_without_resource", "failed", "released"]},
          "attempts": {"type": "integer", "minimum": 0},
          "instance_id": {"type": "string", "format": "uuid"},
          "resource": {"type": "string"},
          "error": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  }
}`

var snapshotSchemaLoader = gojsonschema.NewStringLoader(SnapshotSchema)

// SchemaValidationError represents errors that occur during JSON schema validation
type SchemaValidationError struct {
	Type    string `json:"type"`
	Details string `json:"details"`
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("Schema validation failed: %s", e.Details)
}

// ValidateSnapshot checks a snapshot against SnapshotSchema
func ValidateSnapshot(s *Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return &SchemaValidationError{
			Type:    "InvalidJson",
			Details: fmt.Sprintf("Failed to marshal snapshot for validation: %v", err),
		}
	}
	return ValidateSnapshotJSON(data)
}

// ValidateSnapshotJSON checks an encoded snapshot against SnapshotSchema
func ValidateSnapshotJSON(data []byte) error {
	result, err := gojsonschema.Validate(snapshotSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaValidationError{
			Type:    "SchemaCompilation",
			Details: fmt.Sprintf("Failed to validate schema: %v", err),
		}
	}

	if !result.Valid() {
		var errorDetails []string
		for _, desc := range result.Errors() {
			errorDetails = append(errorDetails, fmt.Sprintf("  - %s", desc))
		}
		return &SchemaValidationError{
			Type:    "SnapshotValidation",
			Details: strings.Join(errorDetails, "\n"),
		}
	}
	return nil
}
