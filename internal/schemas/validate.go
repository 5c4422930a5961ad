// Package schemas provides JSON Schema validation for the request envelope
// before it is decoded into typed structs.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// applicationInputSchema constrains the wire shape of the scoring request:
// the candidate and jobs envelope, and in particular job_id, which may be
// any JSON scalar but never an object or array.
const applicationInputSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["candidate", "jobs"],
  "properties": {
    "candidate": {
      "type": "object",
      "required": ["skills", "preferred_locations", "preferred_roles", "expected_salary", "experience_years"],
      "properties": {
        "skills": {"type": "array", "items": {"type": "string"}},
        "preferred_locations": {"type": "array", "items": {"type": "string"}},
        "preferred_roles": {"type": "array", "items": {"type": "string"}},
        "expected_salary": {"type": "integer"},
        "experience_years": {"type": "integer"}
      }
    },
    "jobs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["job_id", "required_skills", "location"],
        "properties": {
          "job_id": {"type": ["string", "number", "boolean", "null"]},
          "required_skills": {"type": "array", "items": {"type": "string"}},
          "location": {"type": "string"},
          "salary_range": {"type": ["array", "null"], "items": {"type": "integer"}},
          "experience_required": {"type": ["string", "null"]},
          "title": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema or document
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateApplicationInput validates a raw request body against the
// application-input schema. Returns a *ValidationError listing every failed
// field, or a *SchemaLoadError if the body could not be parsed at all.
func ValidateApplicationInput(body []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(applicationInputSchema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
