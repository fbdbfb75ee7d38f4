// Package schemas provides JSON Schema validation for persisted and
// imported documents.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// customGraphSchema is the structural contract for the custom graph
// document: both nodes and edges must be present and sequence-typed.
// Anything beyond that is left to the decoder.
const customGraphSchema = `{
	"type": "object",
	"required": ["nodes", "edges"],
	"properties": {
		"nodes": {"type": "array"},
		"edges": {"type": "array"}
	}
}`

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
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

// ValidateCustomGraph validates a custom-graph JSON document against the
// structural contract. A malformed document (including non-JSON input)
// returns a *ValidationError.
func ValidateCustomGraph(doc []byte) error {
	return validate(customGraphSchema, doc)
}

func validate(schema string, doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// Undecodable input fails the contract the same way a wrong
		// shape does.
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Message: err.Error(),
		}}}
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
