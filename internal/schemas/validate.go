// Package schemas provides JSON Schema validation for structured LLM output.
// Schemas are embedded at compile time and applied before any generated
// payload is merged into a document.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/reco/reco-builder/internal/types"
)

//go:embed skill_suggestions.json
var skillSuggestionsSchema string

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

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSONString validates JSON content against schema content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Schema:  "(string schema)",
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

// ParseSkillSuggestions validates and decodes a generated skill payload.
// The payload must carry exactly the three fixed skill categories, each an
// array of strings.
func ParseSkillSuggestions(jsonContent string) (types.Skills, error) {
	if err := ValidateJSONString(skillSuggestionsSchema, jsonContent); err != nil {
		return nil, err
	}

	var payload struct {
		Technical []string `json:"technical"`
		Soft      []string `json:"soft"`
		Languages []string `json:"languages"`
	}
	if err := json.Unmarshal([]byte(jsonContent), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode skill suggestions: %w", err)
	}

	return types.Skills{
		types.SkillTechnical: payload.Technical,
		types.SkillSoft:      payload.Soft,
		types.SkillLanguages: payload.Languages,
	}, nil
}
