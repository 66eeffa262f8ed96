// Package schemas validates input documents against the JSON Schemas embedded in the binary.
package schemas

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Name identifies an embedded schema.
type Name string

// Embedded schemas, one per input file.
const (
	JobRequirements Name = "job_requirements"
	Metadata        Name = "metadata"
	Experiences     Name = "experiences"
	Education       Name = "education"
	Projects        Name = "projects"
)

// All lists every embedded schema.
var All = []Name{JobRequirements, Metadata, Experiences, Education, Projects}

func (n Name) file() string {
	return string(n) + ".schema.json"
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Source string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Source != "" {
		fmt.Fprintf(&sb, "validation failed for %s:\n", ve.Source)
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
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

// Source returns the raw text of an embedded schema.
func Source(name Name) (string, error) {
	data, err := schemaFiles.ReadFile(name.file())
	if err != nil {
		return "", &SchemaLoadError{Schema: string(name), Message: "unknown schema", Cause: err}
	}
	return string(data), nil
}

// Validate checks data against the named embedded schema.
func Validate(name Name, data []byte) error {
	return validate(name, string(name), data)
}

// ValidateFile reads path and checks it against the named embedded schema.
func ValidateFile(name Name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("JSON file not found: %s", path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return validate(name, path, data)
}

func validate(name Name, source string, data []byte) error {
	schema, err := Source(name)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &SchemaLoadError{Schema: string(name), Message: "validation could not run", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Source: source,
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
