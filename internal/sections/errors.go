// Package sections holds the resume section entities and their line costs.
package sections

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InvalidRecordError reports a raw record that cannot become a section entry.
type InvalidRecordError struct {
	Kind    string // header, experience, project, education
	Group   string // source list, e.g. work_experience
	Index   int    // position within Group, -1 when unknown
	Name    string // best available identifier of the record
	Field   string
	Message string
	Cause   error
}

func (e *InvalidRecordError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid ")
	sb.WriteString(e.Kind)
	if e.Group != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Group)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&sb, " #%d", e.Index)
	}
	if e.Name != "" {
		fmt.Fprintf(&sb, " (%s)", e.Name)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, ": field %s", e.Field)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&sb, ": %v", e.Cause)
	}
	return sb.String()
}

func (e *InvalidRecordError) Unwrap() error {
	return e.Cause
}

// Locate fills in where a record came from. It returns err unchanged when it
// is not an InvalidRecordError.
func Locate(err error, group string, index int) error {
	var invalid *InvalidRecordError
	if errors.As(err, &invalid) {
		invalid.Group = group
		invalid.Index = index
	}
	return err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names so errors match the files the candidate wrote.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// checkRecord runs struct validation and converts the first failure into an InvalidRecordError.
func checkRecord(kind, name string, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	invalid := &InvalidRecordError{Kind: kind, Index: -1, Name: name}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		invalid.Field = fieldErrs[0].Field()
		invalid.Message = describeTag(fieldErrs[0].Tag())
		return invalid
	}
	invalid.Message = "record failed validation"
	invalid.Cause = err
	return invalid
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "missing required value"
	case "min":
		return "must not be empty"
	default:
		return "failed " + tag + " check"
	}
}
