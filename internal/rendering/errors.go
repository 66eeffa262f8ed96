// Package rendering turns a fitted resume document into LaTeX source.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-curator/internal/document"
)

// TemplateError reports a LaTeX template that could not be found, read or
// used. Source is the template file path or the built-in layout name.
// Placeholder is set when the template lacks a required placeholder.
type TemplateError struct {
	Source      string
	Placeholder string
	Message     string
	Cause       error
}

func (e *TemplateError) Error() string {
	var sb strings.Builder
	sb.WriteString("template error")
	if e.Source != "" {
		fmt.Fprintf(&sb, " (%s)", e.Source)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Placeholder != "" {
		fmt.Fprintf(&sb, " %s", e.Placeholder)
	}
	if e.Cause != nil {
		fmt.Fprintf(&sb, ": %v", e.Cause)
	}
	return sb.String()
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError reports a document that could not be rendered into the
// template for its layout.
type RenderError struct {
	Layout  document.Template
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	prefix := "render error"
	if e.Layout != "" {
		prefix = fmt.Sprintf("render error (%s)", e.Layout)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
