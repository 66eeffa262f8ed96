package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Text is free-form text that may be written in source files as a string, a
// list of strings, or a bare number. Lists are joined with a single space.
type Text string

// UnmarshalJSON accepts a string, a list of strings, a number or null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(strings.TrimSpace(s))
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err == nil {
		*t = Text(strings.Join(compact(parts), " "))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Text(n.String())
		return nil
	}

	return fmt.Errorf("expected a string or a list of strings, got %s", data)
}

// String returns the text.
func (t Text) String() string {
	return string(t)
}

// Lines is text that is kept as one entry per line. A string value is split
// on newlines; a list value is taken as already split. Blank lines are dropped.
type Lines []string

// UnmarshalJSON accepts a newline-separated string, a list of strings or null.
func (l *Lines) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = SplitLines(s)
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err == nil {
		*l = compact(parts)
		return nil
	}

	return fmt.Errorf("expected a string or a list of strings, got %s", data)
}

// SplitLines splits text on newlines, trimming each line and dropping blanks.
func SplitLines(text string) Lines {
	return compact(strings.Split(text, "\n"))
}

func compact(parts []string) []string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return kept
}
