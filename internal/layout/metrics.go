// Package layout converts text and page counts into rendered line counts.
//
// Line costs are estimated from a fixed characters-per-line wrap width rather
// than real typesetting, so the same text always costs the same number of lines.
package layout

import (
	"strings"
	"unicode/utf8"
)

const (
	// CharsPerLine is the default wrap width used to estimate rendered lines.
	CharsPerLine = 80
	// LinesPerPage is the number of lines a single page can hold.
	LinesPerPage = 45
)

// Metrics estimates line costs for a given wrap width.
// The zero value behaves like Default.
type Metrics struct {
	CharsPerLine int
}

// Default is the metrics used when no wrap width is configured.
var Default = Metrics{CharsPerLine: CharsPerLine}

// New returns Metrics for the given wrap width. Non-positive widths fall back to CharsPerLine.
func New(charsPerLine int) Metrics {
	if charsPerLine <= 0 {
		charsPerLine = CharsPerLine
	}
	return Metrics{CharsPerLine: charsPerLine}
}

// Width returns the effective wrap width.
func (m Metrics) Width() int {
	if m.CharsPerLine <= 0 {
		return CharsPerLine
	}
	return m.CharsPerLine
}

// CharsToLines returns how many wrapped lines a run of chars occupies.
func (m Metrics) CharsToLines(chars int) int {
	if chars <= 0 {
		return 0
	}
	width := m.Width()
	return (chars + width - 1) / width
}

// TextToLines returns the total wrapped lines of text. Each newline-separated
// segment is wrapped on its own and a blank segment still takes one line.
// Whitespace-only text costs nothing.
func (m Metrics) TextToLines(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	total := 0
	for _, segment := range strings.Split(text, "\n") {
		if segment == "" {
			total++
			continue
		}
		total += m.CharsToLines(utf8.RuneCountInString(segment))
	}
	return total
}

// PageToLines returns the line budget for a number of pages.
func PageToLines(pages int) int {
	if pages <= 0 {
		return 0
	}
	return pages * LinesPerPage
}

// LinesToPages returns the number of whole pages needed to hold lines.
func LinesToPages(lines int) int {
	if lines <= 0 {
		return 0
	}
	return (lines + LinesPerPage - 1) / LinesPerPage
}

// CharsToLines wraps chars at the default width.
func CharsToLines(chars int) int {
	return Default.CharsToLines(chars)
}

// TextToLines wraps text at the default width.
func TextToLines(text string) int {
	return Default.TextToLines(text)
}
