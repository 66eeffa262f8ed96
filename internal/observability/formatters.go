// Package observability provides formatted summaries for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-curator/internal/document"
	"github.com/jonathan/resume-curator/internal/ranking"
	"github.com/jonathan/resume-curator/internal/sections"
	"github.com/jonathan/resume-curator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer writes boxed, human-readable summaries
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to at most width runes, marking the cut with "...".
func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintJobRequirements outputs the requirement lists the resume is scored against.
func (p *Printer) PrintJobRequirements(job *types.JobRequirements) {
	if job == nil {
		return
	}

	var sb strings.Builder
	if job.JobTitle != "" {
		fmt.Fprintf(&sb, "Role:        %s\n", job.JobTitle)
	}
	if job.JobLocation != "" {
		fmt.Fprintf(&sb, "Location:    %s\n", job.JobLocation)
	}
	fmt.Fprintf(&sb, "Languages:   %s\n", listOrDash(job.ProgrammingLanguages))
	fmt.Fprintf(&sb, "Frameworks:  %s\n", listOrDash(job.Frameworks))
	fmt.Fprintf(&sb, "Tools:       %s", listOrDash(job.Tools))

	p.printBox("JOB REQUIREMENTS", sb.String())
}

// PrintRankedExperiences outputs the top experiences with their scores and matched tags.
func (p *Printer) PrintRankedExperiences(entries []*sections.Experience, job *types.JobRequirements) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total experiences ranked: %d\n\n", len(entries))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		fmt.Fprintf(&sb, "#%d  %s, %s\n", i+1, e.Title(), e.Company())
		fmt.Fprintf(&sb, "    Score: %d  Lines: %d\n", e.RelevanceScore(), e.LineLength())
		if matched := ranking.MatchedTags(e.Tags(), job.Tags()); len(matched) > 0 {
			fmt.Fprintf(&sb, "    Matched: %s\n", strings.Join(matched, ", "))
		}
	}
	if len(entries) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more", len(entries)-maxItemsToShow)
	}

	p.printBox("RANKED EXPERIENCES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedProjects outputs the top projects with their scores.
func (p *Printer) PrintRankedProjects(entries []*sections.Project) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		fmt.Fprintf(&sb, "#%d  %s (score %d, %d lines)\n", i+1, e.Name(), e.RelevanceScore(), e.LineLength())
	}
	if len(entries) > maxItemsToShow {
		fmt.Fprintf(&sb, "... and %d more", len(entries)-maxItemsToShow)
	}

	p.printBox("RANKED PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFitStatus outputs how the document compares to its page budget and what was trimmed.
func (p *Printer) PrintFitStatus(status document.Status) {
	var sb strings.Builder

	verdict := "✅ fits"
	if !status.Fits {
		verdict = fmt.Sprintf("⚠ over by %d line(s)", status.Shortfall)
	}
	fmt.Fprintf(&sb, "Template:    %s\n", status.Template)
	fmt.Fprintf(&sb, "Lines:       %d / %d (%d page(s))\n", status.LineLength, status.PermittedLineLength, status.PageLimit)
	if status.Template == document.TwoColumn {
		fmt.Fprintf(&sb, "Columns:     left %d, right %d\n", status.LeftColumn, status.RightColumn)
	}
	fmt.Fprintf(&sb, "Result:      %s\n", verdict)

	r := status.Report
	if r.Changed() {
		sb.WriteString("\n")
		if len(r.ProjectsTruncated) > 0 {
			fmt.Fprintf(&sb, "Shortened:   %s\n", strings.Join(r.ProjectsTruncated, ", "))
		}
		if len(r.ProjectsDropped) > 0 {
			fmt.Fprintf(&sb, "Dropped:     %s\n", strings.Join(r.ProjectsDropped, ", "))
		}
		if r.BulletsRemoved > 0 {
			fmt.Fprintf(&sb, "Bullets cut: %d\n", r.BulletsRemoved)
		}
	}

	p.printBox("PAGE FIT", strings.TrimSuffix(sb.String(), "\n"))
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
