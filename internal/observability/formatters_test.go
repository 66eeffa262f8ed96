package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-curator/internal/document"
	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/sections"
	"github.com/jonathan/resume-curator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJobRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirements(&types.JobRequirements{
		JobTitle:             "Backend Engineer",
		ProgrammingLanguages: []string{"Go", "Python"},
		Tools:                []string{"Docker"},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENTS")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Go, Python")
	assert.Contains(t, output, "Frameworks:  -")
}

func TestPrintJobRequirements_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobRequirements(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankedExperiences(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var entries []*sections.Experience
	for i := 0; i < 7; i++ {
		e, err := sections.NewExperience(types.ExperienceRecord{
			Company: "Acme", Title: "Engineer", StartDate: "2020", EndDate: "2021",
			Description: types.Lines{"Did things"},
			Tags:        types.Tags{Languages: []string{"go"}},
		}, 1, layout.Default)
		require.NoError(t, err)
		entries = append(entries, e)
	}

	p.PrintRankedExperiences(entries, &types.JobRequirements{ProgrammingLanguages: []string{"Go"}})
	output := buf.String()

	assert.Contains(t, output, "RANKED EXPERIENCES")
	assert.Contains(t, output, "Total experiences ranked: 7")
	assert.Contains(t, output, "#1  Engineer, Acme")
	assert.Contains(t, output, "Matched: Go")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "#6")
}

func TestPrintRankedProjects_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRankedProjects(nil)
	assert.Empty(t, buf.String())
}

func TestPrintFitStatus(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintFitStatus(document.Status{
			Template: document.SingleColumn, LineLength: 40, PermittedLineLength: 45, PageLimit: 1, Fits: true,
		})
		assert.Contains(t, buf.String(), "40 / 45")
		assert.Contains(t, buf.String(), "fits")
		assert.NotContains(t, buf.String(), "Dropped")
	})

	t.Run("over budget with report", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintFitStatus(document.Status{
			Template: document.TwoColumn, LineLength: 50, PermittedLineLength: 45, PageLimit: 1,
			Shortfall: 5, LeftColumn: 10, RightColumn: 46,
			Report: document.Report{ProjectsDropped: []string{"Old"}, BulletsRemoved: 3},
		})
		output := buf.String()
		assert.Contains(t, output, "over by 5 line(s)")
		assert.Contains(t, output, "left 10, right 46")
		assert.Contains(t, output, "Dropped:     Old")
		assert.Contains(t, output, "Bullets cut: 3")
	})
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	output := buf.String()

	assert.Contains(t, output, "┌")
	assert.Contains(t, output, "└")
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, strings.Repeat("é", 57))
}
