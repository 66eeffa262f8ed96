package sections

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/types"
)

const ellipsis = "..."

// Project is a side project with a single description paragraph.
type Project struct {
	name        string
	description string
	startDate   string
	endDate     string
	tags        types.Tags
	score       int

	metrics    layout.Metrics
	lineLength int
}

// NewProject builds an entry from a raw record. An empty description is rejected.
func NewProject(rec types.ProjectRecord, score int, m layout.Metrics) (*Project, error) {
	rec.Name = strings.TrimSpace(rec.Name)
	rec.Description = types.Text(strings.TrimSpace(string(rec.Description)))
	if err := checkRecord("project", rec.Name, rec); err != nil {
		return nil, err
	}

	p := &Project{
		name:        rec.Name,
		description: string(rec.Description),
		startDate:   strings.TrimSpace(rec.StartDate),
		endDate:     strings.TrimSpace(rec.EndDate),
		tags:        rec.Tags,
		score:       score,
		metrics:     m,
	}
	p.recalculate()
	return p, nil
}

func (p *Project) Name() string        { return p.name }
func (p *Project) Description() string { return p.description }
func (p *Project) StartDate() string   { return p.startDate }
func (p *Project) EndDate() string     { return p.endDate }
func (p *Project) Tags() types.Tags    { return p.tags }
func (p *Project) RelevanceScore() int { return p.score }
func (p *Project) LineLength() int     { return p.lineLength }

// DescriptionLength is the description length in characters.
func (p *Project) DescriptionLength() int {
	return utf8.RuneCountInString(p.description)
}

// TruncateDescription shortens the description to at most maxChars
// characters, ending it with "..." when it was cut. It reports whether the
// description changed.
func (p *Project) TruncateDescription(maxChars int) bool {
	if maxChars < 0 {
		maxChars = 0
	}
	if p.DescriptionLength() <= maxChars {
		return false
	}

	if maxChars <= len(ellipsis) {
		p.description = ellipsis[:maxChars]
	} else {
		runes := []rune(p.description)
		p.description = string(runes[:maxChars-len(ellipsis)]) + ellipsis
	}
	p.recalculate()
	return true
}

func (p *Project) recalculate() {
	p.lineLength = titleLines + p.metrics.TextToLines(p.description)
}

// ToMap returns the entry as a neutral map.
func (p *Project) ToMap() map[string]any {
	return map[string]any{
		"name":            p.name,
		"description":     p.description,
		"start_date":      p.startDate,
		"end_date":        p.endDate,
		"relevance_score": p.score,
		"line_length":     p.lineLength,
	}
}
