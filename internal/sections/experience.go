package sections

import (
	"strings"

	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/types"
)

// titleLines is the fixed cost of an entry's company/title row.
const titleLines = 1

// Experience is a job, internship or competition with its bullet points.
// Bullets can only be removed from the end, by TrimToLines.
type Experience struct {
	company   string
	title     string
	startDate string
	endDate   string
	location  string
	bullets   []string
	tags      types.Tags
	score     int

	metrics    layout.Metrics
	lineLength int
}

// NewExperience builds an entry from a raw record. A record without bullets is rejected.
func NewExperience(rec types.ExperienceRecord, score int, m layout.Metrics) (*Experience, error) {
	rec.Company = strings.TrimSpace(rec.Company)
	rec.Title = strings.TrimSpace(rec.Title)
	rec.Description = types.SplitLines(strings.Join(rec.Description, "\n"))
	name := rec.Company
	if name == "" {
		name = rec.Name
	}
	if err := checkRecord("experience", name, rec); err != nil {
		return nil, err
	}

	e := &Experience{
		company:   rec.Company,
		title:     rec.Title,
		startDate: strings.TrimSpace(rec.StartDate),
		endDate:   strings.TrimSpace(rec.EndDate),
		location:  strings.TrimSpace(rec.Location),
		bullets:   append([]string(nil), rec.Description...),
		tags:      rec.Tags,
		score:     score,
		metrics:   m,
	}
	e.recalculate()
	return e, nil
}

func (e *Experience) Company() string     { return e.company }
func (e *Experience) Title() string       { return e.title }
func (e *Experience) StartDate() string   { return e.startDate }
func (e *Experience) EndDate() string     { return e.endDate }
func (e *Experience) Location() string    { return e.location }
func (e *Experience) Tags() types.Tags    { return e.tags }
func (e *Experience) RelevanceScore() int { return e.score }
func (e *Experience) LineLength() int     { return e.lineLength }

// Bullets returns a copy of the remaining bullets.
func (e *Experience) Bullets() []string {
	return append([]string(nil), e.bullets...)
}

// TrimToLines drops trailing bullets until the entry costs at most target
// lines or no bullets remain. It returns the number of bullets removed.
func (e *Experience) TrimToLines(target int) int {
	removed := 0
	for e.lineLength > target && len(e.bullets) > 0 {
		e.bullets = e.bullets[:len(e.bullets)-1]
		removed++
		e.recalculate()
	}
	return removed
}

func (e *Experience) recalculate() {
	total := titleLines
	for _, b := range e.bullets {
		total += e.metrics.TextToLines(b)
	}
	e.lineLength = total
}

// ToMap returns the entry as a neutral map.
func (e *Experience) ToMap() map[string]any {
	return map[string]any{
		"company":         e.company,
		"title":           e.title,
		"start_date":      e.startDate,
		"end_date":        e.endDate,
		"location":        optional(e.location),
		"bullets":         e.Bullets(),
		"relevance_score": e.score,
		"line_length":     e.lineLength,
	}
}
