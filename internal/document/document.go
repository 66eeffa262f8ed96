package document

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/ranking"
)

// State is where a document is in its fitting lifecycle.
type State int

const (
	// StateAssembled is a freshly built document that has not been optimized.
	StateAssembled State = iota
	// StateFitting is set while Optimize runs.
	StateFitting
	// StateFitted is terminal; Optimize becomes a no-op.
	StateFitted
)

func (s State) String() string {
	switch s {
	case StateAssembled:
		return "assembled"
	case StateFitting:
		return "fitting"
	case StateFitted:
		return "fitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	// projectDescriptionLimit is the length long project descriptions are cut to first.
	projectDescriptionLimit = 80
	// minExperienceLines keeps a title and one bullet line when trimming an experience.
	minExperienceLines = 2
)

// ErrNotFitted is returned by operations that need an optimized document.
var ErrNotFitted = errors.New("document has not been optimized")

// Document is a resume bound to a layout and a line budget.
// It is not safe for concurrent use.
type Document struct {
	content    Content
	layout     Layout
	budget     int
	pageLimit  int
	lineLength int
	state      State
	report     Report
}

// New builds a document for a template with a budget of pageLimit pages.
func New(content Content, t Template, pageLimit int) (*Document, error) {
	if pageLimit < 1 {
		return nil, fmt.Errorf("page limit must be positive, got %d", pageLimit)
	}
	l, err := LayoutFor(t)
	if err != nil {
		return nil, err
	}
	d, err := NewWithBudget(content, l, layout.PageToLines(pageLimit))
	if err != nil {
		return nil, err
	}
	d.pageLimit = pageLimit
	return d, nil
}

// NewWithBudget builds a document with an explicit line budget.
func NewWithBudget(content Content, l Layout, budget int) (*Document, error) {
	if content.Header == nil {
		return nil, errors.New("document requires a header")
	}
	if content.Skills == nil {
		return nil, errors.New("document requires a skills block")
	}
	if l == nil {
		return nil, errors.New("document requires a layout")
	}
	if budget < 0 {
		return nil, fmt.Errorf("line budget must not be negative, got %d", budget)
	}

	d := &Document{
		content:   content,
		layout:    l,
		budget:    budget,
		pageLimit: layout.LinesToPages(budget),
		state:     StateAssembled,
	}
	d.recalculate()
	return d, nil
}

// Template returns the layout's template name.
func (d *Document) Template() Template { return d.layout.Template() }

// Content returns the document's sections. Callers must not mutate them.
func (d *Document) Content() Content { return d.content }

// State returns the lifecycle state.
func (d *Document) State() State { return d.state }

// Budget is the permitted number of lines.
func (d *Document) Budget() int { return d.budget }

// LineLength is the cached total cost.
func (d *Document) LineLength() int { return d.lineLength }

// TotalCost recomputes the total cost from the sections and refreshes the cache.
func (d *Document) TotalCost() int {
	d.recalculate()
	return d.lineLength
}

// Fits reports whether the cached cost is within budget.
func (d *Document) Fits() bool {
	return d.lineLength <= d.budget
}

func (d *Document) recalculate() {
	d.lineLength = d.layout.TotalCost(&d.content)
}

// Optimize trims the document toward its budget and moves it to StateFitted.
// It runs three phases, stopping as soon as the document fits:
// long project descriptions are shortened, trailing projects are dropped,
// and experiences lose trailing bullets in rank order. Header, education and
// skills are never touched. A document that still does not fit is not an
// error; check Status.
func (d *Document) Optimize() Report {
	if d.state == StateFitted {
		return d.report
	}
	d.state = StateFitting
	d.recalculate()

	if !d.Fits() {
		d.shortenProjects()
	}
	if !d.Fits() {
		d.dropProjects()
	}
	if !d.Fits() {
		d.trimExperiences()
	}

	d.state = StateFitted
	return d.report
}

func (d *Document) shortenProjects() {
	for _, p := range d.content.Projects {
		if d.Fits() {
			return
		}
		if p.TruncateDescription(projectDescriptionLimit) {
			d.report.ProjectsTruncated = append(d.report.ProjectsTruncated, p.Name())
			d.recalculate()
		}
	}
}

func (d *Document) dropProjects() {
	for len(d.content.Projects) > 0 && !d.Fits() {
		last := len(d.content.Projects) - 1
		d.report.ProjectsDropped = append(d.report.ProjectsDropped, d.content.Projects[last].Name())
		d.content.Projects = d.content.Projects[:last]
		d.recalculate()
	}
}

func (d *Document) trimExperiences() {
	for _, e := range d.content.Experiences {
		if d.Fits() {
			return
		}
		over := d.lineLength - d.budget
		target := max(minExperienceLines, e.LineLength()-over)
		if removed := e.TrimToLines(target); removed > 0 {
			d.report.BulletsRemoved += removed
			d.recalculate()
		}
	}
}

// SortChronologically reorders experiences most recent first for display.
// Costs are unaffected; it is only allowed once the document is fitted.
func (d *Document) SortChronologically() error {
	if d.state != StateFitted {
		return ErrNotFitted
	}
	ranking.SortChronological(d.content.Experiences)
	return nil
}
