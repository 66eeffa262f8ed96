package sections

import (
	"strings"

	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/types"
)

const (
	educationLines = 2
	coursesLabel   = "Courses: "
)

// Education is a school or program. It is never trimmed.
type Education struct {
	school     string
	degree     string
	startDate  string
	endDate    string
	grade      string
	courses    []string
	lineLength int
}

// NewEducation builds an entry from a raw record.
func NewEducation(rec types.EducationRecord, m layout.Metrics) (*Education, error) {
	rec.School = strings.TrimSpace(rec.School)
	rec.Degree = strings.TrimSpace(rec.Degree)
	if err := checkRecord("education", rec.School, rec); err != nil {
		return nil, err
	}

	var courses []string
	for _, c := range rec.Courses {
		if c = strings.TrimSpace(c); c != "" {
			courses = append(courses, c)
		}
	}

	e := &Education{
		school:    rec.School,
		degree:    rec.Degree,
		startDate: strings.TrimSpace(rec.StartDate),
		endDate:   strings.TrimSpace(rec.EndDate),
		grade:     strings.TrimSpace(rec.Grade.String()),
		courses:   courses,
	}
	e.lineLength = educationLines
	if len(courses) > 0 {
		e.lineLength += m.TextToLines(e.CoursesLine())
	}
	return e, nil
}

func (e *Education) School() string    { return e.school }
func (e *Education) Degree() string    { return e.degree }
func (e *Education) StartDate() string { return e.startDate }
func (e *Education) EndDate() string   { return e.endDate }
func (e *Education) Grade() string     { return e.grade }
func (e *Education) LineLength() int   { return e.lineLength }

// Courses returns a copy of the listed courses.
func (e *Education) Courses() []string {
	return append([]string(nil), e.courses...)
}

// CoursesLine is the rendered courses row, or "" when there are no courses.
func (e *Education) CoursesLine() string {
	if len(e.courses) == 0 {
		return ""
	}
	return coursesLabel + strings.Join(e.courses, ", ")
}

// ToMap returns the entry as a neutral map.
func (e *Education) ToMap() map[string]any {
	return map[string]any{
		"school":      e.school,
		"degree":      e.degree,
		"start_date":  e.startDate,
		"end_date":    e.endDate,
		"grade":       optional(e.grade),
		"courses":     e.Courses(),
		"line_length": e.lineLength,
	}
}
