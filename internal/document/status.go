package document

// Report records what Optimize changed.
type Report struct {
	ProjectsTruncated []string `json:"projects_truncated"`
	ProjectsDropped   []string `json:"projects_dropped"`
	BulletsRemoved    int      `json:"bullets_removed"`
}

// Changed reports whether any content was reduced.
func (r Report) Changed() bool {
	return len(r.ProjectsTruncated) > 0 || len(r.ProjectsDropped) > 0 || r.BulletsRemoved > 0
}

// Status summarizes a document's fit against its budget.
type Status struct {
	Template            Template `json:"template_name"`
	State               string   `json:"state"`
	LineLength          int      `json:"line_length"`
	PermittedLineLength int      `json:"permitted_line_length"`
	PageLimit           int      `json:"page_limit"`
	Fits                bool     `json:"fits_page_limit"`
	Shortfall           int      `json:"shortfall"`
	LeftColumn          int      `json:"left_column,omitempty"`
	RightColumn         int      `json:"right_column,omitempty"`
	Report              Report   `json:"optimization"`
}

// Status returns the current fit summary.
func (d *Document) Status() Status {
	s := Status{
		Template:            d.Template(),
		State:               d.state.String(),
		LineLength:          d.lineLength,
		PermittedLineLength: d.budget,
		PageLimit:           d.pageLimit,
		Fits:                d.Fits(),
		Shortfall:           max(0, d.lineLength-d.budget),
		Report:              d.report,
	}
	if s.Template == TwoColumn {
		s.LeftColumn, s.RightColumn = Columns(&d.content)
	}
	return s
}

// ToMap returns the document as a neutral map suitable for JSON encoding.
func (d *Document) ToMap() map[string]any {
	experiences := make([]map[string]any, 0, len(d.content.Experiences))
	for _, e := range d.content.Experiences {
		experiences = append(experiences, e.ToMap())
	}
	education := make([]map[string]any, 0, len(d.content.Education))
	for _, e := range d.content.Education {
		education = append(education, e.ToMap())
	}
	projects := make([]map[string]any, 0, len(d.content.Projects))
	for _, p := range d.content.Projects {
		projects = append(projects, p.ToMap())
	}

	status := d.Status()
	return map[string]any{
		"header":      d.content.Header.ToMap(),
		"experiences": experiences,
		"education":   education,
		"projects":    projects,
		"skills":      d.content.Skills.ToMap(),
		"metadata": map[string]any{
			"template_name":         string(status.Template),
			"state":                 status.State,
			"line_length":           status.LineLength,
			"permitted_line_length": status.PermittedLineLength,
			"page_limit":            status.PageLimit,
			"fits_page_limit":       status.Fits,
			"shortfall":             status.Shortfall,
			"optimization":          status.Report,
		},
	}
}
