// Package types provides type definitions for structured data used throughout the resume-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Tags are the technology labels attached to an experience or project, or
// demanded by a job posting.
type Tags struct {
	Languages  []string `json:"languages,omitempty"`
	Frameworks []string `json:"frameworks,omitempty"`
	Tools      []string `json:"tools,omitempty"`
}

// IsEmpty reports whether no category carries any label.
func (t Tags) IsEmpty() bool {
	return len(t.Languages) == 0 && len(t.Frameworks) == 0 && len(t.Tools) == 0
}

// JobRequirements is a job description that has already been parsed into
// structured requirement lists.
type JobRequirements struct {
	JobTitle             string   `json:"job_title,omitempty"`
	JobLocation          string   `json:"job_location,omitempty"`
	JobSalary            string   `json:"job_salary,omitempty"`
	JobDescription       string   `json:"job_description,omitempty"`
	JobRequirements      []string `json:"job_requirements,omitempty"`
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	Tools                []string `json:"tools"`
}

// Tags returns the requirement lists as Tags so they can be scored against candidate entries.
func (j *JobRequirements) Tags() Tags {
	if j == nil {
		return Tags{}
	}
	return Tags{
		Languages:  j.ProgrammingLanguages,
		Frameworks: j.Frameworks,
		Tools:      j.Tools,
	}
}
