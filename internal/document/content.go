package document

import "github.com/jonathan/resume-curator/internal/sections"

// Content holds the sections of a resume in display order.
// Experiences and Projects are expected in rank order.
type Content struct {
	Header      *sections.Header
	Experiences []*sections.Experience
	Education   []*sections.Education
	Projects    []*sections.Project
	Skills      *sections.Skills
}

func (c *Content) headerCost() int {
	if c.Header == nil {
		return 0
	}
	return c.Header.LineLength()
}

func (c *Content) skillsCost() int {
	if c.Skills == nil {
		return 0
	}
	return c.Skills.LineLength()
}

func (c *Content) experienceCost() int {
	total := 0
	for _, e := range c.Experiences {
		total += e.LineLength()
	}
	return total
}

func (c *Content) educationCost() int {
	total := 0
	for _, e := range c.Education {
		total += e.LineLength()
	}
	return total
}

func (c *Content) projectCost() int {
	total := 0
	for _, p := range c.Projects {
		total += p.LineLength()
	}
	return total
}
