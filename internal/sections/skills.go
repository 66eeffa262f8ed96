package sections

import (
	"strings"

	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/types"
)

// Skill row labels as they appear on the page.
const (
	LanguagesLabel  = "Programming Languages"
	FrameworksLabel = "Frameworks"
	ToolsLabel      = "Tools"
)

// Skills is the technical skills block. It is never trimmed.
type Skills struct {
	languages  []string
	frameworks []string
	tools      []string
	spoken     []string
	lineLength int
}

// NewSkills builds the block. Spoken languages are kept for rendering and cost nothing.
func NewSkills(tags types.Tags, spoken []string, m layout.Metrics) *Skills {
	s := &Skills{
		languages:  clean(tags.Languages),
		frameworks: clean(tags.Frameworks),
		tools:      clean(tags.Tools),
		spoken:     clean(spoken),
	}
	for _, row := range s.Rows() {
		s.lineLength += m.TextToLines(row.String())
	}
	return s
}

// SkillRow is one labelled line of the skills block.
type SkillRow struct {
	Label string
	Items []string
}

func (r SkillRow) String() string {
	return r.Label + ": " + strings.Join(r.Items, ", ")
}

// Rows returns the non-empty skill rows in display order.
func (s *Skills) Rows() []SkillRow {
	var rows []SkillRow
	if len(s.languages) > 0 {
		rows = append(rows, SkillRow{Label: LanguagesLabel, Items: s.languages})
	}
	if len(s.frameworks) > 0 {
		rows = append(rows, SkillRow{Label: FrameworksLabel, Items: s.frameworks})
	}
	if len(s.tools) > 0 {
		rows = append(rows, SkillRow{Label: ToolsLabel, Items: s.tools})
	}
	return rows
}

func (s *Skills) Languages() []string       { return append([]string(nil), s.languages...) }
func (s *Skills) Frameworks() []string      { return append([]string(nil), s.frameworks...) }
func (s *Skills) Tools() []string           { return append([]string(nil), s.tools...) }
func (s *Skills) SpokenLanguages() []string { return append([]string(nil), s.spoken...) }
func (s *Skills) LineLength() int           { return s.lineLength }

// ToMap returns the block as a neutral map.
func (s *Skills) ToMap() map[string]any {
	return map[string]any{
		"programming_languages": s.Languages(),
		"frameworks":            s.Frameworks(),
		"tools":                 s.Tools(),
		"spoken_languages":      s.SpokenLanguages(),
		"line_length":           s.lineLength,
	}
}

func clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
