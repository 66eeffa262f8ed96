package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-curator/internal/document"
	"github.com/jonathan/resume-curator/internal/sections"
)

//go:embed templates/*.tex
var builtinTemplates embed.FS

// Placeholders recognised in LaTeX templates.
const (
	PlaceholderName       = "{{NAME}}"
	PlaceholderEmail      = "{{EMAIL}}"
	PlaceholderPhone      = "{{PHONE}}"
	PlaceholderLocation   = "{{LOCATION}}"
	PlaceholderGitHub     = "{{GITHUB}}"
	PlaceholderLinkedIn   = "{{LINKEDIN}}"
	PlaceholderWebsite    = "{{WEBSITE}}"
	PlaceholderEducation  = "{{EDUCATION_SECTION}}"
	PlaceholderExperience = "{{EXPERIENCE_SECTION}}"
	PlaceholderProjects   = "{{PROJECTS_SECTION}}"
	PlaceholderLanguages  = "{{SKILLS_LANGUAGES}}"
	PlaceholderFrameworks = "{{SKILLS_FRAMEWORKS}}"
	PlaceholderTools      = "{{SKILLS_TOOLS}}"
)

// DefaultTemplate returns the built-in LaTeX template for a layout.
func DefaultTemplate(t document.Template) (string, error) {
	data, err := builtinTemplates.ReadFile("templates/" + string(t) + ".tex")
	if err != nil {
		return "", &TemplateError{Source: string(t), Message: "no built-in template for layout", Cause: err}
	}
	return string(data), nil
}

// LoadTemplate reads a LaTeX template from disk.
func LoadTemplate(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{Source: path, Message: "template file not found", Cause: err}
		}
		return "", &TemplateError{Source: path, Message: "failed to read template file", Cause: err}
	}
	return string(content), nil
}

// RenderLaTeX fills tmpl with the document's content. All candidate text is
// escaped. The template must contain an experience placeholder.
func RenderLaTeX(doc *document.Document, tmpl string) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is nil"}
	}
	if !strings.Contains(tmpl, PlaceholderExperience) {
		return "", &TemplateError{
			Source:      string(doc.Template()),
			Placeholder: PlaceholderExperience,
			Message:     "template is missing placeholder",
		}
	}

	content := doc.Content()
	h := content.Header

	replacer := strings.NewReplacer(
		PlaceholderName, EscapeLaTeX(h.Name()),
		PlaceholderEmail, link("mailto:"+h.Email(), h.Email()),
		PlaceholderPhone, EscapeLaTeX(h.Phone()),
		PlaceholderLocation, EscapeLaTeX(h.Location()),
		PlaceholderGitHub, optionalLink(h.GitHub()),
		PlaceholderLinkedIn, optionalLink(h.LinkedIn()),
		PlaceholderWebsite, optionalLink(h.Website()),
		PlaceholderEducation, educationSection(content.Education),
		PlaceholderExperience, experienceSection(content.Experiences),
		PlaceholderProjects, projectsSection(content.Projects),
		PlaceholderLanguages, joinEscaped(content.Skills.Languages()),
		PlaceholderFrameworks, joinEscaped(content.Skills.Frameworks()),
		PlaceholderTools, joinEscaped(content.Skills.Tools()),
	)
	return replacer.Replace(tmpl), nil
}

func experienceSection(entries []*sections.Experience) string {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "\\resumeHeading{%s}{%s}{%s}{%s}\n",
			EscapeLaTeX(e.Title()),
			dateRange(e.StartDate(), e.EndDate()),
			EscapeLaTeX(e.Company()),
			EscapeLaTeX(e.Location()))
		bullets := e.Bullets()
		if len(bullets) == 0 {
			continue
		}
		sb.WriteString("\\begin{bullets}\n")
		for _, b := range bullets {
			fmt.Fprintf(&sb, "  \\item %s\n", EscapeLaTeX(b))
		}
		sb.WriteString("\\end{bullets}\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func educationSection(entries []*sections.Education) string {
	var sb strings.Builder
	for _, e := range entries {
		grade := ""
		if e.Grade() != "" {
			grade = "Grade: " + EscapeLaTeX(e.Grade())
		}
		fmt.Fprintf(&sb, "\\educationHeading{%s}{%s}{%s}{%s}\n",
			EscapeLaTeX(e.School()),
			dateRange(e.StartDate(), e.EndDate()),
			EscapeLaTeX(e.Degree()),
			grade)
		if line := e.CoursesLine(); line != "" {
			fmt.Fprintf(&sb, "%s\\\\\n", EscapeLaTeX(line))
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func projectsSection(entries []*sections.Project) string {
	var sb strings.Builder
	for _, p := range entries {
		fmt.Fprintf(&sb, "\\projectHeading{%s}{%s}\n", EscapeLaTeX(p.Name()), dateRange(p.StartDate(), p.EndDate()))
		fmt.Fprintf(&sb, "%s\\\\\n", EscapeLaTeX(p.Description()))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func dateRange(start, end string) string {
	switch {
	case start == "":
		return EscapeLaTeX(end)
	case end == "" || start == end:
		return EscapeLaTeX(start)
	default:
		return EscapeLaTeX(start) + " -- " + EscapeLaTeX(end)
	}
}

func joinEscaped(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = EscapeLaTeX(item)
	}
	return strings.Join(escaped, ", ")
}

func link(target, label string) string {
	return fmt.Sprintf("\\href{%s}{%s}", escapeURL(target), EscapeLaTeX(label))
}

func optionalLink(url string) string {
	if url == "" {
		return ""
	}
	target := url
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}
	return link(target, url)
}

// escapeURL escapes only the characters hyperref cannot take verbatim in \href.
func escapeURL(url string) string {
	return strings.NewReplacer(`%`, `\%`, `#`, `\#`, `&`, `\&`).Replace(url)
}
