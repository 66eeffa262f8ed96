// Package assembly turns a candidate's raw records and a job's requirements
// into a ranked, page-fitted resume document.
package assembly

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-curator/internal/compression"
	"github.com/jonathan/resume-curator/internal/document"
	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/ranking"
	"github.com/jonathan/resume-curator/internal/sections"
	"github.com/jonathan/resume-curator/internal/types"
	"go.uber.org/zap"
)

const (
	// bulletCompressionChars is the per-bullet budget asked of the compressor.
	bulletCompressionChars = 100
	// projectCompressionChars is the description budget asked of the compressor.
	projectCompressionChars = 116
	// fallbackSkillsPerCategory caps skills borrowed from experience tags when the job lists none.
	fallbackSkillsPerCategory = 3

	competitionTitle = "Competition"
)

// Record groups, as named in the candidate files.
const (
	GroupWork         = "work_experience"
	GroupInternship   = "internship_experience"
	GroupCompetitions = "competitions"
	GroupProjects     = "projects"
	GroupUniversity   = "university_education"
	GroupHighSchool   = "high_school_education"
	GroupOther        = "other_education"
)

// Options controls how a document is assembled.
type Options struct {
	Template  document.Template
	PageLimit int
	// Metrics sets the wrap width for section costs.
	Metrics layout.Metrics
	// SkillsMetrics overrides the wrap width for skill rows. Zero uses Metrics.
	SkillsMetrics layout.Metrics
	// Chronological reorders experiences by end date after fitting.
	Chronological bool
	// Compressor shortens long text before ranking. Nil disables it.
	Compressor compression.Compressor
	Logger     *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) skillsMetrics() layout.Metrics {
	if o.SkillsMetrics.CharsPerLine > 0 {
		return o.SkillsMetrics
	}
	return o.Metrics
}

// Ranking holds scored entries in rank order.
type Ranking struct {
	Experiences []*sections.Experience
	Projects    []*sections.Project
}

// Rank builds and orders the experience and project entries. Compression,
// when configured, happens here so that rank order is fixed on the final text.
func Rank(ctx context.Context, job *types.JobRequirements, cand *types.CandidateRecords, opts Options) (*Ranking, error) {
	if cand == nil {
		return nil, fmt.Errorf("candidate records are required")
	}
	log := opts.logger()
	jobTags := job.Tags()

	groups := []struct {
		name    string
		records []types.ExperienceRecord
	}{
		{GroupWork, cand.Experiences.WorkExperience},
		{GroupInternship, cand.Experiences.InternshipExperience},
		{GroupCompetitions, cand.Experiences.Competitions},
	}

	var experiences []*sections.Experience
	for _, g := range groups {
		for i, rec := range g.records {
			if g.name == GroupCompetitions {
				rec.Company = rec.Name
				rec.Title = competitionTitle
			}
			if needsBulletCompression(rec.Description) {
				rec.Description = compression.CompressOrKeep(ctx, opts.Compressor, rec.Description, bulletCompressionChars, log)
			}

			score := ranking.Score(rec.Tags, jobTags)
			e, err := sections.NewExperience(rec, score, opts.Metrics)
			if err != nil {
				return nil, sections.Locate(err, g.name, i)
			}
			log.Debug("scored experience",
				zap.String("group", g.name),
				zap.String("company", e.Company()),
				zap.Int("score", score),
				zap.Int("lines", e.LineLength()))
			experiences = append(experiences, e)
		}
	}

	var projects []*sections.Project
	for i, rec := range cand.Projects.Projects {
		if utf8.RuneCountInString(string(rec.Description)) > projectCompressionChars {
			out := compression.CompressOrKeep(ctx, opts.Compressor, []string{string(rec.Description)}, projectCompressionChars, log)
			rec.Description = types.Text(strings.Join(out, " "))
		}

		score := ranking.Score(rec.Tags, jobTags)
		p, err := sections.NewProject(rec, score, opts.Metrics)
		if err != nil {
			return nil, sections.Locate(err, GroupProjects, i)
		}
		log.Debug("scored project",
			zap.String("name", p.Name()),
			zap.Int("score", score),
			zap.Int("lines", p.LineLength()))
		projects = append(projects, p)
	}

	return &Ranking{
		Experiences: ranking.Rank(experiences),
		Projects:    ranking.Rank(projects),
	}, nil
}

// needsBulletCompression reports whether an entry has several bullets or any overlong one.
func needsBulletCompression(bullets []string) bool {
	if len(bullets) > 1 {
		return true
	}
	for _, b := range bullets {
		if utf8.RuneCountInString(b) > bulletCompressionChars {
			return true
		}
	}
	return false
}

// Build assembles an unoptimized document.
func Build(ctx context.Context, job *types.JobRequirements, cand *types.CandidateRecords, opts Options) (*document.Document, error) {
	if cand == nil {
		return nil, fmt.Errorf("candidate records are required")
	}

	header, err := sections.NewHeader(cand.Metadata)
	if err != nil {
		return nil, err
	}

	ranked, err := Rank(ctx, job, cand, opts)
	if err != nil {
		return nil, err
	}

	education, err := buildEducation(cand.Education, opts.Metrics)
	if err != nil {
		return nil, err
	}

	skills := sections.NewSkills(skillTags(job, cand), cand.Metadata.SpokenLanguages, opts.skillsMetrics())

	template := opts.Template
	if template == "" {
		template = document.SingleColumn
	}

	return document.New(document.Content{
		Header:      header,
		Experiences: ranked.Experiences,
		Education:   education,
		Projects:    ranked.Projects,
		Skills:      skills,
	}, template, opts.PageLimit)
}

func buildEducation(edu types.Education, m layout.Metrics) ([]*sections.Education, error) {
	groups := []struct {
		name    string
		records []types.EducationRecord
	}{
		{GroupUniversity, edu.UniversityEducation},
		{GroupHighSchool, edu.HighSchoolEducation},
		{GroupOther, edu.OtherEducation},
	}

	var out []*sections.Education
	for _, g := range groups {
		for i, rec := range g.records {
			e, err := sections.NewEducation(rec, m)
			if err != nil {
				return nil, sections.Locate(err, g.name, i)
			}
			out = append(out, e)
		}
	}
	return out, nil
}

// skillTags uses the job's requirement lists, filling any empty category
// with the first few distinct tags from work and internship records.
func skillTags(job *types.JobRequirements, cand *types.CandidateRecords) types.Tags {
	tags := job.Tags()

	var pool []types.ExperienceRecord
	pool = append(pool, cand.Experiences.WorkExperience...)
	pool = append(pool, cand.Experiences.InternshipExperience...)

	if len(tags.Languages) == 0 {
		tags.Languages = firstDistinct(pool, func(t types.Tags) []string { return t.Languages })
	}
	if len(tags.Frameworks) == 0 {
		tags.Frameworks = firstDistinct(pool, func(t types.Tags) []string { return t.Frameworks })
	}
	if len(tags.Tools) == 0 {
		tags.Tools = firstDistinct(pool, func(t types.Tags) []string { return t.Tools })
	}
	return tags
}

func firstDistinct(records []types.ExperienceRecord, pick func(types.Tags) []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, tag := range pick(rec.Tags) {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, strings.TrimSpace(tag))
			if len(out) == fallbackSkillsPerCategory {
				return out
			}
		}
	}
	return out
}
