// Package ranking scores candidate entries against job requirements and orders them.
package ranking

import (
	"strings"

	"github.com/jonathan/resume-curator/internal/types"
)

// Score returns how many of the job's requirement items appear among the
// candidate's tags, summed over languages, frameworks and tools.
// Matching ignores case and surrounding whitespace.
func Score(candidate, job types.Tags) int {
	return countMatches(candidate.Languages, job.Languages) +
		countMatches(candidate.Frameworks, job.Frameworks) +
		countMatches(candidate.Tools, job.Tools)
}

// ScoreAgainst scores candidate tags against a parsed job description.
func ScoreAgainst(candidate types.Tags, job *types.JobRequirements) int {
	return Score(candidate, job.Tags())
}

// countMatches counts required items that are members of the candidate set.
// Duplicate requirements are counted each time they occur.
func countMatches(candidate, required []string) int {
	if len(candidate) == 0 || len(required) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(candidate))
	for _, tag := range candidate {
		if key := normalizeTag(tag); key != "" {
			have[key] = struct{}{}
		}
	}

	matches := 0
	for _, req := range required {
		key := normalizeTag(req)
		if key == "" {
			continue
		}
		if _, ok := have[key]; ok {
			matches++
		}
	}
	return matches
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// MatchedTags returns the job requirement items the candidate covers, in job order
// and without duplicates. It is used for reporting only.
func MatchedTags(candidate, job types.Tags) []string {
	var matched []string
	seen := make(map[string]bool)
	collect := func(have, want []string) {
		set := make(map[string]bool, len(have))
		for _, tag := range have {
			set[normalizeTag(tag)] = true
		}
		for _, req := range want {
			key := normalizeTag(req)
			if key == "" || seen[key] || !set[key] {
				continue
			}
			seen[key] = true
			matched = append(matched, strings.TrimSpace(req))
		}
	}
	collect(candidate.Languages, job.Languages)
	collect(candidate.Frameworks, job.Frameworks)
	collect(candidate.Tools, job.Tools)
	return matched
}
