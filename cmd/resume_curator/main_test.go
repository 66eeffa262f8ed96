package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJob       = "testdata/job.json"
	testCandidate = "testdata/candidate"
)

// execute runs the CLI in-process and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &out), raw)
	return out
}

func companies(t *testing.T, entries any) []string {
	t.Helper()
	list, ok := entries.([]any)
	require.True(t, ok)
	var names []string
	for _, e := range list {
		names = append(names, e.(map[string]any)["company"].(string))
	}
	return names
}

func TestFitCommand_ValidInput(t *testing.T) {
	stdout, stderr, err := execute(t, "fit", "--job", testJob, "--candidate", testCandidate)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Warning:")

	out := decode(t, stdout)
	meta := out["metadata"].(map[string]any)
	assert.Equal(t, true, meta["fits_page_limit"])
	assert.Equal(t, "single-column", meta["template_name"])
	assert.Equal(t, float64(45), meta["permitted_line_length"])
	assert.NotEmpty(t, meta["run_id"])

	assert.Equal(t,
		[]string{"Analytical Engines Ltd", "Difference Co", "Regional Programming Contest"},
		companies(t, out["experiences"]))

	header := out["header"].(map[string]any)
	assert.Equal(t, "Ada Lovelace", header["name"])
}

func TestFitCommand_TwoColumnAlias(t *testing.T) {
	stdout, _, err := execute(t, "fit", "-j", testJob, "-c", testCandidate, "--template", "deedy", "--page-limit", "2")
	require.NoError(t, err)

	meta := decode(t, stdout)["metadata"].(map[string]any)
	assert.Equal(t, "two-column", meta["template_name"])
	assert.Equal(t, float64(90), meta["permitted_line_length"])
}

func TestFitCommand_WarnsWhenOverLimit(t *testing.T) {
	stdout, stderr, err := execute(t, "fit", "-j", testJob, "-c", testCandidate, "--chars-per-line", "1")
	require.NoError(t, err, "not fitting is reported, not returned as an error")

	meta := decode(t, stdout)["metadata"].(map[string]any)
	assert.Equal(t, false, meta["fits_page_limit"])
	assert.Greater(t, meta["shortfall"].(float64), float64(0))
	assert.Contains(t, stderr, "Warning: resume is")
}

func TestFitCommand_WritesOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "nested", "resume.json")

	stdout, _, err := execute(t, "fit", "-j", testJob, "-c", testCandidate, "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, decode(t, string(data)), "experiences")
}

func TestFitCommand_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "job: " + testJob + "\ncandidate_dir: " + testCandidate + "\ntemplate: two-column\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	stdout, _, err := execute(t, "fit", "--config", cfgPath, "--template", "single")
	require.NoError(t, err)

	meta := decode(t, stdout)["metadata"].(map[string]any)
	assert.Equal(t, "single-column", meta["template_name"], "flag should override config file")
}

func TestFitCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"missing job", []string{"fit", "-c", testCandidate}, "--job must be provided"},
		{"missing candidate", []string{"fit", "-j", testJob}, "--candidate must be provided"},
		{"unknown template", []string{"fit", "-j", testJob, "-c", testCandidate, "-t", "three-column"}, "unknown template"},
		{"missing job file", []string{"fit", "-j", "testdata/nope.json", "-c", testCandidate}, "job file not found"},
		{"bad config path", []string{"fit", "--config", "testdata/missing.yaml"}, "failed to load config"},
		{"explicit zero page limit", []string{"fit", "-j", testJob, "-c", testCandidate, "--page-limit", "0"}, "PageLimit"},
		{"negative page limit", []string{"fit", "-j", testJob, "-c", testCandidate, "--page-limit=-1"}, "PageLimit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFitCommand_CompressRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, _, err := execute(t, "fit", "-j", testJob, "-c", testCandidate, "--compress")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestRankCommand_ValidInput(t *testing.T) {
	stdout, stderr, err := execute(t, "rank", "-j", testJob, "-c", testCandidate, "--verbose")
	require.NoError(t, err)

	out := decode(t, stdout)
	assert.Equal(t, "Backend Engineer", out["job_title"])
	assert.NotEmpty(t, out["run_id"])
	assert.Equal(t,
		[]string{"Analytical Engines Ltd", "Difference Co", "Regional Programming Contest"},
		companies(t, out["experiences"]))

	projects := out["projects"].([]any)
	require.Len(t, projects, 2)
	assert.Equal(t, "Loom", projects[0].(map[string]any)["name"])
	assert.Equal(t, float64(1), projects[0].(map[string]any)["relevance_score"])

	assert.Contains(t, stderr, "Backend Engineer", "verbose mode prints summaries")
}

func TestRenderCommand_DefaultTemplate(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "resume.tex")

	_, _, err := execute(t, "render", "-j", testJob, "-c", testCandidate, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	tex := string(data)
	assert.Contains(t, tex, "Ada Lovelace")
	assert.Contains(t, tex, "Analytical Engines Ltd")
	assert.NotContains(t, tex, "{{EXPERIENCE_SECTION}}")
}

func TestRenderCommand_CustomTemplate(t *testing.T) {
	tmplPath := filepath.Join(t.TempDir(), "custom.tex")
	require.NoError(t, os.WriteFile(tmplPath, []byte("% {{NAME}}\n{{EXPERIENCE_SECTION}}\n"), 0644))

	stdout, _, err := execute(t, "render", "-j", testJob, "-c", testCandidate, "--latex-template", tmplPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "% Ada Lovelace")
}
