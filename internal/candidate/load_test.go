package candidate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-curator/internal/schemas"
	"github.com/jonathan/resume-curator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirectory_Complete(t *testing.T) {
	records, err := LoadDirectory(filepath.Join("testdata", "complete"))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", records.Metadata.Name)
	assert.Equal(t, []string{"English", "French"}, records.Metadata.SpokenLanguages)

	require.Len(t, records.Experiences.WorkExperience, 1)
	work := records.Experiences.WorkExperience[0]
	assert.Len(t, work.Description, 3)
	assert.Equal(t, []string{"Go", "Python"}, work.Languages)

	require.Len(t, records.Experiences.InternshipExperience, 1)
	assert.Equal(t, types.Lines{"Wrote ETL jobs in Python", "Added integration tests"}, records.Experiences.InternshipExperience[0].Description)

	require.Len(t, records.Experiences.Competitions, 1)
	assert.Equal(t, "Regional Programming Contest", records.Experiences.Competitions[0].Name)

	require.Len(t, records.Education.UniversityEducation, 1)
	assert.Equal(t, types.Text("3.8"), records.Education.UniversityEducation[0].Grade)
	assert.Len(t, records.Education.All(), 2)

	require.Len(t, records.Projects.Projects, 2)
	assert.Equal(t, types.Text("A small interpreter that computes Bernoulli numbers."), records.Projects.Projects[0].Description)
}

func TestLoadDirectory_OptionalFilesMissing(t *testing.T) {
	records, err := LoadDirectory(filepath.Join("testdata", "minimal"))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", records.Metadata.Name)
	assert.Empty(t, records.Experiences.WorkExperience)
	assert.Empty(t, records.Projects.Projects)
}

func TestLoadDirectory_MissingMetadata(t *testing.T) {
	_, err := LoadDirectory(t.TempDir())

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "required file missing")
}

func TestLoadDirectory_NotADirectory(t *testing.T) {
	_, err := LoadDirectory(filepath.Join("testdata", "job.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")

	_, err = LoadDirectory(filepath.Join("testdata", "does-not-exist"))
	require.Error(t, err)
}

func TestLoadDirectory_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	metadata, err := os.ReadFile(filepath.Join("testdata", "complete", MetadataFile))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataFile), metadata, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectsFile), []byte(`{"projects": [{"name": "X"}]}`), 0644))

	_, err = LoadDirectory(dir)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), ProjectsFile)
}

func TestLoadJobRequirements(t *testing.T) {
	job, err := LoadJobRequirements(filepath.Join("testdata", "job.json"))
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", job.JobTitle)
	assert.Equal(t, []string{"Go", "Python"}, job.ProgrammingLanguages)
	assert.Equal(t, []string{"Docker", "Kubernetes", "Terraform"}, job.Tools)
}

func TestLoadJobRequirements_Errors(t *testing.T) {
	_, err := LoadJobRequirements(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"programming_languages": "Go", "frameworks": [], "tools": []}`), 0644))
	_, err = LoadJobRequirements(path)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
}
