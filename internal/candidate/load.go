package candidate

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-curator/internal/schemas"
	"github.com/jonathan/resume-curator/internal/types"
)

// File names expected inside a candidate directory.
const (
	MetadataFile    = "metadata.json"
	ExperiencesFile = "experiences.json"
	EducationFile   = "education.json"
	ProjectsFile    = "projects.json"
)

// LoadDirectory reads a candidate directory. metadata.json is required; the
// other files are optional and an absent file means an empty section.
// Every file present is validated against its schema before decoding.
func LoadDirectory(dir string) (*types.CandidateRecords, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "candidate directory not readable", Cause: err}
	}
	if !info.IsDir() {
		return nil, &LoadError{Path: dir, Message: "candidate path is not a directory"}
	}

	var records types.CandidateRecords
	files := []struct {
		name     string
		schema   schemas.Name
		target   any
		required bool
	}{
		{MetadataFile, schemas.Metadata, &records.Metadata, true},
		{ExperiencesFile, schemas.Experiences, &records.Experiences, false},
		{EducationFile, schemas.Education, &records.Education, false},
		{ProjectsFile, schemas.Projects, &records.Projects, false},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		found, err := loadFile(path, f.schema, f.target)
		if err != nil {
			return nil, err
		}
		if !found && f.required {
			return nil, &LoadError{Path: path, Message: "required file missing"}
		}
	}

	return &records, nil
}

// LoadJobRequirements reads a parsed job description file.
func LoadJobRequirements(path string) (*types.JobRequirements, error) {
	var job types.JobRequirements
	found, err := loadFile(path, schemas.JobRequirements, &job)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &LoadError{Path: path, Message: "job requirements file not found"}
	}
	return &job, nil
}

// loadFile validates and decodes path into target. It reports false when the file does not exist.
func loadFile(path string, schema schemas.Name, target any) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if err := schemas.Validate(schema, content); err != nil {
		return false, &LoadError{Path: path, Message: "file does not match schema", Cause: err}
	}

	if err := json.Unmarshal(content, target); err != nil {
		return false, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}
	return true, nil
}
