// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-curator/internal/document"
	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/llm"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job          string `json:"job,omitempty" yaml:"job,omitempty"`                     // Path to parsed job requirements JSON
	CandidateDir string `json:"candidate_dir,omitempty" yaml:"candidate_dir,omitempty"` // Directory holding the candidate's JSON files

	// Output
	Output        string `json:"output,omitempty" yaml:"output,omitempty"`                 // Output file; stdout when empty
	LatexTemplate string `json:"latex_template,omitempty" yaml:"latex_template,omitempty"` // Custom LaTeX template for render

	// Layout
	Template           string `json:"template,omitempty" yaml:"template,omitempty"` // single-column or two-column
	PageLimit          *int   `json:"page_limit,omitempty" yaml:"page_limit,omitempty" validate:"omitempty,gte=1,lte=10"` // nil means unset
	CharsPerLine       int    `json:"chars_per_line,omitempty" yaml:"chars_per_line,omitempty" validate:"gte=0"`
	SkillsCharsPerLine int    `json:"skills_chars_per_line,omitempty" yaml:"skills_chars_per_line,omitempty" validate:"gte=0"`
	Chronological      bool   `json:"chronological,omitempty" yaml:"chronological,omitempty"` // Order experiences by date after fitting

	// Compression
	Compress           bool   `json:"compress,omitempty" yaml:"compress,omitempty"` // Shorten long text with the LLM
	Model              string `json:"model,omitempty" yaml:"model,omitempty"`
	CompressionTimeout string `json:"compression_timeout,omitempty" yaml:"compression_timeout,omitempty"` // e.g. "15s"
	APIKey             string `json:"api_key,omitempty" yaml:"api_key,omitempty"`                         // Gemini API key

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Debug logging and summaries
}

// Defaults returns the values used when neither the config file nor flags set a field.
func Defaults() Config {
	return Config{
		Template:           string(document.SingleColumn),
		PageLimit:          IntPtr(1),
		CharsPerLine:       layout.CharsPerLine,
		Model:              llm.DefaultModel,
		CompressionTimeout: "15s",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" {
		if _, err := document.ParseTemplate(c.Template); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.CompressionTimeout != "" {
		if _, err := time.ParseDuration(c.CompressionTimeout); err != nil {
			return fmt.Errorf("config error: invalid compression_timeout %q: %w", c.CompressionTimeout, err)
		}
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.CandidateDir != "" {
		if _, err := os.Stat(c.CandidateDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidate directory not found: %s", c.CandidateDir)
		}
	}
	if c.LatexTemplate != "" {
		if _, err := os.Stat(c.LatexTemplate); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.LatexTemplate)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(field *string, fallback string) {
		if *field == "" {
			*field = fallback
		}
	}
	fill(&result.Job, defaults.Job)
	fill(&result.CandidateDir, defaults.CandidateDir)
	fill(&result.Output, defaults.Output)
	fill(&result.LatexTemplate, defaults.LatexTemplate)
	fill(&result.Template, defaults.Template)
	fill(&result.Model, defaults.Model)
	fill(&result.CompressionTimeout, defaults.CompressionTimeout)
	fill(&result.APIKey, defaults.APIKey)

	if result.PageLimit == nil && defaults.PageLimit != nil {
		result.PageLimit = IntPtr(*defaults.PageLimit)
	}
	if result.CharsPerLine == 0 {
		result.CharsPerLine = defaults.CharsPerLine
	}
	if result.SkillsCharsPerLine == 0 {
		result.SkillsCharsPerLine = defaults.SkillsCharsPerLine
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Pages returns the page limit, or zero when it is unset.
func (c *Config) Pages() int {
	if c.PageLimit == nil {
		return 0
	}
	return *c.PageLimit
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}

// Timeout returns the parsed compression timeout, or zero when unset or invalid.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.CompressionTimeout)
	if err != nil {
		return 0
	}
	return d
}
