package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/resume-curator/internal/assembly"
	"github.com/jonathan/resume-curator/internal/candidate"
	"github.com/jonathan/resume-curator/internal/compression"
	"github.com/jonathan/resume-curator/internal/config"
	"github.com/jonathan/resume-curator/internal/document"
	"github.com/jonathan/resume-curator/internal/layout"
	"github.com/jonathan/resume-curator/internal/llm"
	"github.com/jonathan/resume-curator/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addInputFlags registers the flags shared by every command that reads a job
// and a candidate directory.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("job", "j", "", "Path to parsed job requirements JSON (required via flag or config)")
	cmd.Flags().StringP("candidate", "c", "", "Directory with metadata.json, experiences.json, education.json, projects.json (required via flag or config)")
	cmd.Flags().StringP("out", "o", "", "Output file (defaults to stdout)")
}

// addLayoutFlags registers the flags that shape the fitted document.
func addLayoutFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("template", "t", "", "Layout: single-column (bengt) or two-column (deedy)")
	f.IntP("page-limit", "p", 0, "Number of pages the resume must fit on, at least 1 (default 1)")
	f.Int("chars-per-line", 0, "Characters per wrapped line")
	f.Int("skills-chars-per-line", 0, "Characters per line in the skills block (defaults to --chars-per-line)")
	f.Bool("chronological", false, "Order experiences by end date after fitting")
	f.Bool("compress", false, "Shorten long bullets and descriptions with Gemini before fitting")
	f.String("model", "", "Gemini model used for compression")
	f.String("compression-timeout", "", "Timeout for each compression call, e.g. 15s")
	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	f.String("api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
}

// run holds everything a command needs once flags and config are resolved.
type run struct {
	id     string
	cfg    config.Config
	logger *zap.Logger
}

// resolveRun loads the config file (if any), applies changed flags on top of
// it, fills defaults and validates the result.
func resolveRun(cmd *cobra.Command) (*run, error) {
	var cfg config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Command-line args take priority, but only when explicitly set
	overrideString(cmd, "job", &cfg.Job)
	overrideString(cmd, "candidate", &cfg.CandidateDir)
	overrideString(cmd, "out", &cfg.Output)
	overrideString(cmd, "template", &cfg.Template)
	overrideString(cmd, "latex-template", &cfg.LatexTemplate)
	overrideString(cmd, "model", &cfg.Model)
	overrideString(cmd, "compression-timeout", &cfg.CompressionTimeout)
	overrideString(cmd, "api-key", &cfg.APIKey)
	if cmd.Flags().Lookup("page-limit") != nil && cmd.Flags().Changed("page-limit") {
		pages, _ := cmd.Flags().GetInt("page-limit")
		cfg.PageLimit = config.IntPtr(pages)
	}
	overrideInt(cmd, "chars-per-line", &cfg.CharsPerLine)
	overrideInt(cmd, "skills-chars-per-line", &cfg.SkillsCharsPerLine)
	overrideBool(cmd, "chronological", &cfg.Chronological)
	overrideBool(cmd, "compress", &cfg.Compress)
	overrideBool(cmd, "verbose", &cfg.Verbose)

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Job == "" {
		return nil, fmt.Errorf("--job must be provided (via flag or config)")
	}
	if cfg.CandidateDir == "" {
		return nil, fmt.Errorf("--candidate must be provided (via flag or config)")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Compress && cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required with --compress")
	}

	id := uuid.NewString()
	logger, err := newLogger(cfg.Verbose, id)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &run{id: id, cfg: cfg, logger: logger}, nil
}

func overrideString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Lookup(name) != nil && cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Lookup(name) != nil && cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}

func overrideBool(cmd *cobra.Command, name string, dst *bool) {
	if cmd.Flags().Lookup(name) != nil && cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetBool(name)
	}
}

// loadInputs reads and validates the job requirements and candidate records.
func (r *run) loadInputs() (*types.JobRequirements, *types.CandidateRecords, error) {
	job, err := candidate.LoadJobRequirements(r.cfg.Job)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load job requirements: %w", err)
	}
	records, err := candidate.LoadDirectory(r.cfg.CandidateDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load candidate records: %w", err)
	}
	r.logger.Debug("inputs loaded",
		zap.String("job", r.cfg.Job),
		zap.String("candidate_dir", r.cfg.CandidateDir),
		zap.Int("work_experience", len(records.Experiences.WorkExperience)),
		zap.Int("internship_experience", len(records.Experiences.InternshipExperience)),
		zap.Int("competitions", len(records.Experiences.Competitions)),
		zap.Int("projects", len(records.Projects.Projects)))
	return job, records, nil
}

// assemblyOptions turns the resolved config into assembly options. The
// returned cleanup closes the LLM client when compression is enabled.
func (r *run) assemblyOptions(ctx context.Context) (assembly.Options, func(), error) {
	tmpl, err := document.ParseTemplate(r.cfg.Template)
	if err != nil {
		return assembly.Options{}, nil, err
	}

	opts := assembly.Options{
		Template:      tmpl,
		PageLimit:     r.cfg.Pages(),
		Metrics:       layout.New(r.cfg.CharsPerLine),
		Chronological: r.cfg.Chronological,
		Logger:        r.logger,
	}
	if r.cfg.SkillsCharsPerLine > 0 {
		opts.SkillsMetrics = layout.New(r.cfg.SkillsCharsPerLine)
	}

	if !r.cfg.Compress {
		return opts, func() {}, nil
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(r.cfg.Model), r.cfg.APIKey)
	if err != nil {
		return assembly.Options{}, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	copts := compression.DefaultOptions()
	if d := r.cfg.Timeout(); d > 0 {
		copts.Timeout = d
	}
	copts.Logger = r.logger
	compressor, err := compression.New(client, copts)
	if err != nil {
		_ = client.Close()
		return assembly.Options{}, nil, err
	}
	opts.Compressor = compressor

	return opts, func() { _ = client.Close() }, nil
}

// writeOutput writes data to the configured output file, or to the
// command's stdout when none is set.
func (r *run) writeOutput(cmd *cobra.Command, data []byte) error {
	if r.cfg.Output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(r.cfg.Output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(r.cfg.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", r.cfg.Output, err)
	}
	return nil
}
