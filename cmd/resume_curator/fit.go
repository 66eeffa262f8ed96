package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-curator/internal/assembly"
	"github.com/jonathan/resume-curator/internal/observability"
	"github.com/spf13/cobra"
)

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a ranked resume onto a page budget and emit it as JSON",
		Long: `Scores the candidate's experiences and projects against the job, assembles a resume document for the selected layout, and trims it until it fits the page limit.

Configuration can be loaded from a JSON or YAML file using --config. Command-line arguments override config file values.`,
		RunE: runFit,
	}
	addInputFlags(cmd)
	addLayoutFlags(cmd)
	return cmd
}

func runFit(cmd *cobra.Command, _ []string) error {
	r, err := resolveRun(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = r.logger.Sync() }()

	result, err := r.fit(cmd.Context())
	if err != nil {
		return err
	}

	out := result.Document.ToMap()
	if meta, ok := out["metadata"].(map[string]any); ok {
		meta["run_id"] = r.id
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fitted resume to JSON: %w", err)
	}
	if err := r.writeOutput(cmd, append(data, '\n')); err != nil {
		return err
	}

	r.report(cmd, result)
	return nil
}

// fit loads the inputs and runs assembly with the resolved options.
func (r *run) fit(ctx context.Context) (*assembly.Result, error) {
	job, records, err := r.loadInputs()
	if err != nil {
		return nil, err
	}

	opts, cleanup, err := r.assemblyOptions(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result, err := assembly.Fit(ctx, job, records, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fit resume: %w", err)
	}
	return result, nil
}

// report prints the fit summary in verbose mode and the page-limit warning
// whenever the document does not fit. Both go to stderr.
func (r *run) report(cmd *cobra.Command, result *assembly.Result) {
	if r.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintFitStatus(result.Status)
	}
	if w := result.Warning(); w != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
}
