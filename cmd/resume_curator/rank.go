package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-curator/internal/assembly"
	"github.com/jonathan/resume-curator/internal/observability"
	"github.com/spf13/cobra"
)

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank experiences and projects against a job",
		Long:  "Deterministically scores every experience and project by how many of the job's languages, frameworks and tools they mention, and prints them in rank order without fitting.",
		RunE:  runRank,
	}
	addInputFlags(cmd)
	return cmd
}

func runRank(cmd *cobra.Command, _ []string) error {
	r, err := resolveRun(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = r.logger.Sync() }()

	job, records, err := r.loadInputs()
	if err != nil {
		return err
	}

	ranked, err := assembly.Rank(cmd.Context(), job, records, assembly.Options{Logger: r.logger})
	if err != nil {
		return fmt.Errorf("failed to rank records: %w", err)
	}

	out := map[string]any{
		"run_id":      r.id,
		"job_title":   job.JobTitle,
		"experiences": entryMaps(ranked.Experiences),
		"projects":    entryMaps(ranked.Projects),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranking to JSON: %w", err)
	}
	if err := r.writeOutput(cmd, append(data, '\n')); err != nil {
		return err
	}

	if r.cfg.Verbose {
		p := observability.NewPrinter(cmd.ErrOrStderr())
		p.PrintJobRequirements(job)
		p.PrintRankedExperiences(ranked.Experiences, job)
		p.PrintRankedProjects(ranked.Projects)
	}
	return nil
}

func entryMaps[T interface{ ToMap() map[string]any }](entries []T) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ToMap())
	}
	return out
}
