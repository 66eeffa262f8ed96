// Package main implements the resume_curator CLI, which ranks a candidate's
// records against a job and fits them onto a page budget.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resume_curator",
		Short:         "Relevance-ranked, page-fitted resumes",
		Long:          "resume_curator scores a candidate's experiences and projects against parsed job requirements, then trims the result until it fits the requested number of pages.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Path to a JSON or YAML config file (flags override its values)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs and human-readable summaries")

	root.AddCommand(newFitCmd(), newRankCmd(), newRenderCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
