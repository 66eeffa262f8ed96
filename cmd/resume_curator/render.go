package main

import (
	"fmt"

	"github.com/jonathan/resume-curator/internal/rendering"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fit a resume and render it as LaTeX",
		Long:  "Runs the same ranking and fitting as 'fit', then substitutes the fitted document into a LaTeX template. Without --latex-template the built-in template for the selected layout is used.",
		RunE:  runRender,
	}
	addInputFlags(cmd)
	addLayoutFlags(cmd)
	cmd.Flags().String("latex-template", "", "Path to a custom LaTeX template")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	r, err := resolveRun(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = r.logger.Sync() }()

	result, err := r.fit(cmd.Context())
	if err != nil {
		return err
	}

	var tmpl string
	if r.cfg.LatexTemplate != "" {
		tmpl, err = rendering.LoadTemplate(r.cfg.LatexTemplate)
	} else {
		tmpl, err = rendering.DefaultTemplate(result.Document.Template())
	}
	if err != nil {
		return fmt.Errorf("failed to load LaTeX template: %w", err)
	}

	latex, err := rendering.RenderLaTeX(result.Document, tmpl)
	if err != nil {
		return fmt.Errorf("failed to render LaTeX: %w", err)
	}
	if err := r.writeOutput(cmd, []byte(latex)); err != nil {
		return err
	}

	r.report(cmd, result)
	return nil
}
