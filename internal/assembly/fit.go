package assembly

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-curator/internal/document"
	"github.com/jonathan/resume-curator/internal/types"
	"go.uber.org/zap"
)

// Result is a fitted document and its fit summary.
type Result struct {
	Document *document.Document
	Status   document.Status
}

// Warning describes why the document does not fit, or is empty when it does.
func (r *Result) Warning() string {
	if r.Status.Fits {
		return ""
	}
	return fmt.Sprintf("resume is %d line(s) over the %d-page limit after trimming (%d of %d lines)",
		r.Status.Shortfall, r.Status.PageLimit, r.Status.LineLength, r.Status.PermittedLineLength)
}

// Fit builds the document, optimizes it toward the page budget and, if
// requested, reorders experiences chronologically for display.
func Fit(ctx context.Context, job *types.JobRequirements, cand *types.CandidateRecords, opts Options) (*Result, error) {
	log := opts.logger()

	doc, err := Build(ctx, job, cand, opts)
	if err != nil {
		return nil, err
	}

	before := doc.LineLength()
	report := doc.Optimize()
	log.Info("document optimized",
		zap.String("template", string(doc.Template())),
		zap.Int("lines_before", before),
		zap.Int("lines_after", doc.LineLength()),
		zap.Int("budget", doc.Budget()),
		zap.Strings("projects_truncated", report.ProjectsTruncated),
		zap.Strings("projects_dropped", report.ProjectsDropped),
		zap.Int("bullets_removed", report.BulletsRemoved))

	if opts.Chronological {
		if err := doc.SortChronologically(); err != nil {
			return nil, err
		}
	}

	result := &Result{Document: doc, Status: doc.Status()}
	if w := result.Warning(); w != "" {
		log.Warn("page limit not met", zap.String("detail", w))
	}
	return result, nil
}
