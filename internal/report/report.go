// Package report collects per-pipeline outcomes for a run and renders
// them as text.
package report

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// PipelineResult is the outcome of applying one pipeline to the input.
type PipelineResult struct {
	Name  string
	Taken string
	Rest  string
	Err   error
}

// Run aggregates pipeline results under a unique run identifier.
type Run struct {
	ID      string
	Results []PipelineResult
	Matched int
	Failed  int
}

// New creates an empty run with a fresh identifier.
func New() *Run {
	return &Run{
		ID: uuid.New().String(),
	}
}

// Add records a pipeline result and updates the counters.
func (r *Run) Add(result PipelineResult) {
	r.Results = append(r.Results, result)

	if result.Err != nil {
		r.Failed++
	} else {
		r.Matched++
	}
}

// MatchPercentage returns the share of pipelines that matched.
func (r *Run) MatchPercentage() float64 {
	total := len(r.Results)
	if total == 0 {
		return 0
	}
	return float64(r.Matched) / float64(total) * 100
}

// FormatText renders the run as aligned text.
func (r *Run) FormatText(w io.Writer) error {
	for _, result := range r.Results {
		if result.Err != nil {
			if _, err := fmt.Fprintf(w, "%s: Failed: %v\n", result.Name, result.Err); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: Success (taken=%q, rest=%q)\n", result.Name, result.Taken, result.Rest); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "--------------------------------------------------------------------------------"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Run id:             %s\n", r.ID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Executed pipelines: %d\n", len(r.Results)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Matched pipelines:  %d (%.1f%%)\n", r.Matched, r.MatchPercentage()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Failed pipelines:   %d\n", r.Failed); err != nil {
		return err
	}

	return nil
}
