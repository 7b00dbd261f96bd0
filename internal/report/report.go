// Package report aggregates plan and execution results into the immutable
// summary returned to callers. Everything here is derived; nothing mutates
// prior state.
package report

import (
	"sort"
	"time"

	"tidy/internal/classify"
	"tidy/internal/mover"
	"tidy/internal/plan"
)

// Report is the audit summary of one organize run.
type Report struct {
	RunID           string                    `json:"run_id"`
	TargetDir       string                    `json:"target_dir"`
	DryRun          bool                      `json:"dry_run"`
	ScannedFiles    int                       `json:"scanned_files"`
	CategoryCounts  map[classify.Category]int `json:"category_counts"`
	Outcomes        []mover.Outcome           `json:"outcomes,omitempty"`
	Moved           int                       `json:"moved"`
	Skipped         int                       `json:"skipped"`
	Failed          int                       `json:"failed"`
	TotalBytesMoved int64                     `json:"total_bytes_moved"`
	CategoryFolders []string                  `json:"category_folders,omitempty"`
	Started         time.Time                 `json:"started"`
	Duration        time.Duration             `json:"duration"`
}

// Summarize derives the report for a completed (or dry) run. For dry runs
// outcomes is nil and the report carries plan-level counts only.
func Summarize(p *plan.Plan, outcomes []mover.Outcome, runID string, dryRun bool, started time.Time, duration time.Duration) *Report {
	r := &Report{
		RunID:          runID,
		TargetDir:      p.TargetDir,
		DryRun:         dryRun,
		ScannedFiles:   len(p.Entries),
		CategoryCounts: p.CategoryCounts(),
		Outcomes:       outcomes,
		Started:        started,
		Duration:       duration,
	}

	folders := make(map[string]struct{})
	for _, outcome := range outcomes {
		switch outcome.Status {
		case mover.StatusMoved:
			r.Moved++
			r.TotalBytesMoved += outcome.Entry.Source.Size
			folders[outcome.Entry.Category.Folder()] = struct{}{}
		case mover.StatusSkipped:
			r.Skipped++
		case mover.StatusFailed:
			r.Failed++
		}
	}
	for folder := range folders {
		r.CategoryFolders = append(r.CategoryFolders, folder)
	}
	sort.Strings(r.CategoryFolders)

	return r
}

// Failures returns the failed and skipped outcomes, in run order.
func (r *Report) Failures() []mover.Outcome {
	var failures []mover.Outcome
	for _, outcome := range r.Outcomes {
		if outcome.Status != mover.StatusMoved {
			failures = append(failures, outcome)
		}
	}
	return failures
}
