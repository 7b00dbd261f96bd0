// Package mover executes a move plan one entry at a time. Entries fail
// independently; a permission error on one file never aborts the rest of
// the batch, and nothing is retried automatically.
package mover

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"tidy/internal/fileutil"
	"tidy/internal/logging"
	"tidy/internal/plan"
)

// Status is the per-entry execution result.
type Status string

const (
	StatusMoved   Status = "moved"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to a single plan entry. ErrorDetail is
// populated only for failed and skipped entries.
type Outcome struct {
	Entry       plan.Entry `json:"entry"`
	Status      Status     `json:"status"`
	ErrorDetail string     `json:"error_detail,omitempty"`
}

// Mover applies plans to the filesystem.
type Mover struct {
	logger *slog.Logger
}

// New constructs a mover. A nil logger disables logging.
func New(logger *slog.Logger) *Mover {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Mover{logger: logger.With(logging.String(logging.FieldComponent, "mover"))}
}

// Execute applies the plan strictly in order and returns one outcome per
// entry. Cancellation stops the pass and marks every remaining entry
// skipped; moves already applied are not rolled back.
func (m *Mover) Execute(ctx context.Context, p *plan.Plan) []Outcome {
	logger := logging.WithContext(ctx, m.logger)
	outcomes := make([]Outcome, 0, len(p.Entries))

	for i, entry := range p.Entries {
		if err := ctx.Err(); err != nil {
			logger.Warn("run cancelled, skipping remaining entries", logging.Int("remaining", len(p.Entries)-i))
			for _, rest := range p.Entries[i:] {
				outcomes = append(outcomes, Outcome{Entry: rest, Status: StatusSkipped, ErrorDetail: "run cancelled"})
			}
			break
		}
		outcomes = append(outcomes, m.moveOne(logger, entry))
	}
	return outcomes
}

func (m *Mover) moveOne(logger *slog.Logger, entry plan.Entry) Outcome {
	if err := os.MkdirAll(filepath.Dir(entry.Destination), 0o755); err != nil {
		logger.Warn("category folder creation failed",
			logging.String("destination", entry.Destination),
			logging.Error(err),
		)
		return Outcome{Entry: entry, Status: StatusFailed, ErrorDetail: "create category folder: " + err.Error()}
	}

	if err := fileutil.MoveFile(entry.Source.Path, entry.Destination); err != nil {
		logger.Warn("move failed",
			logging.String("source", entry.Source.Path),
			logging.String("destination", entry.Destination),
			logging.Error(err),
		)
		return Outcome{Entry: entry, Status: StatusFailed, ErrorDetail: err.Error()}
	}

	logger.Debug("moved",
		logging.String("source", entry.Source.Name),
		logging.String(logging.FieldCategory, entry.Category.Folder()),
		logging.String("destination", entry.Destination),
	)
	return Outcome{Entry: entry, Status: StatusMoved}
}
