// Package engine wires the guard, scanner, planner, mover, and reporter
// into the single OrganizeDirectory operation. Every caller surface (CLI,
// UI, external tool dispatch) goes through the same entry point.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"tidy/internal/classify"
	"tidy/internal/config"
	"tidy/internal/guard"
	"tidy/internal/logging"
	"tidy/internal/mover"
	"tidy/internal/plan"
	"tidy/internal/report"
	"tidy/internal/scan"
	"tidy/internal/services"
)

// Options controls a single organize invocation.
type Options struct {
	// DryRun builds and reports the plan without moving anything.
	DryRun bool
}

// Engine executes organize runs against a fixed configuration.
type Engine struct {
	cfg    *config.Config
	base   *slog.Logger
	logger *slog.Logger
	guard  *guard.Guard
	table  *classify.Table
}

// New constructs an engine from configuration. The classification table and
// guard denylist are resolved once; each run reuses them.
func New(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	g, err := guard.New(cfg.Safety.Denylist...)
	if err != nil {
		return nil, err
	}
	return NewWithGuard(cfg, logger, g)
}

// NewWithGuard allows injecting the guard (used in tests to control the
// home directory the denylist is rooted at).
func NewWithGuard(cfg *config.Config, logger *slog.Logger, g *guard.Guard) (*Engine, error) {
	table, err := classify.NewTable(cfg.Organize.CategoryOverrides)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "engine", "build classification table", "invalid category overrides", err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		base:   logger,
		logger: logger.With(logging.String(logging.FieldComponent, "engine")),
		guard:  g,
		table:  table,
	}, nil
}

// Plan validates the target and computes the move plan without executing
// it. Callers may inspect, render, or discard the result.
func (e *Engine) Plan(ctx context.Context, dir string) (*plan.Plan, error) {
	canonical, err := e.guard.Validate(dir)
	if err != nil {
		return nil, err
	}
	entries, err := scan.Scan(canonical, scan.Options{IncludeHidden: e.cfg.Organize.IncludeHidden})
	if err != nil {
		return nil, err
	}
	return plan.Build(canonical, entries, e.table, nil), nil
}

// OrganizeDirectory runs the full classify-and-relocate pass over dir.
// It returns either a rejection/planning error with nothing moved, or a
// report describing exactly what happened to each file.
func (e *Engine) OrganizeDirectory(ctx context.Context, dir string, opts Options) (*report.Report, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, e.logger)
	started := time.Now()

	logger.Info("starting organize run",
		logging.String(logging.FieldTarget, dir),
		logging.Bool("dry_run", opts.DryRun),
	)

	p, err := e.Plan(ctx, dir)
	if err != nil {
		logger.Warn("organize run rejected", logging.Error(err))
		return nil, err
	}
	logger.Info("plan built", logging.Int("entries", len(p.Entries)))

	if opts.DryRun {
		rep := report.Summarize(p, nil, runID, true, started, time.Since(started))
		logger.Info("dry run complete", logging.Int("planned", rep.ScannedFiles))
		return rep, nil
	}

	unlock, err := e.acquireRunLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	outcomes := mover.New(e.base).Execute(ctx, p)
	rep := report.Summarize(p, outcomes, runID, false, started, time.Since(started))

	logger.Info("organize run complete",
		logging.Int("moved", rep.Moved),
		logging.Int("failed", rep.Failed),
		logging.Int("skipped", rep.Skipped),
		logging.Int64("bytes_moved", rep.TotalBytesMoved),
		logging.Duration("duration", rep.Duration),
	)
	return rep, nil
}

// acquireRunLock serializes mutating runs across processes. The lock file
// lives in the log directory, never inside the target being organized.
func (e *Engine) acquireRunLock() (func(), error) {
	if err := e.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "engine", "ensure directories", "cannot create log directory", err)
	}
	lock := flock.New(e.cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "engine", "acquire lock", "cannot acquire run lock", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrTransient, "engine", "acquire lock", "another tidy run is in progress", nil)
	}
	return func() { _ = lock.Unlock() }, nil
}
