package history

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/George-Madeley/Tools/internal/git"
	"github.com/George-Madeley/Tools/internal/logging"
	"github.com/George-Madeley/Tools/internal/models"
)

// AggregatorConfig contains the settings shared by every query of a run
type AggregatorConfig struct {
	FormatScheme string
	Separator    string
	Indent       string

	// Jobs bounds concurrent per-branch queries in grouped mode.
	// Values below 2 run them one at a time.
	Jobs int
}

// DefaultAggregatorConfig returns the settings commitmsg uses out of the box.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		FormatScheme: models.DefaultFormatScheme,
		Separator:    DefaultSeparator,
		Indent:       DefaultIndent,
		Jobs:         1,
	}
}

// Aggregator runs log queries and merges their formatted output into a Report.
type Aggregator struct {
	config    AggregatorConfig
	log       git.LogQuery
	resolver  *Resolver
	formatter Formatter
	logger    *slog.Logger
}

// NewAggregator creates an Aggregator. Empty formatting settings fall back to
// the defaults and a nil logger discards debug output.
func NewAggregator(config AggregatorConfig, log git.LogQuery, lister git.BranchLister, logger *slog.Logger) *Aggregator {
	if config.FormatScheme == "" {
		config.FormatScheme = models.DefaultFormatScheme
	}
	if logger == nil {
		logger = logging.Discard()
	}

	formatter := NewFormatter()
	if config.Separator != "" {
		formatter.Separator = config.Separator
	}
	if config.Indent != "" {
		formatter.Indent = config.Indent
	}

	return &Aggregator{
		config:    config,
		log:       log,
		resolver:  NewResolver(lister),
		formatter: formatter,
		logger:    logger,
	}
}

// RunSingle queries ref, or every ref when ref is nil, and returns a report
// with exactly one unlabeled entry. No commits is not an error.
func (a *Aggregator) RunSingle(ctx context.Context, author string, hoursAgo int, ref *models.BranchRef) (models.Report, error) {
	spec, err := models.NewQuerySpec(author, hoursAgo, ref, a.config.FormatScheme)
	if err != nil {
		return models.Report{}, err
	}

	block, err := a.query(ctx, spec)
	if err != nil {
		return models.Report{}, err
	}

	return models.Report{
		Entries: []models.ReportEntry{{Block: block}},
	}, nil
}

// RunGrouped queries every resolved branch and returns one labeled entry per
// branch with commits, in resolution order. Any failed query aborts the run.
func (a *Aggregator) RunGrouped(ctx context.Context, author string, hoursAgo int) (models.Report, error) {
	// validate before the branch listing so bad input never reaches git
	if _, err := models.NewQuerySpec(author, hoursAgo, nil, a.config.FormatScheme); err != nil {
		return models.Report{}, err
	}

	branches, err := a.resolver.Resolve(ctx)
	if err != nil {
		return models.Report{}, err
	}
	a.logger.Debug("resolved branches", "count", len(branches))

	blocks, err := a.queryBranches(ctx, author, hoursAgo, branches)
	if err != nil {
		return models.Report{}, err
	}

	report := models.Report{Grouped: true}
	for i, branch := range branches {
		if blocks[i].IsEmpty() {
			a.logger.Debug("no commits in window", "branch", branch.Name)
			continue
		}
		report.Entries = append(report.Entries, models.ReportEntry{
			Label: branch.Label(),
			Block: blocks[i],
		})
	}

	return report, nil
}

// queryBranches returns one block per branch, indexed like branches, so the
// caller sees resolution order whether or not queries ran concurrently.
func (a *Aggregator) queryBranches(ctx context.Context, author string, hoursAgo int, branches []models.BranchRef) ([]models.FormattedBlock, error) {
	blocks := make([]models.FormattedBlock, len(branches))

	queryOne := func(ctx context.Context, i int) error {
		spec, err := models.NewQuerySpec(author, hoursAgo, &branches[i], a.config.FormatScheme)
		if err != nil {
			return err
		}
		block, err := a.query(ctx, spec)
		if err != nil {
			return err
		}
		blocks[i] = block
		return nil
	}

	if a.config.Jobs < 2 {
		for i := range branches {
			if err := queryOne(ctx, i); err != nil {
				return nil, err
			}
		}
		return blocks, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Jobs)
	for i := range branches {
		i := i
		g.Go(func() error {
			return queryOne(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return blocks, nil
}

func (a *Aggregator) query(ctx context.Context, spec models.QuerySpec) (models.FormattedBlock, error) {
	ref := "--all"
	if !spec.AllRefs() {
		ref = spec.Ref.Name
	}

	start := time.Now()
	raw, err := a.log.Query(ctx, spec)
	if err != nil {
		a.logger.Debug("log query failed", "ref", ref, "error", err)
		return nil, err
	}

	block := a.formatter.Format(raw)
	a.logger.Debug("log query", "ref", ref, "lines", len(block), "elapsed", time.Since(start))
	return block, nil
}
