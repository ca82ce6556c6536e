package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"

	"github.com/noamBarkai/adam"
	"github.com/noamBarkai/adam/internal/logging"
	"github.com/noamBarkai/adam/internal/metrics"
	"github.com/noamBarkai/adam/types"
)

// Option configures the aggregation pipeline with optional dependencies.
type Option func(*pipelineOptions)

type pipelineOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

// WithLogger sets a logger for pipeline progress.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for Aggregate
func WithLogger(logger types.Logger) Option {
	return func(o *pipelineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector for shard and reduce timings.
//
// Parameters:
//   - collector: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for Aggregate
func WithMetrics(collector types.MetricsCollector) Option {
	return func(o *pipelineOptions) {
		o.metrics = collector
	}
}

// Aggregate builds an observation table from a residue source using a pool of
// shard workers.
//
// Each worker repeatedly pulls a batch from the source (calls are serialized)
// and folds it into a private table; after all workers finish, the partial
// tables are reduced into a single accumulator with adam's merge operator.
// Workers never share mutable state, so the result equals a fully sequential
// fold over the same input.
//
// Parameters:
//   - ctx: Context for cancellation; workers stop between batches when canceled
//   - cfg: Pipeline configuration (nil uses defaults)
//   - space: Covariate space the table aggregates over
//   - src: Residue source
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *adam.ObservationTable: The aggregated table
//   - error: Configuration, source, or context error
func Aggregate(ctx context.Context, cfg *Config, space *adam.CovariateSpace, src ResidueSource, opts ...Option) (*adam.ObservationTable, error) {
	if src == nil {
		return nil, types.ErrSourceRequired
	}

	var conf Config
	if cfg != nil {
		conf = *cfg
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	conf.applyDefaults()

	options := pipelineOptions{
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	partials := make([]*adam.ObservationTable, conf.Workers)
	for i := range partials {
		table, err := adam.NewObservationTable(space)
		if err != nil {
			return nil, err
		}
		partials[i] = table
	}

	var (
		srcMu     sync.Mutex
		processed = xsync.NewCounter()
	)

	next := func(ctx context.Context) ([]types.Residue, error) {
		srcMu.Lock()
		defer srcMu.Unlock()

		return src.Next(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range conf.Workers {
		table := partials[i]
		g.Go(func() error {
			start := time.Now()
			shardResidues := 0
			for {
				if err := gctx.Err(); err != nil {
					return err
				}

				batch, err := next(gctx)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return fmt.Errorf("residue source failed: %w", err)
				}

				for _, r := range batch {
					table.Add(r)
				}
				shardResidues += len(batch)
				processed.Add(int64(len(batch)))
			}

			options.metrics.RecordShardCompleted(shardResidues, time.Since(start).Seconds())

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	reduceStart := time.Now()
	acc := partials[0]
	for _, partial := range partials[1:] {
		if _, err := acc.Merge(partial); err != nil {
			return nil, err
		}
	}
	options.metrics.RecordReduce(len(partials), time.Since(reduceStart).Seconds())

	options.logger.Info("aggregation complete",
		"residues", processed.Value(),
		"entries", acc.Len(),
		"workers", conf.Workers,
	)

	return acc, nil
}
