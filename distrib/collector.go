package distrib

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/noamBarkai/adam"
	"github.com/noamBarkai/adam/internal/logging"
	"github.com/noamBarkai/adam/types"
)

// Option configures distrib components with optional dependencies.
type Option func(*distribOptions)

type distribOptions struct {
	logger types.Logger
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for NewPublisher and NewCollector
func WithLogger(logger types.Logger) Option {
	return func(o *distribOptions) {
		o.logger = logger
	}
}

// Collector receives partial observation tables from a NATS subject and
// merges them into an accumulator.
//
// The subscription is established at construction, so partials published any
// time after NewCollector returns are buffered and not lost. A collector is
// owned by a single reducer goroutine; Collect must not be called
// concurrently.
type Collector struct {
	sub     *nats.Subscription
	subject string
	logger  types.Logger
}

// NewCollector creates a collector subscribed to the given subject.
//
// Parameters:
//   - nc: Connected NATS client
//   - subject: Subject partial tables arrive on
//   - opts: Optional configuration (WithLogger)
//
// Returns:
//   - *Collector: Subscribed collector
//   - error: ErrConnRequired, ErrSubjectRequired, or subscribe failure
func NewCollector(nc *nats.Conn, subject string, opts ...Option) (*Collector, error) {
	if nc == nil {
		return nil, types.ErrConnRequired
	}
	if subject == "" {
		return nil, types.ErrSubjectRequired
	}

	options := distribOptions{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&options)
	}

	sub, err := nc.SubscribeSync(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %q: %w", subject, err)
	}

	return &Collector{sub: sub, subject: subject, logger: options.logger}, nil
}

// Collect receives the expected number of partial tables and merges them into
// a fresh accumulator over the given space.
//
// Parameters:
//   - ctx: Context bounding the whole collection; canceling it aborts the wait
//   - space: Covariate space every shard must have aggregated over
//   - expected: Number of partial tables to wait for
//
// Returns:
//   - *adam.ObservationTable: Merged accumulator
//   - error: Context, decode, or incompatible-space failure
func (c *Collector) Collect(ctx context.Context, space *adam.CovariateSpace, expected int) (*adam.ObservationTable, error) {
	acc, err := adam.NewObservationTable(space)
	if err != nil {
		return nil, err
	}

	for received := 0; received < expected; received++ {
		msg, err := c.sub.NextMsgWithContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("waiting for partial table %d of %d: %w", received+1, expected, err)
		}

		partial, err := Decode(space, msg.Data)
		if err != nil {
			return nil, err
		}
		if _, err := acc.Merge(partial); err != nil {
			return nil, err
		}

		c.logger.Debug("collected partial table",
			"subject", c.subject,
			"received", received+1,
			"expected", expected,
			"entries", partial.Len(),
		)
	}

	return acc, nil
}

// Close drops the subscription. The collector cannot be reused afterwards.
func (c *Collector) Close() error {
	return c.sub.Unsubscribe()
}
