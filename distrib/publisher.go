package distrib

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/noamBarkai/adam"
	"github.com/noamBarkai/adam/internal/logging"
	"github.com/noamBarkai/adam/types"
)

// Publisher publishes partial observation tables to a NATS subject.
//
// One publisher per shard worker process; publishers are cheap and carry no
// background state.
type Publisher struct {
	nc      *nats.Conn
	subject string
	logger  types.Logger
}

// NewPublisher creates a publisher for the given subject.
//
// Parameters:
//   - nc: Connected NATS client
//   - subject: Subject partial tables are published to
//   - opts: Optional configuration (WithLogger)
//
// Returns:
//   - *Publisher: Initialized publisher
//   - error: ErrConnRequired or ErrSubjectRequired
func NewPublisher(nc *nats.Conn, subject string, opts ...Option) (*Publisher, error) {
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

	return &Publisher{nc: nc, subject: subject, logger: options.logger}, nil
}

// Publish encodes the table and publishes it, flushing before returning so a
// successful call means the server has the payload.
//
// Parameters:
//   - ctx: Context bounding the flush
//   - table: Partial table to publish
//
// Returns:
//   - error: Encode, publish, or flush failure
func (p *Publisher) Publish(ctx context.Context, table *adam.ObservationTable) error {
	payload, err := Encode(table)
	if err != nil {
		return fmt.Errorf("failed to encode partial table: %w", err)
	}

	if err := p.nc.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("failed to publish partial table: %w", err)
	}
	if err := p.nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush partial table: %w", err)
	}

	p.logger.Debug("published partial table",
		"subject", p.subject,
		"entries", table.Len(),
		"bytes", len(payload),
	)

	return nil
}
