package pipeline

import (
	"context"
	"io"
	"sync"

	"github.com/noamBarkai/adam/types"
)

// ResidueSource supplies residues to the aggregation pipeline in batches.
//
// Implementations do not need to be safe for concurrent use; Aggregate
// serializes its calls to Next.
type ResidueSource interface {
	// Next returns the next batch of residues.
	//
	// Implementations should:
	//   - Return io.EOF (with no residues) when the source is exhausted
	//   - Handle context cancellation gracefully
	//   - Return other errors for I/O or decode failures (aborts the pipeline)
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - []types.Residue: Next batch (nil on io.EOF)
	//   - error: io.EOF at end of input, any other error on failure
	Next(ctx context.Context) ([]types.Residue, error)
}

// SliceSource implements a residue source over a fixed in-memory slice,
// handing it out in chunks.
type SliceSource struct {
	mu       sync.Mutex
	residues []types.Residue
	chunk    int
	offset   int
}

var _ ResidueSource = (*SliceSource)(nil)

// NewSliceSource creates a source over the given residues.
//
// Parameters:
//   - residues: Residues to serve, in order
//   - chunkSize: Batch size per Next call (min 1; values below are raised to 1)
//
// Returns:
//   - *SliceSource: Initialized source
//
// Example:
//
//	src := pipeline.NewSliceSource(residues, 4096)
//	table, err := pipeline.Aggregate(ctx, nil, space, src)
func NewSliceSource(residues []types.Residue, chunkSize int) *SliceSource {
	if chunkSize < 1 {
		chunkSize = 1
	}

	return &SliceSource{
		residues: residues,
		chunk:    chunkSize,
	}
}

// Next returns the next chunk of residues, or io.EOF when exhausted.
func (s *SliceSource) Next(_ context.Context) ([]types.Residue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offset >= len(s.residues) {
		return nil, io.EOF
	}

	end := min(s.offset+s.chunk, len(s.residues))
	batch := s.residues[s.offset:end]
	s.offset = end

	return batch, nil
}

// Reset rewinds the source to the beginning, allowing reuse across runs.
func (s *SliceSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offset = 0
}
