package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noamBarkai/adam"
	recaltest "github.com/noamBarkai/adam/testing"
	"github.com/noamBarkai/adam/types"
)

func makeResidues(n int) []types.Residue {
	residues := make([]types.Residue, 0, n)
	for i := range n {
		residues = append(residues, recaltest.Residue{
			Key:      fmt.Sprintf("group-%d", i%13),
			Mismatch: i%5 == 0,
		})
	}

	return residues
}

func TestAggregate(t *testing.T) {
	space, err := adam.NewCovariateSpace(recaltest.NewIdentity())
	require.NoError(t, err)

	residues := makeResidues(10_000)

	t.Run("matches a sequential fold", func(t *testing.T) {
		want, err := adam.TableFromResidues(space, residues)
		require.NoError(t, err)

		cfg := &Config{Workers: 4, ChunkSize: 128}
		got, err := Aggregate(context.Background(), cfg, space, NewSliceSource(residues, cfg.ChunkSize),
			WithLogger(recaltest.NewTestLogger(t)))
		require.NoError(t, err)

		require.Equal(t, want.Len(), got.Len())
		require.Equal(t, want.ExportSorted(), got.ExportSorted())
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		got, err := Aggregate(context.Background(), nil, space, NewSliceSource(residues, 256))
		require.NoError(t, err)
		require.Equal(t, 13, got.Len())
	})

	t.Run("single worker", func(t *testing.T) {
		cfg := &Config{Workers: 1, ChunkSize: 64}
		got, err := Aggregate(context.Background(), cfg, space, NewSliceSource(residues, 64))
		require.NoError(t, err)
		require.Equal(t, 13, got.Len())
	})

	t.Run("nil source fails", func(t *testing.T) {
		_, err := Aggregate(context.Background(), nil, space, nil)
		require.ErrorIs(t, err, types.ErrSourceRequired)
	})

	t.Run("source errors abort the run", func(t *testing.T) {
		boom := errors.New("disk on fire")
		_, err := Aggregate(context.Background(), nil, space, &failingSource{err: boom})
		require.ErrorIs(t, err, boom)
	})

	t.Run("canceled context aborts the run", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Aggregate(ctx, nil, space, NewSliceSource(residues, 64))
		require.ErrorIs(t, err, context.Canceled)
	})
}

// failingSource returns one batch, then an error.
type failingSource struct {
	calls int
	err   error
}

func (f *failingSource) Next(_ context.Context) ([]types.Residue, error) {
	f.calls++
	if f.calls == 1 {
		return []types.Residue{recaltest.Residue{Key: "A"}}, nil
	}

	return nil, f.err
}

func TestSliceSource(t *testing.T) {
	residues := makeResidues(10)

	t.Run("hands out chunks in order", func(t *testing.T) {
		src := NewSliceSource(residues, 4)

		batch, err := src.Next(context.Background())
		require.NoError(t, err)
		require.Len(t, batch, 4)

		batch, err = src.Next(context.Background())
		require.NoError(t, err)
		require.Len(t, batch, 4)

		batch, err = src.Next(context.Background())
		require.NoError(t, err)
		require.Len(t, batch, 2)

		_, err = src.Next(context.Background())
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("reset rewinds", func(t *testing.T) {
		src := NewSliceSource(residues, 100)

		_, err := src.Next(context.Background())
		require.NoError(t, err)
		_, err = src.Next(context.Background())
		require.ErrorIs(t, err, io.EOF)

		src.Reset()
		batch, err := src.Next(context.Background())
		require.NoError(t, err)
		require.Len(t, batch, 10)
	})

	t.Run("chunk size floor", func(t *testing.T) {
		src := NewSliceSource(residues, 0)
		batch, err := src.Next(context.Background())
		require.NoError(t, err)
		require.Len(t, batch, 1)
	})
}
