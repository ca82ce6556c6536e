package distrib

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noamBarkai/adam"
	"github.com/noamBarkai/adam/covariate"
	recaltest "github.com/noamBarkai/adam/testing"
	"github.com/noamBarkai/adam/types"
)

func TestNewPublisher(t *testing.T) {
	_, nc := recaltest.StartEmbeddedNATS(t)

	t.Run("requires a connection", func(t *testing.T) {
		_, err := NewPublisher(nil, "recal.partials")
		require.ErrorIs(t, err, types.ErrConnRequired)
	})

	t.Run("requires a subject", func(t *testing.T) {
		_, err := NewPublisher(nc, "")
		require.ErrorIs(t, err, types.ErrSubjectRequired)
	})
}

func TestNewCollector(t *testing.T) {
	_, nc := recaltest.StartEmbeddedNATS(t)

	t.Run("requires a connection", func(t *testing.T) {
		_, err := NewCollector(nil, "recal.partials")
		require.ErrorIs(t, err, types.ErrConnRequired)
	})

	t.Run("requires a subject", func(t *testing.T) {
		_, err := NewCollector(nc, "")
		require.ErrorIs(t, err, types.ErrSubjectRequired)
	})
}

func TestPartialTableExchange(t *testing.T) {
	_, nc := recaltest.StartEmbeddedNATS(t)

	space, err := adam.NewCovariateSpace(covariate.NewCycle(), covariate.NewDinucleotide())
	require.NoError(t, err)

	const subject = "recal.partials"

	// Subscribe before any shard publishes so no partial is lost.
	collector, err := NewCollector(nc, subject, WithLogger(recaltest.NewTestLogger(t)))
	require.NoError(t, err)
	defer collector.Close()

	shard1, err := adam.TableFromResidues(space, []types.Residue{
		recaltest.Residue{ReadCycle: 1, Context: "AC", Mismatch: true},
		recaltest.Residue{ReadCycle: 1, Context: "AC"},
	})
	require.NoError(t, err)

	shard2, err := adam.TableFromResidues(space, []types.Residue{
		recaltest.Residue{ReadCycle: 1, Context: "AC"},
		recaltest.Residue{ReadCycle: 2, Context: "GT", Mismatch: true},
	})
	require.NoError(t, err)

	publisher, err := NewPublisher(nc, subject, WithLogger(recaltest.NewTestLogger(t)))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, publisher.Publish(ctx, shard1))
	require.NoError(t, publisher.Publish(ctx, shard2))

	merged, err := collector.Collect(ctx, space, 2)
	require.NoError(t, err)
	require.Equal(t, 2, merged.Len())

	key, err := space.KeyOf(1, "AC")
	require.NoError(t, err)
	obs, ok := merged.Get(key)
	require.True(t, ok)
	require.Equal(t, int64(3), obs.Total())
	require.Equal(t, int64(1), obs.Mismatches())

	t.Run("collect times out without enough shards", func(t *testing.T) {
		shortCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		_, err := collector.Collect(shortCtx, space, 1)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
