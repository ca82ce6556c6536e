package adam

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noamBarkai/adam/quality"
	"github.com/noamBarkai/adam/types"
)

func TestNewObservation(t *testing.T) {
	t.Run("valid counts", func(t *testing.T) {
		obs, err := NewObservation(5, 2)
		require.NoError(t, err)
		require.Equal(t, int64(5), obs.Total())
		require.Equal(t, int64(2), obs.Mismatches())
	})

	t.Run("mismatches exceeding total fail", func(t *testing.T) {
		_, err := NewObservation(5, 6)
		require.ErrorIs(t, err, types.ErrMismatchesExceedTotal)
	})

	t.Run("negative counts fail", func(t *testing.T) {
		_, err := NewObservation(-1, 0)
		require.ErrorIs(t, err, types.ErrNegativeCount)

		_, err = NewObservation(5, -2)
		require.ErrorIs(t, err, types.ErrNegativeCount)
	})
}

func TestUnitObservation(t *testing.T) {
	match := UnitObservation(false)
	require.Equal(t, int64(1), match.Total())
	require.Equal(t, int64(0), match.Mismatches())

	mismatch := UnitObservation(true)
	require.Equal(t, int64(1), mismatch.Total())
	require.Equal(t, int64(1), mismatch.Mismatches())
}

func TestObservation_Merge(t *testing.T) {
	mustObs := func(total, mismatches int64) Observation {
		obs, err := NewObservation(total, mismatches)
		require.NoError(t, err)

		return obs
	}

	a := mustObs(10, 3)
	b := mustObs(7, 1)
	c := mustObs(100, 50)

	t.Run("sums counts component-wise", func(t *testing.T) {
		merged := a.Merge(b)
		require.Equal(t, int64(17), merged.Total())
		require.Equal(t, int64(4), merged.Mismatches())
	})

	t.Run("commutative", func(t *testing.T) {
		require.Equal(t, a.Merge(b), b.Merge(a))
	})

	t.Run("associative", func(t *testing.T) {
		require.Equal(t, a.Merge(b).Merge(c), a.Merge(b.Merge(c)))
	})

	t.Run("empty observation is the identity", func(t *testing.T) {
		require.Equal(t, a, a.Merge(EmptyObservation()))
		require.Equal(t, a, EmptyObservation().Merge(a))
	})

	t.Run("does not mutate operands", func(t *testing.T) {
		a.Merge(b)
		require.Equal(t, int64(10), a.Total())
		require.Equal(t, int64(7), b.Total())
	})
}

func TestObservation_BayesianQuality(t *testing.T) {
	t.Run("posterior mean with uniform prior", func(t *testing.T) {
		// p = (1+1)/(1+1+2) = 0.5 -> Q3
		obs, err := NewObservation(2, 1)
		require.NoError(t, err)
		require.Equal(t, quality.Score(3), obs.BayesianQuality(1, 1))
		require.Equal(t, obs.BayesianQuality(1, 1), obs.EmpiricalQuality())
	})

	t.Run("worsens as mismatches increase", func(t *testing.T) {
		const total = 100
		prevScore := quality.Score(1 << 30)
		prevProb := -1.0
		for mismatches := int64(0); mismatches <= total; mismatches++ {
			obs, err := NewObservation(total, mismatches)
			require.NoError(t, err)

			q := obs.BayesianQuality(1, 1)
			// The estimated error probability is strictly monotone; the
			// integer score can tie between adjacent mismatch counts but
			// never improves.
			p := (1 + float64(mismatches)) / (2 + float64(total))
			require.Greater(t, p, prevProb)
			require.LessOrEqual(t, q, prevScore, "quality must not improve at mismatches=%d", mismatches)
			prevScore = q
			prevProb = p
		}
	})
}

func TestObservation_ReferenceQuality(t *testing.T) {
	t.Run("no clip for small totals", func(t *testing.T) {
		// p = (1+0)/(1+1) = 0.5 -> Q3, far below the Phred 50 cap.
		obs, err := NewObservation(1, 0)
		require.NoError(t, err)
		require.Equal(t, quality.Score(3), obs.ReferenceQuality(1))
	})

	t.Run("clips to Phred 50", func(t *testing.T) {
		// p = 1/(1+10^9) ~ 1e-9 -> Q90 unclipped.
		obs, err := NewObservation(1_000_000_000, 0)
		require.NoError(t, err)
		require.Equal(t, quality.Score(50), obs.ReferenceQuality(1))
	})

	t.Run("differs from the Bayesian estimator", func(t *testing.T) {
		obs, err := NewObservation(1, 1)
		require.NoError(t, err)
		// Reference: p = 2/2 = 1 -> Q0. Bayesian: p = 2/3 -> Q2.
		require.Equal(t, quality.Score(0), obs.ReferenceQuality(1))
		require.Equal(t, quality.Score(2), obs.EmpiricalQuality())
	})
}

func TestObservation_String(t *testing.T) {
	obs, err := NewObservation(2, 1)
	require.NoError(t, err)
	require.Equal(t, "1 / 2 (Q3)", obs.String())

	require.Equal(t, "0 / 0 (Q3)", EmptyObservation().String())
}
