package adam

import (
	"fmt"

	"github.com/noamBarkai/adam/quality"
	"github.com/noamBarkai/adam/types"
)

// referenceQualityCap is the maximum score the reference estimator reports.
// Scores above Phred 50 are clipped to it.
const referenceQualityCap = quality.Score(50)

// Observation is an immutable aggregate of total and mismatch counts for one
// covariate group.
//
// The invariant 0 <= mismatches <= total holds for every constructed value.
// Merge is associative and commutative with EmptyObservation as identity, so
// partial aggregates can be combined in any order.
type Observation struct {
	total      int64
	mismatches int64
}

// NewObservation creates an observation from explicit counts.
//
// Parameters:
//   - total: Number of residues observed
//   - mismatches: Number of those residues that mismatched the reference
//
// Returns:
//   - Observation: The constructed observation
//   - error: ErrNegativeCount or ErrMismatchesExceedTotal on invariant violation
func NewObservation(total, mismatches int64) (Observation, error) {
	if total < 0 || mismatches < 0 {
		return Observation{}, fmt.Errorf("%w: total=%d mismatches=%d",
			types.ErrNegativeCount, total, mismatches)
	}
	if mismatches > total {
		return Observation{}, fmt.Errorf("%w: total=%d mismatches=%d",
			types.ErrMismatchesExceedTotal, total, mismatches)
	}

	return Observation{total: total, mismatches: mismatches}, nil
}

// EmptyObservation returns the identity observation (zero counts).
func EmptyObservation() Observation {
	return Observation{}
}

// UnitObservation returns the observation for a single residue: total 1, and
// one mismatch if the residue disagreed with the reference.
func UnitObservation(mismatch bool) Observation {
	if mismatch {
		return Observation{total: 1, mismatches: 1}
	}

	return Observation{total: 1}
}

// Total returns the total residue count.
func (o Observation) Total() int64 {
	return o.total
}

// Mismatches returns the mismatching residue count.
func (o Observation) Mismatches() int64 {
	return o.mismatches
}

// Merge returns a new observation with both counts summed component-wise.
//
// The operation is associative and commutative, and EmptyObservation is its
// identity; a fresh value is returned so no aliasing hazards exist.
func (o Observation) Merge(other Observation) Observation {
	return Observation{
		total:      o.total + other.total,
		mismatches: o.mismatches + other.mismatches,
	}
}

// BayesianQuality estimates the group's quality as the posterior mean error
// probability under a Beta(alpha, beta) prior with Binomial likelihood:
//
//	p = (alpha + mismatches) / (alpha + beta + total)
//
// Parameters:
//   - alpha: Prior pseudo-count of mismatches
//   - beta: Prior pseudo-count of matches
//
// Returns:
//   - quality.Score: Phred score for the posterior mean error probability
func (o Observation) BayesianQuality(alpha, beta float64) quality.Score {
	p := (alpha + float64(o.mismatches)) / (alpha + beta + float64(o.total))

	return quality.FromErrorProbability(p)
}

// EmpiricalQuality is the primary estimator: BayesianQuality with a uniform
// Beta(1, 1) prior (Laplace's rule of succession).
func (o Observation) EmpiricalQuality() quality.Score {
	return o.BayesianQuality(1, 1)
}

// ReferenceQuality estimates quality with the historical formula of the
// external recalibration tool this table format mirrors:
//
//	p = (smoothing + mismatches) / (smoothing + total)
//
// clipped to a maximum of Phred 50 by taking the minimum of the score for p
// and Phred 50. Callers normally pass smoothing = 1.
//
// This is NOT a drop-in replacement for BayesianQuality: the denominator
// omits the matching pseudo-count and the clip changes large-sample results.
// The formula is preserved exactly for compatibility with the external tool,
// even where it disagrees with the textbook smoothing it is named after.
func (o Observation) ReferenceQuality(smoothing float64) quality.Score {
	p := (smoothing + float64(o.mismatches)) / (smoothing + float64(o.total))

	return quality.Min(quality.FromErrorProbability(p), referenceQualityCap)
}

// String renders the observation as "mismatches / total (quality)" using the
// empirical estimator.
func (o Observation) String() string {
	return fmt.Sprintf("%d / %d (%s)", o.mismatches, o.total, o.EmpiricalQuality())
}
