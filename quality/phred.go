// Package quality provides the Phred quality score encoding used by the
// recalibration statistics.
//
// A Phred score Q encodes an error probability p as Q = -10 * log10(p), so
// Q10 means a 1-in-10 error chance, Q20 a 1-in-100 chance, and so on. Scores
// are rounded to the nearest integer, matching the convention of sequencing
// file formats that store qualities as small integers.
package quality

import (
	"fmt"
	"math"
)

// Score is an integer Phred-scaled quality score.
type Score int

// minErrorProbability is the floor applied when converting probabilities to
// scores. It keeps FromErrorProbability total over [0, 1] without producing
// an infinite score for p = 0.
const minErrorProbability = 1e-30

// FromErrorProbability converts an error probability to a Phred score.
//
// Probabilities above 1 are clamped to 1 (Q0) and probabilities at or below
// zero are clamped to a tiny positive floor, so the conversion is total.
//
// Parameters:
//   - p: Error probability, normally in (0, 1]
//
// Returns:
//   - Score: Nearest-integer Phred score for p
//
// Example:
//
//	quality.FromErrorProbability(0.01) // Q20
func FromErrorProbability(p float64) Score {
	if p > 1 {
		p = 1
	}
	if p < minErrorProbability {
		p = minErrorProbability
	}

	return Score(math.Round(-10 * math.Log10(p)))
}

// ErrorProbability converts the score back to an error probability.
//
// Returns:
//   - float64: 10^(-Score/10)
func (s Score) ErrorProbability() float64 {
	return math.Pow(10, -float64(s)/10)
}

// Min returns the smaller (worse) of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}

	return b
}

// String renders the score in the conventional "Qnn" form.
func (s Score) String() string {
	return fmt.Sprintf("Q%d", int(s))
}
