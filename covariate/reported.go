package covariate

import (
	"fmt"
	"strconv"

	"github.com/noamBarkai/adam/quality"
	"github.com/noamBarkai/adam/types"
)

// ReportedQualitySource is the residue view the ReportedQuality covariate requires.
type ReportedQualitySource interface {
	// ReportedQuality returns the Phred quality score the sequencer assigned
	// to the residue.
	ReportedQuality() quality.Score
}

// ReportedQuality groups residues by the quality score the sequencer
// reported, so the table can map reported to empirical quality.
type ReportedQuality struct{}

var (
	_ types.Covariate  = (*ReportedQuality)(nil)
	_ types.ValueCodec = (*ReportedQuality)(nil)
)

// NewReportedQuality creates a new reported-quality covariate.
func NewReportedQuality() *ReportedQuality {
	return &ReportedQuality{}
}

// Name returns the covariate identifier.
func (q *ReportedQuality) Name() string {
	return "reported_quality"
}

// Compute returns the residue's reported quality score.
func (q *ReportedQuality) Compute(r types.Residue) any {
	src, ok := r.(ReportedQualitySource)
	if !ok {
		panic(fmt.Sprintf("covariate: residue %T does not implement ReportedQualitySource", r))
	}

	return src.ReportedQuality()
}

// Compare orders two score values numerically.
func (q *ReportedQuality) Compare(a, b any) int {
	av, bv := a.(quality.Score), b.(quality.Score)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// FormatValue renders a score value as its decimal form (without the "Q"
// prefix, keeping the rendering parseable).
func (q *ReportedQuality) FormatValue(v any) string {
	return strconv.Itoa(int(v.(quality.Score)))
}

// ParseValue inverts FormatValue.
func (q *ReportedQuality) ParseValue(s string) (any, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid reported quality value %q: %w", s, err)
	}

	return quality.Score(n), nil
}
