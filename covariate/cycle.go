package covariate

import (
	"fmt"
	"strconv"

	"github.com/noamBarkai/adam/types"
)

// CycleSource is the residue view the Cycle covariate requires.
type CycleSource interface {
	// Cycle returns the sequencing cycle of the residue within its read.
	// Reverse-strand reads should report cycles counted from the read's
	// sequencing start, not its alignment start.
	Cycle() int
}

// Cycle groups residues by their sequencing cycle.
//
// Error rates drift over a run, so the cycle number is one of the strongest
// recalibration covariates.
type Cycle struct{}

var (
	_ types.Covariate  = (*Cycle)(nil)
	_ types.ValueCodec = (*Cycle)(nil)
)

// NewCycle creates a new sequencing-cycle covariate.
func NewCycle() *Cycle {
	return &Cycle{}
}

// Name returns the covariate identifier.
func (c *Cycle) Name() string {
	return "cycle"
}

// Compute returns the residue's sequencing cycle.
func (c *Cycle) Compute(r types.Residue) any {
	src, ok := r.(CycleSource)
	if !ok {
		panic(fmt.Sprintf("covariate: residue %T does not implement CycleSource", r))
	}

	return src.Cycle()
}

// Compare orders two cycle values numerically.
func (c *Cycle) Compare(a, b any) int {
	av, bv := a.(int), b.(int)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// FormatValue renders a cycle value as its decimal form.
func (c *Cycle) FormatValue(v any) string {
	return strconv.Itoa(v.(int))
}

// ParseValue inverts FormatValue.
func (c *Cycle) ParseValue(s string) (any, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid cycle value %q: %w", s, err)
	}

	return n, nil
}
