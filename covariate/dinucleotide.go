package covariate

import (
	"fmt"
	"strings"

	"github.com/noamBarkai/adam/types"
)

// DinucleotideSource is the residue view the Dinucleotide covariate requires.
type DinucleotideSource interface {
	// Dinucleotide returns the preceding base followed by the residue's own
	// base (e.g. "AC"). The first residue of a read, or a residue after an
	// ambiguous base, should report "NN".
	Dinucleotide() string
}

// Dinucleotide groups residues by their local two-base sequence context.
//
// Certain base transitions (notably after G/C) carry systematically different
// error rates, which this covariate captures.
type Dinucleotide struct{}

var (
	_ types.Covariate  = (*Dinucleotide)(nil)
	_ types.ValueCodec = (*Dinucleotide)(nil)
)

// NewDinucleotide creates a new dinucleotide-context covariate.
func NewDinucleotide() *Dinucleotide {
	return &Dinucleotide{}
}

// Name returns the covariate identifier.
func (d *Dinucleotide) Name() string {
	return "dinucleotide"
}

// Compute returns the residue's dinucleotide context.
func (d *Dinucleotide) Compute(r types.Residue) any {
	src, ok := r.(DinucleotideSource)
	if !ok {
		panic(fmt.Sprintf("covariate: residue %T does not implement DinucleotideSource", r))
	}

	return src.Dinucleotide()
}

// Compare orders two context values lexicographically.
func (d *Dinucleotide) Compare(a, b any) int {
	return strings.Compare(a.(string), b.(string))
}

// FormatValue renders a context value as itself.
func (d *Dinucleotide) FormatValue(v any) string {
	return v.(string)
}

// ParseValue validates and returns a context string.
func (d *Dinucleotide) ParseValue(s string) (any, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("invalid dinucleotide value %q: want 2 bases", s)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			return nil, fmt.Errorf("invalid dinucleotide value %q: unknown base %q", s, s[i])
		}
	}

	return s, nil
}
