package testing

import (
	"fmt"
	"strings"

	"github.com/noamBarkai/adam/quality"
	"github.com/noamBarkai/adam/types"
)

// Residue is an in-memory residue for tests. It satisfies the residue views
// of every built-in covariate plus the Labeled view of the identity covariate.
type Residue struct {
	// Key is the label returned for the identity covariate.
	Key string

	// Mismatch marks the residue as disagreeing with the reference.
	Mismatch bool

	// ReadCycle is the sequencing cycle within the read.
	ReadCycle int

	// Context is the dinucleotide context (e.g. "AC").
	Context string

	// Reported is the sequencer-reported quality score.
	Reported quality.Score
}

var _ types.Residue = Residue{}

// IsMismatch reports whether the residue disagrees with the reference.
func (r Residue) IsMismatch() bool { return r.Mismatch }

// Label returns the identity-covariate label.
func (r Residue) Label() string { return r.Key }

// Cycle returns the sequencing cycle.
func (r Residue) Cycle() int { return r.ReadCycle }

// Dinucleotide returns the dinucleotide context.
func (r Residue) Dinucleotide() string { return r.Context }

// ReportedQuality returns the sequencer-reported quality score.
func (r Residue) ReportedQuality() quality.Score { return r.Reported }

// Labeled is the residue view the identity covariate requires.
type Labeled interface {
	Label() string
}

// Identity is a covariate that groups residues by an explicit label.
//
// It makes grouping behavior directly observable in tests: residues with the
// same Key land in the same table entry.
type Identity struct{}

var (
	_ types.Covariate  = (*Identity)(nil)
	_ types.ValueCodec = (*Identity)(nil)
)

// NewIdentity creates a new identity covariate.
func NewIdentity() *Identity {
	return &Identity{}
}

// Name returns the covariate identifier.
func (i *Identity) Name() string { return "identity" }

// Compute returns the residue's label.
func (i *Identity) Compute(r types.Residue) any {
	src, ok := r.(Labeled)
	if !ok {
		panic(fmt.Sprintf("testing: residue %T does not implement Labeled", r))
	}

	return src.Label()
}

// Compare orders two labels lexicographically.
func (i *Identity) Compare(a, b any) int {
	return strings.Compare(a.(string), b.(string))
}

// FormatValue renders a label as itself.
func (i *Identity) FormatValue(v any) string { return v.(string) }

// ParseValue returns the label unchanged.
func (i *Identity) ParseValue(s string) (any, error) { return s, nil }
