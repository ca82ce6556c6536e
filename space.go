package adam

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/noamBarkai/adam/types"
)

// spaceHashSeed salts space hashes; distinct from keyHashSeed so space and
// key hashes belong to different hash families.
const spaceHashSeed uint64 = 0xc2b2ae3d27d4eb4f

// CovariateSpace is an ordered, non-empty list of covariates, fixed at
// construction.
//
// It defines the projection from a residue to a CovariateKey, and a total
// order over keys it produced: lexicographic composition of each dimension's
// own comparator, tie-broken by the earliest differing dimension. The
// ordering function is built once at construction and cached for the life of
// the space; exports of large tables sort with it repeatedly.
//
// A space is immutable and shared by reference across every table and key
// that uses it. Two independently constructed spaces are equal iff their
// ordered covariate name lists are equal, which makes identically configured
// spaces merge-compatible.
type CovariateSpace struct {
	covariates []types.Covariate
	names      []string
	cmp        func(a, b *CovariateKey) int
	hash       uint64
}

// NewCovariateSpace creates a covariate space from the given covariates, in
// order.
//
// Parameters:
//   - covariates: One or more covariate dimensions
//
// Returns:
//   - *CovariateSpace: Initialized space
//   - error: ErrNoCovariates if the list is empty
//
// Example:
//
//	space, err := adam.NewCovariateSpace(covariate.NewCycle(), covariate.NewDinucleotide())
//	if err != nil { /* handle */ }
func NewCovariateSpace(covariates ...types.Covariate) (*CovariateSpace, error) {
	if len(covariates) == 0 {
		return nil, types.ErrNoCovariates
	}

	names := make([]string, len(covariates))
	for i, cov := range covariates {
		names[i] = cov.Name()
	}

	s := &CovariateSpace{
		covariates: covariates,
		names:      names,
		hash:       xxh3.HashStringSeed(strings.Join(names, "\x1f"), spaceHashSeed),
	}
	s.cmp = s.compareKeys

	return s, nil
}

// ProjectResidue projects a residue into a key by applying each covariate's
// compute function in the space's fixed order.
func (s *CovariateSpace) ProjectResidue(r types.Residue) *CovariateKey {
	values := make([]any, len(s.covariates))
	parts := make([]string, len(s.covariates))
	for i, cov := range s.covariates {
		values[i] = cov.Compute(r)
		parts[i] = cov.FormatValue(values[i])
	}

	return newCovariateKey(values, parts)
}

// KeyOf constructs a key directly from dimension values, one per covariate in
// order. Each value must be of the type the corresponding covariate produces.
//
// Returns:
//   - *CovariateKey: The constructed key
//   - error: ErrDimensionMismatch if the value count differs from the
//     space's dimension count
func (s *CovariateSpace) KeyOf(values ...any) (*CovariateKey, error) {
	if len(values) != len(s.covariates) {
		return nil, fmt.Errorf("%w: got %d values for %d covariates",
			types.ErrDimensionMismatch, len(values), len(s.covariates))
	}

	vals := make([]any, len(values))
	parts := make([]string, len(values))
	for i, v := range values {
		vals[i] = v
		parts[i] = s.covariates[i].FormatValue(v)
	}

	return newCovariateKey(vals, parts), nil
}

// CompareKeys orders two keys produced by this space.
//
// Dimensions are compared in order with each covariate's own comparator; the
// first non-equal dimension decides (short-circuit lexicographic order). If
// all dimensions compare equal the keys are equal.
//
// Both keys must have been produced by this exact space. Violating that is a
// programming error and panics rather than silently misbehaving.
//
// Returns:
//   - int: negative if a < b, 0 if equal, positive if a > b
func (s *CovariateSpace) CompareKeys(a, b *CovariateKey) int {
	return s.cmp(a, b)
}

// Comparator returns the space's cached key ordering function.
//
// The same function value is returned for the life of the space; callers can
// hand it to sort routines without rebuilding it per comparison.
func (s *CovariateSpace) Comparator() func(a, b *CovariateKey) int {
	return s.cmp
}

func (s *CovariateSpace) compareKeys(a, b *CovariateKey) int {
	if a.Len() != len(s.covariates) || b.Len() != len(s.covariates) {
		panic(fmt.Sprintf("adam: comparing keys with %d and %d dimensions in a %d-dimension covariate space",
			a.Len(), b.Len(), len(s.covariates)))
	}

	for i, cov := range s.covariates {
		if c := cov.Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Equal reports whether two spaces have structurally equal covariate lists,
// compared by covariate definition (ordered names).
func (s *CovariateSpace) Equal(other *CovariateSpace) bool {
	if other == nil || len(s.names) != len(other.names) {
		return false
	}
	for i, name := range s.names {
		if name != other.names[i] {
			return false
		}
	}

	return true
}

// Hash returns a structural hash of the space's ordered covariate name list.
func (s *CovariateSpace) Hash() uint64 {
	return s.hash
}

// Len returns the number of dimensions in the space.
func (s *CovariateSpace) Len() int {
	return len(s.covariates)
}

// Covariates returns a copy of the space's covariate list in order.
func (s *CovariateSpace) Covariates() []types.Covariate {
	out := make([]types.Covariate, len(s.covariates))
	copy(out, s.covariates)

	return out
}

// Names returns a copy of the ordered covariate name list.
func (s *CovariateSpace) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// String renders the space as its comma-joined covariate names.
func (s *CovariateSpace) String() string {
	return strings.Join(s.names, ",")
}
