package adam

import (
	"strings"

	"github.com/zeebo/xxh3"
)

// keyHashSeed salts the key hash so that key hashes do not collide with
// unrelated xxh3 hash families used elsewhere in a pipeline.
const keyHashSeed uint64 = 0x9e3779b97f4a7c15

// CovariateKey is an ordered, fixed-length tuple of covariate values, one per
// dimension of the CovariateSpace that produced it.
//
// Keys are immutable and structurally comparable for equality and hashing.
// They carry no ordering of their own: comparing two dimension values needs
// the dimension-specific comparator, which lives on the producing space
// (CovariateSpace.CompareKeys). Keys from different spaces must never be
// compared or stored in the same table.
type CovariateKey struct {
	values []any
	parts  []string
	canon  string
}

// newCovariateKey builds a key from dimension values and their formatted
// renderings. The canonical form joins the renderings with an unprintable
// separator; FormatValue injectivity (types.Covariate) makes it unique per
// value tuple.
func newCovariateKey(values []any, parts []string) *CovariateKey {
	return &CovariateKey{
		values: values,
		parts:  parts,
		canon:  strings.Join(parts, "\x1f"),
	}
}

// Len returns the number of dimensions in the key.
func (k *CovariateKey) Len() int {
	return len(k.values)
}

// At returns the value of the i-th dimension.
func (k *CovariateKey) At(i int) any {
	return k.values[i]
}

// Values returns a copy of the key's dimension values in order.
func (k *CovariateKey) Values() []any {
	out := make([]any, len(k.values))
	copy(out, k.values)

	return out
}

// Strings returns a copy of the formatted per-dimension renderings in order.
//
// The renderings are produced by each dimension's covariate and are stable,
// making them suitable for reporting and wire encoding.
func (k *CovariateKey) Strings() []string {
	out := make([]string, len(k.parts))
	copy(out, k.parts)

	return out
}

// Equal reports whether two keys have structurally equal value sequences.
func (k *CovariateKey) Equal(other *CovariateKey) bool {
	if other == nil {
		return false
	}

	return k.canon == other.canon
}

// Hash returns a structural hash of the key's value sequence, salted with a
// fixed seed.
func (k *CovariateKey) Hash() uint64 {
	return xxh3.HashStringSeed(k.canon, keyHashSeed)
}

// String renders the key as its comma-joined dimension values.
func (k *CovariateKey) String() string {
	return strings.Join(k.parts, ",")
}
