package adam

import "github.com/noamBarkai/adam/types"

// Sentinel errors returned by the core aggregation types.
//
// The canonical declarations live in the types package; these aliases keep
// errors.Is checks working against either package.
var (
	// ErrNoCovariates is returned when constructing a covariate space with an
	// empty covariate list.
	ErrNoCovariates = types.ErrNoCovariates

	// ErrDimensionMismatch is returned when a key's dimension count does not
	// match the covariate space it is used with.
	ErrDimensionMismatch = types.ErrDimensionMismatch

	// ErrNegativeCount is returned when an observation is constructed with a
	// negative count.
	ErrNegativeCount = types.ErrNegativeCount

	// ErrMismatchesExceedTotal is returned when an observation is constructed
	// with more mismatches than total observations.
	ErrMismatchesExceedTotal = types.ErrMismatchesExceedTotal

	// ErrSpaceRequired is returned when a table is constructed without a
	// covariate space.
	ErrSpaceRequired = types.ErrSpaceRequired

	// ErrIncompatibleSpace is returned when merging tables whose covariate
	// spaces are not structurally equal.
	ErrIncompatibleSpace = types.ErrIncompatibleSpace
)
