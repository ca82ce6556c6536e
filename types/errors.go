package types

import "errors"

// Sentinel errors for the recalibration library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (CovariateSpace, Observation, ObservationTable, etc.)
//   - Use consistent messages across similar error types

// CovariateSpace errors - configuration-time failures.
var (
	// ErrNoCovariates is returned when constructing a covariate space with an
	// empty covariate list. A space must have at least one dimension.
	ErrNoCovariates = errors.New("covariate space requires at least one covariate")

	// ErrDimensionMismatch is returned when a key's dimension count does not
	// match the covariate space it is used with.
	ErrDimensionMismatch = errors.New("key dimension count does not match covariate space")
)

// Observation errors - invariant violations at construction time.
var (
	// ErrNegativeCount is returned when an observation is constructed with a
	// negative total or mismatch count.
	ErrNegativeCount = errors.New("observation counts must be non-negative")

	// ErrMismatchesExceedTotal is returned when an observation is constructed
	// with more mismatches than total observations.
	ErrMismatchesExceedTotal = errors.New("mismatch count exceeds total count")
)

// ObservationTable errors - construction and merge failures.
var (
	// ErrSpaceRequired is returned when a table is constructed without a
	// covariate space.
	ErrSpaceRequired = errors.New("covariate space is required")

	// ErrIncompatibleSpace is returned when merging tables (or recording keys)
	// whose originating covariate spaces are not structurally equal.
	ErrIncompatibleSpace = errors.New("observation tables use different covariate spaces")
)

// Pipeline errors - shard aggregation failures.
var (
	// ErrInvalidConfig is returned when the pipeline configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceRequired is returned when residue source is nil.
	ErrSourceRequired = errors.New("residue source is required")
)

// Distrib errors - partial-table transport failures.
var (
	// ErrConnRequired is returned when NATS connection is nil.
	ErrConnRequired = errors.New("NATS connection is required")

	// ErrSubjectRequired is returned when the transport subject is empty.
	ErrSubjectRequired = errors.New("subject is required")

	// ErrCodecUnsupported is returned when decoding requires a covariate that
	// does not implement ValueCodec.
	ErrCodecUnsupported = errors.New("covariate does not support value decoding")

	// ErrDecodeFailed is returned when a partial-table payload cannot be decoded.
	ErrDecodeFailed = errors.New("failed to decode partial table")
)
