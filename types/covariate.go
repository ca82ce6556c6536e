package types

// Residue is a read-only view of a single sequenced base within a read.
//
// The core aggregation machinery only needs the mismatch predicate; individual
// covariates demand richer views (cycle number, dinucleotide context, reported
// quality) through their own narrow interfaces and type-assert at compute time.
type Residue interface {
	// IsMismatch reports whether this residue disagrees with the reference
	// (i.e. is an observed SNP). It seeds the mismatch count of the unit
	// observation recorded for the residue.
	IsMismatch() bool
}

// Covariate projects a residue into one dimension of a covariate key and
// defines the ordering of that dimension's values.
//
// Each implementation owns a private value type; the core never inspects the
// values it produces. Comparison and formatting happen inside the
// implementation, so the composition layer (CovariateSpace) needs no type
// assertions of its own.
type Covariate interface {
	// Name uniquely identifies the covariate definition, including any
	// configuration parameters. Two covariates with equal names must behave
	// identically; covariate space equality and hashing are defined over the
	// ordered name list.
	Name() string

	// Compute derives this covariate's value for the given residue.
	//
	// Implementations requiring a richer residue view should type-assert and
	// panic with a descriptive message on mismatch: feeding the wrong residue
	// type to a covariate is a programming error, not a recoverable condition.
	Compute(r Residue) any

	// Compare orders two values previously produced by Compute.
	//
	// Returns:
	//   - int: negative if a < b, 0 if equal, positive if a > b
	Compare(a, b any) int

	// FormatValue renders a value produced by Compute as a string.
	//
	// The rendering must be injective: distinct values must never format
	// equal, because the formatted form serves as the canonical grouping key
	// and the human-readable export of the dimension.
	FormatValue(v any) string
}

// ValueCodec is an optional extension of Covariate for covariates whose
// values can be rehydrated from their formatted form.
//
// It is required only when partial tables cross a process boundary (see the
// distrib package); purely in-process aggregation never parses values.
type ValueCodec interface {
	// ParseValue inverts FormatValue.
	//
	// Returns:
	//   - any: The decoded dimension value
	//   - error: Non-nil if s is not a valid rendering for this covariate
	ParseValue(s string) (any, error)
}
