package adam

import "github.com/noamBarkai/adam/types"

// Re-export interfaces from the types package.
//
// This file provides a stable public API for the library's core interfaces.
// It uses type aliases to re-export definitions from the `types` subpackage,
// which contains the actual declarations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `adam` package, while
// still providing a convenient `adam.Covariate`, `adam.Logger`, etc. for users.
type (
	Covariate  = types.Covariate
	ValueCodec = types.ValueCodec
	Residue    = types.Residue
)

// Re-export observability interfaces from the types package for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)
