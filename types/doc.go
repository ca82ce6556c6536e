// Package types provides core type definitions and interfaces for the recalibration library.
//
// This package contains shared types that are used across multiple packages in the
// module. By keeping these types in a separate package, we avoid import cycles
// between the main adam package and its internal implementations.
//
// Key types:
//   - Covariate: Per-dimension projection and ordering capability
//   - ValueCodec: Optional wire encoding extension for covariates
//   - Residue: Read-only view of a single sequenced base
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
