// Package covariate provides built-in covariate implementations.
//
// Covariates project a residue into one dimension of a grouping key for
// recalibration statistics. The package includes three built-in covariates:
//
//   - Cycle: Sequencing cycle of the residue within its read
//   - Dinucleotide: The residue's base paired with the preceding base
//   - ReportedQuality: The quality score the sequencer reported
//
// Each covariate demands its residue view through a small interface
// (CycleSource, DinucleotideSource, ReportedQualitySource); feeding a residue
// that does not satisfy the interface is a programming error and panics.
//
// Custom covariates can be implemented by satisfying the types.Covariate
// interface; implement types.ValueCodec as well if partial tables containing
// the covariate need to cross a process boundary (see the distrib package).
package covariate
