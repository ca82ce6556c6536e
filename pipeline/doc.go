// Package pipeline provides data-parallel aggregation of recalibration
// statistics.
//
// Aggregate fans residues out to a pool of workers, each of which builds its
// own observation table over a disjoint slice of the input (no shared mutable
// state), then folds the partial tables into a single accumulator. Because
// the table merge is associative and commutative, the reduction order does
// not affect the final table.
//
// Residues are pulled in batches from a ResidueSource; SliceSource adapts an
// in-memory slice. Sources backed by file readers or decoders only need to
// implement the one-method interface.
package pipeline
