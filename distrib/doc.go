// Package distrib exchanges partial observation tables between processes
// over NATS.
//
// A shard worker process aggregates its residues locally, then publishes its
// partial table to a subject with Publisher. A single reducer process owns a
// Collector, which subscribes to that subject and merges incoming partial
// tables into an accumulator until the expected number of shards has
// reported. Merge order does not matter; the table merge is associative and
// commutative.
//
// Tables cross the wire as a JSON payload carrying the covariate space's
// name list plus one row per entry (formatted key values and counts). Every
// covariate in the space must implement types.ValueCodec for the receiving
// side to rehydrate keys; the built-in covariates all do.
package distrib
