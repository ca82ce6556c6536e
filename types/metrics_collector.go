package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Table-level methods are called from whichever goroutine owns the table;
// pipeline-level methods may be called from worker goroutines and must be
// thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	TableMetrics
	PipelineMetrics
}

// TableMetrics defines metrics for observation table operations.
type TableMetrics interface {
	// RecordObservations records residues folded into a table.
	//
	// Parameters:
	//   - count: Number of residues observed
	RecordObservations(count int)

	// RecordMerge records a table merge.
	//
	// Parameters:
	//   - entries: Number of entries merged in from the other table
	RecordMerge(entries int)

	// RecordExport records a sorted export.
	//
	// Parameters:
	//   - entries: Number of entries exported
	//   - duration: Time taken in seconds (sort-dominated for large tables)
	RecordExport(entries int, duration float64)
}

// PipelineMetrics defines metrics for data-parallel shard aggregation.
type PipelineMetrics interface {
	// RecordShardCompleted records a worker finishing its shard.
	//
	// Parameters:
	//   - residues: Number of residues the shard processed
	//   - duration: Time taken in seconds
	RecordShardCompleted(residues int, duration float64)

	// RecordReduce records the reduction of partial tables into the accumulator.
	//
	// Parameters:
	//   - shards: Number of partial tables merged
	//   - duration: Time taken in seconds
	RecordReduce(shards int, duration float64)
}
