// Package metrics provides types.MetricsCollector implementations for the library.
package metrics

import "github.com/noamBarkai/adam/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// TableMetrics implementation

// RecordObservations discards the observation count.
func (n *NopMetrics) RecordObservations(_ /* count */ int) {
	// No-op
}

// RecordMerge discards the merge metric.
func (n *NopMetrics) RecordMerge(_ /* entries */ int) {
	// No-op
}

// RecordExport discards the export metric.
func (n *NopMetrics) RecordExport(_ /* entries */ int, _ /* duration */ float64) {
	// No-op
}

// PipelineMetrics implementation

// RecordShardCompleted discards the shard completion metric.
func (n *NopMetrics) RecordShardCompleted(_ /* residues */ int, _ /* duration */ float64) {
	// No-op
}

// RecordReduce discards the reduce metric.
func (n *NopMetrics) RecordReduce(_ /* shards */ int, _ /* duration */ float64) {
	// No-op
}
