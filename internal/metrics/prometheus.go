package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noamBarkai/adam/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	observationsTotal prometheus.Counter
	mergesTotal       prometheus.Counter
	mergedEntries     prometheus.Counter
	exportEntries     prometheus.Histogram
	exportLatency     prometheus.Histogram
	shardResidues     prometheus.Histogram
	shardLatency      prometheus.Histogram
	reduceLatency     prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "recal" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "recal"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.observationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "table",
			Name:      "observations_total",
			Help:      "Total residues folded into observation tables.",
		})
		p.mergesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "table",
			Name:      "merges_total",
			Help:      "Total table merge operations.",
		})
		p.mergedEntries = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "table",
			Name:      "merged_entries_total",
			Help:      "Total entries folded in by table merges.",
		})
		p.exportEntries = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "table",
			Name:      "export_entries",
			Help:      "Entries per sorted export.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10), // 16 .. ~4M keys
		})
		p.exportLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "table",
			Name:      "export_latency_seconds",
			Help:      "Latency of sorted exports in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		})
		p.shardResidues = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "pipeline",
			Name:      "shard_residues",
			Help:      "Residues processed per shard worker.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		})
		p.shardLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "pipeline",
			Name:      "shard_latency_seconds",
			Help:      "Latency of shard aggregation in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		})
		p.reduceLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "pipeline",
			Name:      "reduce_latency_seconds",
			Help:      "Latency of partial-table reduction in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		})

		collectors := []prometheus.Collector{
			p.observationsTotal, p.mergesTotal, p.mergedEntries,
			p.exportEntries, p.exportLatency,
			p.shardResidues, p.shardLatency, p.reduceLatency,
		}
		for _, c := range collectors {
			// AlreadyRegisteredError is tolerated so multiple collectors can
			// share a registry in tests.
			_ = p.reg.Register(c)
		}
	})
}

// RecordObservations counts residues folded into a table.
func (p *PrometheusCollector) RecordObservations(count int) {
	p.ensureRegistered()
	p.observationsTotal.Add(float64(count))
}

// RecordMerge counts a table merge and the entries it folded in.
func (p *PrometheusCollector) RecordMerge(entries int) {
	p.ensureRegistered()
	p.mergesTotal.Inc()
	p.mergedEntries.Add(float64(entries))
}

// RecordExport observes the size and latency of a sorted export.
func (p *PrometheusCollector) RecordExport(entries int, duration float64) {
	p.ensureRegistered()
	p.exportEntries.Observe(float64(entries))
	p.exportLatency.Observe(duration)
}

// RecordShardCompleted observes a finished shard worker.
func (p *PrometheusCollector) RecordShardCompleted(residues int, duration float64) {
	p.ensureRegistered()
	p.shardResidues.Observe(float64(residues))
	p.shardLatency.Observe(duration)
}

// RecordReduce observes a partial-table reduction.
func (p *PrometheusCollector) RecordReduce(_ /* shards */ int, duration float64) {
	p.ensureRegistered()
	p.reduceLatency.Observe(duration)
}
