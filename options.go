package adam

import (
	"github.com/noamBarkai/adam/internal/logging"
	"github.com/noamBarkai/adam/internal/metrics"
)

// Option configures an ObservationTable with optional dependencies.
type Option func(*tableOptions)

// tableOptions holds optional ObservationTable configuration.
type tableOptions struct {
	logger  Logger
	metrics MetricsCollector
}

func defaultTableOptions() tableOptions {
	return tableOptions{
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
	}
}

// WithLogger sets a logger.
//
// By default tables log nothing; supply a logger to see merge and export
// activity at debug level.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for table constructors
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	table, _ := adam.NewObservationTable(space, adam.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *tableOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for table constructors
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "recal")
//	table, _ := adam.NewObservationTable(space, adam.WithMetrics(collector))
func WithMetrics(collector MetricsCollector) Option {
	return func(o *tableOptions) {
		o.metrics = collector
	}
}
