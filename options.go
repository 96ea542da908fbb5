package colstore

import "log/slog"

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures a Chunk.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for index builds and
// selections. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	mc := &colstore.BasicMetricsCollector{}
//	chunk := colstore.NewChunk(meta, colstore.WithMetricsCollector(mc))
//	stats := mc.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	chunk := colstore.NewChunk(meta, colstore.WithLogger(colstore.NewJSONLogger(slog.LevelDebug)))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return WithLogger(NewTextLogger(level))
}

func applyOptions(optFns []Option) options {
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if opts.metrics == nil {
		opts.metrics = NoopMetricsCollector{}
	}
	return opts
}
