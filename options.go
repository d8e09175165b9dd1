package writer

import "log/slog"

const defaultName = "writer"

type options struct {
	name             string
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Instrument.
type Option func(*options)

// WithName sets the name reported to the logger and metrics collector.
// An empty name keeps the default "writer".
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := writer.NewJSONLogger(slog.LevelDebug)
//	w = writer.Instrument(w, writer.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &writer.BasicMetricsCollector{}
//	w = writer.Instrument(w, writer.WithMetricsCollector(metrics))
//	w.Run()
//	fmt.Println(metrics.GetStats().RunCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		name:             defaultName,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
