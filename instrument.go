package writer

import "time"

// Instrument returns a Writer that yields exactly what w yields, reporting
// every run to the configured Logger and MetricsCollector.
//
// A panic inside w is recorded as a *PanicError and then re-raised with its
// original value, so Run keeps propagating faults from caller functions.
func Instrument[V any, L Monoid[L]](w Writer[V, L], optFns ...Option) Writer[V, L] {
	o := applyOptions(optFns)
	logger := o.logger.WithName(o.name)

	return New(func() (v V, l L) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				pe := newPanicError(r)
				elapsed := time.Since(start)
				o.metricsCollector.RecordRun(o.name, elapsed, pe)
				logger.LogRun(o.name, elapsed, pe)
				panic(r)
			}
		}()

		v, l = w.Run()

		elapsed := time.Since(start)
		o.metricsCollector.RecordRun(o.name, elapsed, nil)
		logger.LogRun(o.name, elapsed, nil)
		return v, l
	})
}
