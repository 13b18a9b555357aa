// Package observable wraps command and query handlers with metrics, tracing and logging.
//
// Handlers stay free of observability code, the wrappers are applied at wiring time:
//
//	coreHandler := startborrow.NewCommandHandler(eventStore)
//
//	handler, err := observable.NewCommandWrapper(
//		coreHandler,
//		observable.WithCommandMetrics[startborrow.Command](metricsCollector),
//		observable.WithCommandTracing[startborrow.Command](tracingCollector),
//		observable.WithCommandContextualLogging[startborrow.Command](contextualLogger),
//	)
//
// Every concern is optional. A wrapper without options only delegates.
//
// Business rule rejections (domain errors) are reported with status "rejected" and logged at warn level,
// infrastructure failures with status "error" at error level.
package observable
