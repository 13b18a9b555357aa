package postgresengine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

const (
	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsQueried        = "eventstore_events_queried_total"
	metricEventsAppended       = "eventstore_events_appended_total"
	metricDatabaseErrors       = "eventstore_database_errors_total"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"

	spanNameQuery  = "eventstore.query"
	spanNameAppend = "eventstore.append"

	spanAttrOperation    = "operation"
	spanAttrEventCount   = "event_count"
	spanAttrMaxSequence  = "max_sequence"
	spanAttrDurationMS   = "duration_ms"
	spanAttrErrorType    = "error_type"
	spanAttrExpectedSeq  = "expected_sequence"
	spanAttrEventType    = "event_type"
	spanAttrRowsAffected = "rows_affected"
	spanAttrConsistency  = "consistency"

	labelStatus       = "status"
	labelConflictType = "conflict_type"

	operationQuery  = "query"
	operationAppend = "append"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeBuildQuery          = "build_query"
	errorTypeDatabaseQuery       = "database_query"
	errorTypeRowScan             = "row_scan"
	errorTypeBuildEvent          = "build_storable_event"
	errorTypeDatabaseExec        = "database_exec"
	errorTypeRowsAffected        = "rows_affected"
	errorTypeConcurrencyConflict = "concurrency_conflict"
)

/***** Logging *****/

// logQuery logs the executed SQL with its duration at debug level.
func (es *EventStore) logQuery(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	args := []any{logAttrDurationMS, es.toMilliseconds(duration), logAttrQuery, sqlQuery}

	if es.logger != nil {
		es.logger.Debug(logMsgSQLExecuted+action, args...)
	}

	if es.contextualLogger != nil {
		es.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level.
func (es *EventStore) logOperation(ctx context.Context, action string, args ...any) {
	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, args...)
	}

	if es.contextualLogger != nil {
		es.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

func (es *EventStore) logWarn(ctx context.Context, message string, args ...any) {
	if es.logger != nil {
		es.logger.Warn(message, args...)
	}

	if es.contextualLogger != nil {
		es.contextualLogger.WarnContext(ctx, message, args...)
	}
}

func (es *EventStore) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if es.logger != nil {
		es.logger.Error(message, allArgs...)
	}

	if es.contextualLogger != nil {
		es.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (es *EventStore) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

/***** Metrics *****/

// queryMetricsObserver collects the metrics of one query.
type queryMetricsObserver struct {
	es  *EventStore
	ctx context.Context
}

// appendMetricsObserver collects the metrics of one append.
type appendMetricsObserver struct {
	es  *EventStore
	ctx context.Context
}

func (es *EventStore) startQueryMetrics(ctx context.Context) *queryMetricsObserver {
	return &queryMetricsObserver{es: es, ctx: ctx}
}

func (es *EventStore) startAppendMetrics(ctx context.Context) *appendMetricsObserver {
	return &appendMetricsObserver{es: es, ctx: ctx}
}

func (qmo *queryMetricsObserver) recordSuccess(eventStream eventstore.StorableEvents, duration time.Duration) {
	qmo.es.recordDuration(qmo.ctx, metricQueryDuration, duration, operationQuery, statusSuccess)
	qmo.es.recordValue(qmo.ctx, metricEventsQueried, float64(len(eventStream)), operationQuery, statusSuccess)
}

func (qmo *queryMetricsObserver) recordError(errorType string, duration time.Duration) {
	qmo.es.recordDuration(qmo.ctx, metricQueryDuration, duration, operationQuery, statusError)
	qmo.es.recordDatabaseError(qmo.ctx, operationQuery, errorType)
}

func (amo *appendMetricsObserver) recordSuccess(eventCount int, duration time.Duration) {
	amo.es.recordDuration(amo.ctx, metricAppendDuration, duration, operationAppend, statusSuccess)
	amo.es.recordValue(amo.ctx, metricEventsAppended, float64(eventCount), operationAppend, statusSuccess)
}

func (amo *appendMetricsObserver) recordError(errorType string, duration time.Duration) {
	amo.es.recordDuration(amo.ctx, metricAppendDuration, duration, operationAppend, statusError)
	amo.es.recordDatabaseError(amo.ctx, operationAppend, errorType)
}

// recordConcurrencyConflict counts the conflict; it is an expected outcome, not a database error.
func (amo *appendMetricsObserver) recordConcurrencyConflict() {
	amo.es.incrementCounter(amo.ctx, metricConcurrencyConflicts, map[string]string{
		spanAttrOperation: operationAppend,
		labelConflictType: "concurrency",
	})
}

func (es *EventStore) recordDuration(ctx context.Context, metric string, duration time.Duration, operation, status string) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: operation, labelStatus: status}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	es.metricsCollector.RecordDuration(metric, duration, labels)
}

func (es *EventStore) recordValue(ctx context.Context, metric string, value float64, operation, status string) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: operation, labelStatus: status}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metric, value, labels)
		return
	}

	es.metricsCollector.RecordValue(metric, value, labels)
}

func (es *EventStore) recordDatabaseError(ctx context.Context, operation, errorType string) {
	es.incrementCounter(ctx, metricDatabaseErrors, map[string]string{
		spanAttrOperation: operation,
		labelStatus:       statusError,
		spanAttrErrorType: errorType,
	})
}

func (es *EventStore) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if es.metricsCollector == nil {
		return
	}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	es.metricsCollector.IncrementCounter(metric, labels)
}

/***** Tracing *****/

// queryTracingObserver owns the span of one query.
type queryTracingObserver struct {
	es   *EventStore
	span SpanContext
}

// appendTracingObserver owns the span of one append.
type appendTracingObserver struct {
	es   *EventStore
	span SpanContext
}

func (es *EventStore) startQueryTracing(ctx context.Context) (*queryTracingObserver, context.Context) {
	attrs := map[string]string{
		spanAttrOperation:   operationQuery,
		spanAttrConsistency: eventstore.GetConsistencyLevel(ctx).String(),
	}

	newCtx, span := es.startSpan(ctx, spanNameQuery, attrs)

	return &queryTracingObserver{es: es, span: span}, newCtx
}

func (es *EventStore) startAppendTracing(
	ctx context.Context,
	events eventstore.StorableEvents,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (*appendTracingObserver, context.Context) {

	attrs := map[string]string{
		spanAttrOperation:   operationAppend,
		spanAttrEventCount:  fmt.Sprintf("%d", len(events)),
		spanAttrExpectedSeq: fmt.Sprintf("%d", expectedMaxSequenceNumber),
	}

	if len(events) > 0 {
		attrs[spanAttrEventType] = events[0].EventType
	}

	newCtx, span := es.startSpan(ctx, spanNameAppend, attrs)

	return &appendTracingObserver{es: es, span: span}, newCtx
}

func (es *EventStore) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if es.tracingCollector == nil {
		return ctx, nil
	}

	return es.tracingCollector.StartSpan(ctx, name, attrs)
}

func (es *EventStore) finishSpan(span SpanContext, status string, attrs map[string]string) {
	if es.tracingCollector == nil || span == nil {
		return
	}

	es.tracingCollector.FinishSpan(span, status, attrs)
}

func (qto *queryTracingObserver) finishSuccess(
	eventStream eventstore.StorableEvents,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
	duration time.Duration,
) {

	qto.es.finishSpan(qto.span, statusSuccess, map[string]string{
		spanAttrEventCount:  fmt.Sprintf("%d", len(eventStream)),
		spanAttrMaxSequence: fmt.Sprintf("%d", maxSequenceNumber),
		spanAttrDurationMS:  qto.es.formatDuration(duration),
	})
}

func (qto *queryTracingObserver) finishError(errorType string, duration time.Duration) {
	qto.es.finishSpan(qto.span, statusError, map[string]string{
		spanAttrErrorType:  errorType,
		spanAttrDurationMS: qto.es.formatDuration(duration),
	})
}

func (ato *appendTracingObserver) finishSuccess(rowsAffected int64, duration time.Duration) {
	ato.es.finishSpan(ato.span, statusSuccess, map[string]string{
		spanAttrRowsAffected: fmt.Sprintf("%d", rowsAffected),
		spanAttrDurationMS:   ato.es.formatDuration(duration),
	})
}

func (ato *appendTracingObserver) finishError(errorType string, duration time.Duration) {
	ato.finishErrorWithAttrs(errorType, map[string]string{spanAttrDurationMS: ato.es.formatDuration(duration)})
}

func (ato *appendTracingObserver) finishErrorWithAttrs(errorType string, attrs map[string]string) {
	allAttrs := map[string]string{spanAttrErrorType: errorType}
	for key, value := range attrs {
		allAttrs[key] = value
	}

	ato.es.finishSpan(ato.span, statusError, allAttrs)
}

func (es *EventStore) formatDuration(duration time.Duration) string {
	return fmt.Sprintf("%.2f", es.toMilliseconds(duration))
}
