package postgresengine_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/eventstore/postgresengine"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper" //nolint:revive
)

func Test_Observability_WithLogger_LogsQueries(t *testing.T) {
	// setup
	ctx, _ := setupTestEnvironment(t)
	logHandler := NewLogHandlerSpy(false)
	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithLogger(slog.New(logHandler)))
	defer wrapper.Close()

	// act
	_, _, err := wrapper.GetEventStore().Query(ctx, FilterAllEventTypesForBook(GivenUniqueID(t)))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, logHandler.GetRecordCount(), "query should log one sql statement and one operational statement")
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelDebug, "executed sql for: query", "duration_ms"))
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelInfo, "eventstore operation: query completed", "event_count"))
}

func Test_Observability_WithLogger_LogsAppends(t *testing.T) {
	// setup
	ctx, _ := setupTestEnvironment(t)
	logHandler := NewLogHandlerSpy(false)
	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithLogger(slog.New(logHandler)))
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange
	bookID := GivenUniqueID(t)

	// act
	err := es.Append(ctx, FilterAllEventTypesForBook(bookID), 0, toStorable(t, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, logHandler.GetRecordCount(), "append should log one sql statement and one operational statement")
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelDebug, "executed sql for: append", "query"))
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelInfo, "eventstore operation: events appended", "duration_ms"))
}

func Test_Observability_WithLogger_LogsConcurrencyConflicts(t *testing.T) {
	// setup
	ctx, _ := setupTestEnvironment(t)
	logHandler := NewLogHandlerSpy(false)
	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithLogger(slog.New(logHandler)))
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange
	bookID := GivenUniqueID(t)
	filter := FilterAllEventTypesForBook(bookID)
	GivenEventsAppended(t, ctx, es, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1))

	// act
	err := es.Append(ctx, filter, 0, toStorable(t, FixtureBorrowRequested(GivenUniqueID(t), GivenUniqueID(t), bookID, FixedNow)))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelInfo, "eventstore operation: concurrency conflict detected", "expected_sequence"))
}

func Test_Observability_WithLogger_LogsErrors(t *testing.T) {
	// setup
	ctx, _ := setupTestEnvironment(t)
	logHandler := NewLogHandlerSpy(false)
	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithLogger(slog.New(logHandler)))
	defer wrapper.Close()

	// arrange
	canceledCtx, cancel := context.WithCancel(ctx)
	cancel()

	// act
	_, _, err := wrapper.GetEventStore().Query(canceledCtx, FilterAllEventTypesForBook(GivenUniqueID(t)))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrQueryingEventsFailed)
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelError, "database query execution failed", "error"))
}

func Test_Observability_WithContextualLogger_LogsQueriesAndAppends(t *testing.T) {
	// setup
	ctx, _ := setupTestEnvironment(t)
	contextualLogger := NewContextualLoggerSpy()
	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithContextualLogger(contextualLogger))
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange
	tagID := GivenUniqueID(t)
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("TagID", tagID.String())).Finalize()

	// act
	_, _, queryErr := es.Query(ctx, filter)
	appendErr := es.Append(ctx, filter, 0, toStorable(t, FixtureTagCreated(tagID, "fiction")))

	// assert
	require.NoError(t, queryErr)
	require.NoError(t, appendErr)
	assert.True(t, contextualLogger.HasDebugLog("executed sql for: query"))
	assert.True(t, contextualLogger.HasInfoLog("eventstore operation: query completed"))
	assert.True(t, contextualLogger.HasDebugLog("executed sql for: append"))
	assert.True(t, contextualLogger.HasInfoLog("eventstore operation: events appended"))
}

func Test_Observability_WithMetrics_RecordsQueryAndAppendMetrics(t *testing.T) {
	// setup
	ctx, _ := setupTestEnvironment(t)
	metrics := NewMetricsCollectorSpy()
	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithMetrics(metrics))
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange
	bookID := GivenUniqueID(t)
	filter := FilterAllEventTypesForBook(bookID)

	// act
	_, _, queryErr := es.Query(ctx, filter)
	appendErr := es.Append(ctx, filter, 0,
		toStorable(t, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)),
		toStorable(t, FixtureBorrowRequested(GivenUniqueID(t), GivenUniqueID(t), bookID, FixedNow)),
	)

	// assert
	require.NoError(t, queryErr)
	require.NoError(t, appendErr)
	assert.True(t, metrics.HasDurationRecordForMetric("eventstore_query_duration_seconds").WithOperation("query").WithStatus("success").Assert())
	assert.True(t, metrics.HasValueRecordForMetric("eventstore_events_queried_total").WithValue(0).Assert())
	assert.True(t, metrics.HasDurationRecordForMetric("eventstore_append_duration_seconds").WithOperation("append").WithStatus("success").Assert())
	assert.True(t, metrics.HasValueRecordForMetric("eventstore_events_appended_total").WithValue(2).Assert())
}

func Test_Observability_WithMetrics_RecordsConcurrencyConflicts(t *testing.T) {
	// setup
	ctx, _ := setupTestEnvironment(t)
	metrics := NewContextualMetricsCollectorSpy()
	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithMetrics(metrics))
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange
	bookID := GivenUniqueID(t)
	GivenEventsAppended(t, ctx, es, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1))
	metrics.Reset()

	// act
	err := es.Append(ctx, FilterAllEventTypesForBook(bookID), 0, toStorable(t, FixtureBorrowRequested(GivenUniqueID(t), GivenUniqueID(t), bookID, FixedNow)))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.True(t, metrics.HasCounterRecordForMetric("eventstore_concurrency_conflicts_total").WithOperation("append").Assert())
	assert.False(t, metrics.HasCounterRecordForMetric("eventstore_database_errors_total").Assert())
	assert.Positive(t, metrics.ContextCallCount(), "a contextual collector must receive the context")
}

func Test_Observability_WithTracing_RecordsSpans(t *testing.T) {
	// setup
	ctx, _ := setupTestEnvironment(t)
	tracing := NewTracingCollectorSpy()
	wrapper := CreateWrapperWithTestConfig(t, postgresengine.WithTracing(tracing))
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange
	bookID := GivenUniqueID(t)
	filter := FilterAllEventTypesForBook(bookID)

	// act
	_, _, queryErr := es.Query(eventstore.WithEventualConsistency(ctx), filter)
	appendErr := es.Append(ctx, filter, 0, toStorable(t, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)))
	conflictErr := es.Append(ctx, filter, 0, toStorable(t, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)))

	// assert
	require.NoError(t, queryErr)
	require.NoError(t, appendErr)
	require.ErrorIs(t, conflictErr, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 3, tracing.GetSpanRecordCount())
	assert.True(t, tracing.HasFinishedSpan("eventstore.query", "success"))
	assert.True(t, tracing.HasFinishedSpan("eventstore.append", "success"))
	assert.True(t, tracing.HasFinishedSpan("eventstore.append", "error"))

	querySpan, found := tracing.FindSpan("eventstore.query")
	require.True(t, found)
	assert.Equal(t, "eventual", querySpan.StartAttributes["consistency"])
	assert.Equal(t, "0", querySpan.EndAttributes["event_count"])
}
