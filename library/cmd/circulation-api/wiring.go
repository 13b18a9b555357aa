package main

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-circulation-go/eventstore/oteladapters"
	"github.com/AntonStoeckl/library-circulation-go/eventstore/postgresengine"
	"github.com/AntonStoeckl/library-circulation-go/library/cmd/circulation-api/httpapi"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbooktocatalog"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createtag"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/markdelaypenaltypaid"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/recorddelaypenalty"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/startborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/terminateborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookavailability"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowdetails"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowlist"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/catalogsearch"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/delaypenalties"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/relatedbooks"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/config"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/observable"
)

// observability holds the OpenTelemetry adapters, all of them are nil when OTEL is disabled.
type observability struct {
	metrics          shell.MetricsCollector
	tracing          shell.TracingCollector
	contextualLogger shell.ContextualLogger
	shutdown         func(context.Context) error
}

func newObservability(ctx context.Context, cfg config.AppConfig) (observability, error) {
	disabled := observability{shutdown: func(context.Context) error { return nil }}

	if !cfg.OTELEnabled {
		return disabled, nil
	}

	providers, err := config.NewObservabilityProviders(ctx, cfg.ServiceName, cfg.OTELTracesEndpoint, cfg.OTELMetricsEndpoint)
	if err != nil {
		return disabled, err
	}

	return observability{
		metrics:          oteladapters.NewMetricsCollector(otel.Meter(cfg.ServiceName)),
		tracing:          oteladapters.NewTracingCollector(otel.Tracer(cfg.ServiceName)),
		contextualLogger: oteladapters.NewSlogBridgeLogger(cfg.ServiceName),
		shutdown:         providers.Shutdown,
	}, nil
}

// contextualLoggerOr prefers the span-correlating OTEL bridge and falls back to the plain logger.
func (o observability) contextualLoggerOr(fallback *slog.Logger) shell.ContextualLogger {
	if o.contextualLogger != nil {
		return o.contextualLogger
	}

	return fallback
}

func (o observability) eventStoreOptions(logger *slog.Logger) []postgresengine.Option {
	options := []postgresengine.Option{postgresengine.WithContextualLogger(o.contextualLoggerOr(logger))}

	if o.metrics != nil {
		options = append(options, postgresengine.WithMetrics(o.metrics))
	}

	if o.tracing != nil {
		options = append(options, postgresengine.WithTracing(o.tracing))
	}

	return options
}

// openEventStore connects with the configured adapter, the returned func closes the connections.
func openEventStore(
	ctx context.Context,
	cfg config.AppConfig,
	logger *slog.Logger,
	obs observability,
) (*postgresengine.EventStore, func(), error) {

	options := append(obs.eventStoreOptions(logger), postgresengine.WithTableName(cfg.EventsTable))

	switch cfg.AdapterType {
	case config.AdapterTypeSQLDB:
		warnAboutIgnoredReplica(ctx, cfg, logger)

		db, err := config.NewSQLDB(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}

		es, err := postgresengine.NewEventStoreFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return es, func() { _ = db.Close() }, nil

	case config.AdapterTypeSQLX:
		warnAboutIgnoredReplica(ctx, cfg, logger)

		db, err := config.NewSQLX(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}

		es, err := postgresengine.NewEventStoreFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return es, func() { _ = db.Close() }, nil
	}

	primary, err := config.NewPGXPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	if !cfg.UsesReplica() {
		es, esErr := postgresengine.NewEventStoreFromPGXPool(primary, options...)
		if esErr != nil {
			primary.Close()
			return nil, nil, esErr
		}

		return es, primary.Close, nil
	}

	replica, err := config.NewPGXPool(ctx, cfg.PostgresReplicaDSN)
	if err != nil {
		primary.Close()
		return nil, nil, err
	}

	closePools := func() {
		replica.Close()
		primary.Close()
	}

	es, err := postgresengine.NewEventStoreFromPGXPoolAndReplica(primary, replica, options...)
	if err != nil {
		closePools()
		return nil, nil, err
	}

	return es, closePools, nil
}

func warnAboutIgnoredReplica(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) {
	if cfg.UsesReplica() {
		logger.WarnContext(ctx, "replica DSN is only used by the pgx.pool adapter", "adapter", cfg.AdapterType)
	}
}

// buildHandlers creates all use cases and wraps each of them with observability.
func buildHandlers(es *postgresengine.EventStore, logger *slog.Logger, obs observability) (httpapi.Handlers, error) {
	w := &wrapping{logger: logger, obs: obs}

	handlers := httpapi.Handlers{
		CreateTag:            observeCommand[createtag.Command](w, createtag.NewCommandHandler(es)),
		AddBookToCatalog:     observeCommand[addbooktocatalog.Command](w, addbooktocatalog.NewCommandHandler(es)),
		CreateBorrow:         observeCommand[createborrow.Command](w, createborrow.NewCommandHandler(es)),
		StartBorrow:          observeCommand[startborrow.Command](w, startborrow.NewCommandHandler(es)),
		TerminateBorrow:      observeCommand[terminateborrow.Command](w, terminateborrow.NewCommandHandler(es)),
		RecordDelayPenalty:   observeCommand[recorddelaypenalty.Command](w, recorddelaypenalty.NewCommandHandler(es)),
		MarkDelayPenaltyPaid: observeCommand[markdelaypenaltypaid.Command](w, markdelaypenaltypaid.NewCommandHandler(es)),

		BookAvailability: observeQuery[bookavailability.Query, bookavailability.BookAvailability](
			w, bookavailability.NewQueryHandler(es)),
		RelatedBooks: observeQuery[relatedbooks.Query, relatedbooks.RelatedBooks](
			w, relatedbooks.NewQueryHandler(es)),
		CatalogSearch: observeQuery[catalogsearch.Query, catalogsearch.CatalogSearchResult](
			w, catalogsearch.NewQueryHandler(es)),
		BorrowDetails: observeQuery[borrowdetails.Query, borrowdetails.BorrowDetails](
			w, borrowdetails.NewQueryHandler(es)),
		BorrowList: observeQuery[borrowlist.Query, borrowlist.BorrowList](
			w, borrowlist.NewQueryHandler(es)),
		DelayPenalties: observeQuery[delaypenalties.Query, delaypenalties.DelayPenalties](
			w, delaypenalties.NewQueryHandler(es)),
	}

	if err := errors.Join(w.errs...); err != nil {
		return httpapi.Handlers{}, err
	}

	return handlers, nil
}

// wrapping collects the errors of creating the observable wrappers.
type wrapping struct {
	logger *slog.Logger
	obs    observability
	errs   []error
}

func observeCommand[C shell.Command](w *wrapping, handler shell.CommandHandler[C]) shell.CommandHandler[C] {
	options := []observable.CommandOption[C]{observable.WithCommandContextualLogging[C](
		w.obs.contextualLoggerOr(w.logger))}

	if w.obs.metrics != nil {
		options = append(options, observable.WithCommandMetrics[C](w.obs.metrics))
	}

	if w.obs.tracing != nil {
		options = append(options, observable.WithCommandTracing[C](w.obs.tracing))
	}

	wrapper, err := observable.NewCommandWrapper(handler, options...)
	if err != nil {
		w.errs = append(w.errs, err)
		return handler
	}

	return wrapper
}

func observeQuery[Q shell.Query, R shell.QueryResult](
	w *wrapping,
	handler shell.QueryHandler[Q, R],
) shell.QueryHandler[Q, R] {

	options := []observable.QueryOption[Q, R]{observable.WithQueryContextualLogging[Q, R](
		w.obs.contextualLoggerOr(w.logger))}

	if w.obs.metrics != nil {
		options = append(options, observable.WithQueryMetrics[Q, R](w.obs.metrics))
	}

	if w.obs.tracing != nil {
		options = append(options, observable.WithQueryTracing[Q, R](w.obs.tracing))
	}

	wrapper, err := observable.NewQueryWrapper(handler, options...)
	if err != nil {
		w.errs = append(w.errs, err)
		return handler
	}

	return wrapper
}
