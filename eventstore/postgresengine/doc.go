// Package postgresengine implements the event store on PostgreSQL.
//
// It works with pgxpool.Pool (optionally with a read replica), sql.DB and sqlx.DB.
// SQL is built with goqu: queries translate an eventstore.Filter into a WHERE clause using
// JSONB containment for payload predicates, appends are a single conditional
// INSERT ... SELECT guarded by a CTE that recomputes the max sequence number of the filter.
// Every append runs in its own transaction after taking an advisory lock for the events table,
// so two decisions over overlapping filters can never both succeed.
//
//	pool, _ := pgxpool.NewWithConfig(ctx, cfg)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(
//		pool,
//		postgresengine.WithTableName("events"),
//		postgresengine.WithLogger(slog.Default()),
//	)
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package postgresengine
