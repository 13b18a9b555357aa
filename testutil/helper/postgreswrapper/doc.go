// Package postgreswrapper creates event stores for integration tests.
//
// The adapter is selected with the ADAPTER_TYPE environment variable (pgx.pool, sql.db or sqlx.db, default pgx.pool),
// the database with POSTGRES_DSN.
package postgreswrapper
