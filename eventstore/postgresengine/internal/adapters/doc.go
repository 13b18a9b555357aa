// Package adapters hides the differences between pgxpool.Pool, sql.DB and sqlx.DB behind DBAdapter.
//
// Writes go through ExecSerialized, which wraps the statement in a transaction guarded by a
// Postgres advisory lock, so the event store's conditional insert is evaluated against a snapshot
// that already contains every previously committed append.
package adapters
