package adapters

import (
	"context"
	"errors"
)

// advisoryLockStatement takes a transaction-scoped lock keyed by an arbitrary string.
// The lock is released on commit or rollback.
const advisoryLockStatement = "SELECT pg_advisory_xact_lock(hashtext($1))"

var (
	ErrBeginTransaction  = errors.New("begin transaction")
	ErrAcquireLock       = errors.New("acquire advisory lock")
	ErrCommitTransaction = errors.New("commit transaction")
)

// DBAdapter defines the database operations needed by the event store.
type DBAdapter interface {
	// Query runs a read statement. Adapters with a replica use it when readFromReplica is true.
	Query(ctx context.Context, query string, readFromReplica bool) (DBRows, error)

	// ExecSerialized runs a write statement inside its own transaction after taking the advisory lock for lockKey.
	// Statements sharing a lockKey therefore run one after the other and each sees all previously committed writes.
	ExecSerialized(ctx context.Context, lockKey string, query string) (DBResult, error)
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
