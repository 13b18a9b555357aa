package adapters

import (
	"context"
	"database/sql"
	"errors"
)

// execSerializedInTx takes the advisory lock and runs query inside the already started tx, then commits.
func execSerializedInTx(ctx context.Context, tx *sql.Tx, lockKey string, query string) (DBResult, error) {
	defer func() { _ = tx.Rollback() }() // returns sql.ErrTxDone after a successful commit

	if _, lockErr := tx.ExecContext(ctx, advisoryLockStatement, lockKey); lockErr != nil {
		return nil, errors.Join(ErrAcquireLock, lockErr)
	}

	result, execErr := tx.ExecContext(ctx, query)
	if execErr != nil {
		return nil, execErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return nil, errors.Join(ErrCommitTransaction, commitErr)
	}

	return &stdResult{result: result}, nil
}

// stdRows wraps sql.Rows to implement the DBRows interface.
type stdRows struct {
	rows *sql.Rows
}

func (s *stdRows) Next() bool {
	return s.rows.Next()
}

func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

func (s *stdRows) Err() error {
	return s.rows.Err()
}

func (s *stdRows) Close() error {
	return s.rows.Close()
}

// stdResult wraps sql.Result to implement the DBResult interface.
type stdResult struct {
	result sql.Result
}

func (s *stdResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}
