package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore/postgresengine"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/config"
)

// Wrapper abstracts over the different adapter types.
type Wrapper interface {
	GetEventStore() *postgresengine.EventStore
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing.
type PGXPoolWrapper struct {
	pool *pgxpool.Pool
	es   *postgresengine.EventStore
}

func (e *PGXPoolWrapper) GetEventStore() *postgresengine.EventStore {
	return e.es
}

func (e *PGXPoolWrapper) Close() {
	e.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing.
type SQLDBWrapper struct {
	db *sql.DB
	es *postgresengine.EventStore
}

func (e *SQLDBWrapper) GetEventStore() *postgresengine.EventStore {
	return e.es
}

func (e *SQLDBWrapper) Close() {
	_ = e.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing.
type SQLXWrapper struct {
	db *sqlx.DB
	es *postgresengine.EventStore
}

func (e *SQLXWrapper) GetEventStore() *postgresengine.EventStore {
	return e.es
}

func (e *SQLXWrapper) Close() {
	_ = e.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the wrapper selected by ADAPTER_TYPE and makes sure the events table exists.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	t.Helper()

	ctx := context.Background()
	wrapper, err := createWrapper(ctx, options...)
	require.NoError(t, err, "error creating the event store in test setup")

	err = wrapper.GetEventStore().CreateSchema(ctx)
	require.NoError(t, err, "error creating the events table in test setup")

	return wrapper
}

// CreateWrapperWithTestTable is CreateWrapperWithTestConfig on a dedicated events table, emptied before it is returned.
// Test packages run in parallel against the same database, each package uses its own table.
func CreateWrapperWithTestTable(t testing.TB, tableName string, options ...postgresengine.Option) Wrapper {
	t.Helper()

	wrapper := CreateWrapperWithTestConfig(t, append(options, postgresengine.WithTableName(tableName))...)
	CleanUp(t, wrapper)

	return wrapper
}

// TryCreateEventStore tries to create an event store with the given options and returns the error (for testing error cases).
func TryCreateEventStore(t testing.TB, options ...postgresengine.Option) error {
	t.Helper()

	wrapper, err := createWrapper(context.Background(), options...)
	if wrapper != nil {
		wrapper.Close()
	}

	return err
}

func createWrapper(ctx context.Context, options ...postgresengine.Option) (Wrapper, error) {
	dsn := config.PostgresSingleDSN()
	adapterTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch adapterTypeFromEnv {
	case config.AdapterTypePGXPool, "":
		pool, err := config.NewPGXPool(ctx, dsn)
		if err != nil {
			return nil, err
		}

		es, err := postgresengine.NewEventStoreFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return nil, err
		}

		return &PGXPoolWrapper{pool: pool, es: es}, nil

	case config.AdapterTypeSQLDB:
		db, err := config.NewSQLDB(ctx, dsn)
		if err != nil {
			return nil, err
		}

		es, err := postgresengine.NewEventStoreFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, err
		}

		return &SQLDBWrapper{db: db, es: es}, nil

	case config.AdapterTypeSQLX:
		db, err := config.NewSQLX(ctx, dsn)
		if err != nil {
			return nil, err
		}

		es, err := postgresengine.NewEventStoreFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, err
		}

		return &SQLXWrapper{db: db, es: es}, nil

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterTypeFromEnv))
	}
}

// CleanUp empties the events table of the wrapper's event store.
func CleanUp(t testing.TB, wrapper Wrapper) {
	t.Helper()

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", wrapper.GetEventStore().TableName())

	var err error

	switch e := wrapper.(type) {
	case *PGXPoolWrapper:
		_, err = e.pool.Exec(context.Background(), query)

	case *SQLDBWrapper:
		_, err = e.db.Exec(query)

	case *SQLXWrapper:
		_, err = e.db.Exec(query)

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", e))
	}

	require.NoError(t, err, "error cleaning up the events table")
}

// CountEventsOfType counts the stored events with the given event type.
func CountEventsOfType(t testing.TB, wrapper Wrapper, eventType string) int {
	t.Helper()

	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE event_type = $1", wrapper.GetEventStore().TableName())

	var cnt int
	var err error

	switch e := wrapper.(type) {
	case *PGXPoolWrapper:
		err = e.pool.QueryRow(context.Background(), query, eventType).Scan(&cnt)

	case *SQLDBWrapper:
		err = e.db.QueryRow(query, eventType).Scan(&cnt)

	case *SQLXWrapper:
		err = e.db.Get(&cnt, query, eventType)

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", e))
	}

	require.NoError(t, err, "error counting events")

	return cnt
}
