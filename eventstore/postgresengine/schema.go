package postgresengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const (
	createTableStatement = `CREATE TABLE IF NOT EXISTS %s (
	sequence_number BIGSERIAL PRIMARY KEY,
	occurred_at TIMESTAMP WITH TIME ZONE NOT NULL,
	event_type TEXT NOT NULL,
	payload JSONB NOT NULL,
	metadata JSONB NOT NULL
)`
	createEventTypeIndexStatement  = `CREATE INDEX IF NOT EXISTS %s ON %s (event_type)`
	createPayloadIndexStatement    = `CREATE INDEX IF NOT EXISTS %s ON %s USING gin (payload jsonb_path_ops)`
	createOccurredAtIndexStatement = `CREATE INDEX IF NOT EXISTS %s ON %s (occurred_at)`
)

var ErrCreatingSchemaFailed = errors.New("creating the events table failed")

// SchemaStatements returns the DDL for an events table with the given name.
func SchemaStatements(tableName string) []string {
	table := pgx.Identifier{tableName}.Sanitize()
	index := func(suffix string) string {
		return pgx.Identifier{"idx_" + tableName + "_" + suffix}.Sanitize()
	}

	return []string{
		fmt.Sprintf(createTableStatement, table),
		fmt.Sprintf(createEventTypeIndexStatement, index("event_type"), table),
		fmt.Sprintf(createPayloadIndexStatement, index("payload"), table),
		fmt.Sprintf(createOccurredAtIndexStatement, index("occurred_at"), table),
	}
}

// CreateSchema creates the events table and its indexes unless they exist.
// It takes the append lock, so it is safe to run while other instances append.
func (es *EventStore) CreateSchema(ctx context.Context) error {
	for _, statement := range SchemaStatements(es.eventTableName) {
		if _, err := es.db.ExecSerialized(ctx, es.eventTableName, statement); err != nil {
			es.logError(ctx, logMsgCreateSchemaFailed, err, logAttrQuery, statement)

			return errors.Join(ErrCreatingSchemaFailed, err)
		}
	}

	return nil
}
