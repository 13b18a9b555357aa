package postgresengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore/postgresengine"
)

func Test_SchemaStatements(t *testing.T) {
	// act
	statements := postgresengine.SchemaStatements("events")

	// assert
	require.Len(t, statements, 4)
	assert.Contains(t, statements[0], `CREATE TABLE IF NOT EXISTS "events"`)
	assert.Contains(t, statements[0], "sequence_number BIGSERIAL PRIMARY KEY")
	assert.Contains(t, statements[1], `"idx_events_event_type" ON "events" (event_type)`)
	assert.Contains(t, statements[2], "USING gin (payload jsonb_path_ops)")
	assert.Contains(t, statements[3], `"idx_events_occurred_at"`)
}

func Test_SchemaStatements_QuoteTheTableName(t *testing.T) {
	// act
	statements := postgresengine.SchemaStatements(`evil"; DROP TABLE events; --`)

	// assert
	assert.Contains(t, statements[0], `"evil""; DROP TABLE events; --"`)
}
