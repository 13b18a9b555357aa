package eventstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

func Test_GetConsistencyLevel(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, eventstore.StrongConsistency, eventstore.GetConsistencyLevel(ctx))
	assert.Equal(t, eventstore.EventualConsistency, eventstore.GetConsistencyLevel(eventstore.WithEventualConsistency(ctx)))
	assert.Equal(
		t,
		eventstore.StrongConsistency,
		eventstore.GetConsistencyLevel(eventstore.WithStrongConsistency(eventstore.WithEventualConsistency(ctx))),
	)
	assert.Equal(t, "eventual", eventstore.EventualConsistency.String())
	assert.Equal(t, "unknown", eventstore.ConsistencyLevel(42).String())
}
