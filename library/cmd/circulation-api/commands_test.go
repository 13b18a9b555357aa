package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore/oteladapters"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/config"
)

func Test_RootCommand_HasServeAndMigrate(t *testing.T) {
	// setup
	root := newRootCommand()

	// act
	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	// assert
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
	assert.NotNil(t, root.PersistentFlags().Lookup(flagEnvFile))
}

func Test_Flags_WinOverEnvironmentAndDefaults(t *testing.T) {
	// setup
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	v := config.NewViper()
	flags := pflag.NewFlagSet("circulation-api", pflag.ContinueOnError)
	registerFlags(flags)
	require.NoError(t, bindFlags(v, flags))

	// act
	require.NoError(t, flags.Parse([]string{"--http-addr=:9090", "--adapter-type=sqlx.db", "--events-table=circulation_events"}))
	cfg, err := config.LoadAppConfig(v, filepath.Join(t.TempDir(), "missing.env"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, config.AdapterTypeSQLX, cfg.AdapterType)
	assert.Equal(t, "circulation_events", cfg.EventsTable)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.NotEmpty(t, cfg.PostgresDSN, "the unset flag must not hide the default DSN")
	assert.False(t, cfg.OTELEnabled)
}

func Test_Flags_RejectUnknownAdapterType(t *testing.T) {
	// setup
	v := config.NewViper()
	flags := pflag.NewFlagSet("circulation-api", pflag.ContinueOnError)
	registerFlags(flags)
	require.NoError(t, bindFlags(v, flags))

	// act
	require.NoError(t, flags.Parse([]string{"--adapter-type=mongo"}))
	_, err := config.LoadAppConfig(v, filepath.Join(t.TempDir(), "missing.env"))

	// assert
	assert.ErrorIs(t, err, config.ErrUnknownAdapterType)
}

func Test_BuildHandlers_WithoutOTEL(t *testing.T) {
	// setup
	obs, err := newObservability(context.Background(), config.AppConfig{OTELEnabled: false})
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// act
	handlers, err := buildHandlers(nil, logger, obs)

	// assert
	require.NoError(t, err)
	assert.Nil(t, obs.metrics)
	assert.Nil(t, obs.tracing)
	assert.NoError(t, obs.shutdown(context.Background()))
	assert.Len(t, obs.eventStoreOptions(logger), 1, "only the contextual logger")
	assert.Same(t, logger, obs.contextualLoggerOr(logger))

	assert.NotNil(t, handlers.CreateTag)
	assert.NotNil(t, handlers.AddBookToCatalog)
	assert.NotNil(t, handlers.CreateBorrow)
	assert.NotNil(t, handlers.StartBorrow)
	assert.NotNil(t, handlers.TerminateBorrow)
	assert.NotNil(t, handlers.RecordDelayPenalty)
	assert.NotNil(t, handlers.MarkDelayPenaltyPaid)
	assert.NotNil(t, handlers.BookAvailability)
	assert.NotNil(t, handlers.RelatedBooks)
	assert.NotNil(t, handlers.CatalogSearch)
	assert.NotNil(t, handlers.BorrowDetails)
	assert.NotNil(t, handlers.BorrowList)
	assert.NotNil(t, handlers.DelayPenalties)
}

func Test_ContextualLogger_UsesOTELBridgeWhenEnabled(t *testing.T) {
	// arrange
	bridge := oteladapters.NewSlogBridgeLogger("circulation-api-test")
	obs := observability{contextualLogger: bridge}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// act
	contextualLogger := obs.contextualLoggerOr(logger)

	// assert
	assert.Same(t, bridge, contextualLogger)
	assert.Len(t, obs.eventStoreOptions(logger), 1, "only the contextual logger")

	handlers, err := buildHandlers(nil, logger, obs)
	require.NoError(t, err)
	assert.NotNil(t, handlers.CreateBorrow)
}
