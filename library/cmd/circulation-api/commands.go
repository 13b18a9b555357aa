package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/library-circulation-go/library/cmd/circulation-api/httpapi"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/config"
)

const (
	flagEnvFile = "env-file"

	readHeaderTimeout = 5 * time.Second
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"http-addr":             config.KeyHTTPAddr,
	"adapter-type":          config.KeyAdapterType,
	"events-table":          config.KeyEventsTable,
	"postgres-dsn":          config.KeyPostgresDSN,
	"postgres-replica-dsn":  config.KeyPostgresReplicaDSN,
	"otel-enabled":          config.KeyOTELEnabled,
	"otel-traces-endpoint":  config.KeyOTELTracesEndpoint,
	"otel-metrics-endpoint": config.KeyOTELMetricsEndpoint,
	"service-name":          config.KeyServiceName,
	"log-level":             config.KeyLogLevel,
	"shutdown-timeout":      config.KeyShutdownTimeout,
}

func newRootCommand() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:           "circulation-api",
		Short:         "Library circulation API on top of a Postgres event store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	registerFlags(flags)

	if err := bindFlags(v, flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newServeCommand(v),
		newMigrateCommand(v),
	)

	return root
}

func registerFlags(flags *pflag.FlagSet) {
	flags.StringSlice(flagEnvFile, []string{".env"}, ".env files to load, variables already set in the environment win")
	flags.String("http-addr", ":8080", "listen address of the HTTP server")
	flags.String("adapter-type", config.AdapterTypePGXPool, "database adapter: pgx.pool, sql.db or sqlx.db")
	flags.String("events-table", "events", "name of the events table")
	flags.String("postgres-dsn", "", "DSN of the primary database")
	flags.String("postgres-replica-dsn", "", "DSN of a read replica for eventually consistent queries (pgx.pool only)")
	flags.Bool("otel-enabled", false, "export traces and metrics via OTLP gRPC")
	flags.String("otel-traces-endpoint", config.OTELCollectorEndpoint(), "OTLP gRPC endpoint for traces")
	flags.String("otel-metrics-endpoint", config.OTELCollectorEndpoint(), "OTLP gRPC endpoint for metrics")
	flags.String("service-name", "library-circulation", "service name reported to OpenTelemetry")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.Duration("shutdown-timeout", 10*time.Second, "grace period for in-flight requests on shutdown")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}

	return nil
}

func loadConfig(cmd *cobra.Command, v *viper.Viper) (config.AppConfig, error) {
	envFiles, err := cmd.Flags().GetStringSlice(flagEnvFile)
	if err != nil {
		return config.AppConfig{}, err
	}

	return config.LoadAppConfig(v, envFiles...)
}

func newServeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}

			logger := newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err = serve(ctx, cfg, logger); err != nil {
				logger.ErrorContext(ctx, "circulation-api stopped with an error", "error", err.Error())
				return err
			}

			return nil
		},
	}
}

func newMigrateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the events table and its indexes unless they exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}

			logger := newLogger(cfg)
			ctx := cmd.Context()

			es, closeDB, err := openEventStore(ctx, cfg, logger, observability{})
			if err != nil {
				logger.ErrorContext(ctx, "opening the event store failed", "error", err.Error())
				return err
			}
			defer closeDB()

			if err = es.CreateSchema(ctx); err != nil {
				return err
			}

			logger.InfoContext(ctx, "events table is ready", "table", es.TableName())

			return nil
		},
	}
}

func newLogger(cfg config.AppConfig) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func serve(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) error {
	obs, err := newObservability(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if shutdownErr := obs.shutdown(shutdownCtx); shutdownErr != nil {
			logger.WarnContext(shutdownCtx, "flushing telemetry failed", "error", shutdownErr.Error())
		}
	}()

	es, closeDB, err := openEventStore(ctx, cfg, logger, obs)
	if err != nil {
		return err
	}
	defer closeDB()

	handlers, err := buildHandlers(es, logger, obs)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewServer(handlers, httpapi.WithLogger(logger)).Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gCtx, "http server listening",
			"addr", cfg.HTTPAddr,
			"adapter", cfg.AdapterType,
			"table", es.TableName(),
			"replica", cfg.UsesReplica(),
			"otel", cfg.OTELEnabled,
		)

		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), cfg.ShutdownTimeout)
		defer cancel()

		logger.InfoContext(shutdownCtx, "shutting down http server", "timeout", cfg.ShutdownTimeout.String())

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
