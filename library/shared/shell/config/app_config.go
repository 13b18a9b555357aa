package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AdapterTypePGXPool selects the pgx.Pool adapter of the event store.
	AdapterTypePGXPool = "pgx.pool"

	// AdapterTypeSQLDB selects the database/sql adapter of the event store.
	AdapterTypeSQLDB = "sql.db"

	// AdapterTypeSQLX selects the sqlx adapter of the event store.
	AdapterTypeSQLX = "sqlx.db"
)

// Keys of the configuration values. The environment variable is the upper-cased key.
const (
	KeyHTTPAddr            = "http_addr"
	KeyAdapterType         = "adapter_type"
	KeyEventsTable         = "events_table"
	KeyPostgresDSN         = "postgres_dsn"
	KeyPostgresReplicaDSN  = "postgres_replica_dsn"
	KeyOTELEnabled         = "otel_enabled"
	KeyOTELTracesEndpoint  = "otel_traces_endpoint"
	KeyOTELMetricsEndpoint = "otel_metrics_endpoint"
	KeyServiceName         = "service_name"
	KeyLogLevel            = "log_level"
	KeyShutdownTimeout     = "shutdown_timeout"
)

var (
	// ErrUnknownAdapterType is returned for an ADAPTER_TYPE other than pgx.pool, sql.db or sqlx.db.
	ErrUnknownAdapterType = errors.New("unknown adapter type")

	// ErrEmptyPostgresDSN is returned when POSTGRES_DSN resolves to an empty string.
	ErrEmptyPostgresDSN = errors.New("postgres dsn must not be empty")

	// ErrLoadingDotEnvFailed is returned when a .env file exists but cannot be parsed.
	ErrLoadingDotEnvFailed = errors.New("loading .env file failed")
)

// AppConfig holds all settings of the circulation-api binary.
type AppConfig struct {
	HTTPAddr            string
	AdapterType         string
	EventsTable         string
	PostgresDSN         string
	PostgresReplicaDSN  string
	OTELEnabled         bool
	OTELTracesEndpoint  string
	OTELMetricsEndpoint string
	ServiceName         string
	LogLevel            slog.Level
	ShutdownTimeout     time.Duration
}

// UsesReplica reports whether eventually consistent reads should go to a replica.
func (c AppConfig) UsesReplica() bool {
	return c.PostgresReplicaDSN != ""
}

// NewViper returns a viper instance with the defaults and the environment binding of all keys.
// Callers may bind command-line flags to it before calling LoadAppConfig.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyAdapterType, AdapterTypePGXPool)
	v.SetDefault(KeyEventsTable, "events")
	v.SetDefault(KeyPostgresDSN, PostgresSingleDSN())
	v.SetDefault(KeyPostgresReplicaDSN, "")
	v.SetDefault(KeyOTELEnabled, false)
	v.SetDefault(KeyOTELTracesEndpoint, OTELCollectorEndpoint())
	v.SetDefault(KeyOTELMetricsEndpoint, OTELCollectorEndpoint())
	v.SetDefault(KeyServiceName, "library-circulation")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadAppConfig loads the optional .env files into the environment and then reads the configuration from v.
// Variables that are already set in the environment win over the .env files.
func LoadAppConfig(v *viper.Viper, dotEnvFiles ...string) (AppConfig, error) {
	if len(dotEnvFiles) == 0 {
		dotEnvFiles = []string{".env"}
	}

	for _, file := range dotEnvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return AppConfig{}, errors.Join(ErrLoadingDotEnvFailed, err)
		}
	}

	cfg := AppConfig{
		HTTPAddr:            v.GetString(KeyHTTPAddr),
		AdapterType:         v.GetString(KeyAdapterType),
		EventsTable:         v.GetString(KeyEventsTable),
		PostgresDSN:         v.GetString(KeyPostgresDSN),
		PostgresReplicaDSN:  v.GetString(KeyPostgresReplicaDSN),
		OTELEnabled:         v.GetBool(KeyOTELEnabled),
		OTELTracesEndpoint:  v.GetString(KeyOTELTracesEndpoint),
		OTELMetricsEndpoint: v.GetString(KeyOTELMetricsEndpoint),
		ServiceName:         v.GetString(KeyServiceName),
		ShutdownTimeout:     v.GetDuration(KeyShutdownTimeout),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return AppConfig{}, err
	}

	switch cfg.AdapterType {
	case AdapterTypePGXPool, AdapterTypeSQLDB, AdapterTypeSQLX:
	default:
		return AppConfig{}, errors.Join(ErrUnknownAdapterType, errors.New(cfg.AdapterType))
	}

	if cfg.PostgresDSN == "" {
		return AppConfig{}, ErrEmptyPostgresDSN
	}

	return cfg, nil
}
