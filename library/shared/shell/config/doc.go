// Package config provides the configuration of the library circulation service:
// application settings from the environment, PostgreSQL connection pools for the three
// supported drivers (pgx.Pool, sql.DB, sqlx.DB), and the OpenTelemetry providers.
//
// This package is part of the shell (infrastructure) layer.
package config
