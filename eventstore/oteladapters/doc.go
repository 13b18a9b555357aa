// Package oteladapters implements the eventstore observability interfaces on top of OpenTelemetry.
//
// The circulation-api wires these adapters into the event store and into the observable
// command and query wrappers when OTEL_ENABLED is set.
package oteladapters
