// Package helper provides test doubles for the observability interfaces of the event store
// and the handler wrappers, plus fixtures and small helpers for arranging event store tests.
package helper
