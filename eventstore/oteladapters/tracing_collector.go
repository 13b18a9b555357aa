package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

// Span statuses understood by the TracingCollector.
// Any other status leaves the span status unset and is only recorded as the "status" attribute.
const (
	StatusSuccess             = "success"
	StatusIdempotent          = "idempotent"
	StatusRejected            = "rejected"
	StatusError               = "error"
	StatusCanceled            = "canceled"
	StatusTimeout             = "timeout"
	StatusConcurrencyConflict = "concurrency_conflict"
)

// TracingCollector creates OpenTelemetry spans for eventstore and handler operations.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a collector that starts its spans on tracer.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

func (t *TracingCollector) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, eventstore.SpanContext) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attributesFrom(attrs)...))

	return ctx, &OTelSpanContext{span: span}
}

// FinishSpan adds attrs, applies status and ends the span.
// Span contexts that were not created by a TracingCollector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(attributesFrom(attrs)...)
	otelSpanCtx.applyStatus(status, attrs["error"])
	otelSpanCtx.span.End()
}

// OTelSpanContext is the eventstore.SpanContext of an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// Span exposes the wrapped span.
func (s *OTelSpanContext) Span() trace.Span {
	return s.span
}

func (s *OTelSpanContext) SetStatus(status string) {
	s.applyStatus(status, "")
}

func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// applyStatus maps a status to a span status code.
// Rejected commands are valid business outcomes and don't mark the span as failed.
func (s *OTelSpanContext) applyStatus(status string, errorMessage string) {
	s.span.SetAttributes(attribute.String("status", status))

	switch status {
	case StatusSuccess, StatusIdempotent, StatusRejected:
		s.span.SetStatus(codes.Ok, "")
	case StatusError:
		s.span.SetStatus(codes.Error, descriptionOr(errorMessage, "operation failed"))
	case StatusCanceled:
		s.span.SetStatus(codes.Error, descriptionOr(errorMessage, "operation canceled"))
	case StatusTimeout:
		s.span.SetStatus(codes.Error, descriptionOr(errorMessage, "operation timed out"))
	case StatusConcurrencyConflict:
		s.span.SetStatus(codes.Error, descriptionOr(errorMessage, "concurrency conflict"))
	}
}

func descriptionOr(description string, fallback string) string {
	if description != "" {
		return description
	}

	return fallback
}

var _ eventstore.TracingCollector = (*TracingCollector)(nil)
