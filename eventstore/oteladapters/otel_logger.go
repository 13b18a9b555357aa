package oteladapters

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

// OTelLogger emits log records directly through the OpenTelemetry log API.
// Key/value arguments become typed record attributes, a trailing key without value is dropped.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger wraps an OpenTelemetry log.Logger.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

func (l *OTelLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityDebug, "DEBUG", msg, args)
}

func (l *OTelLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityInfo, "INFO", msg, args)
}

func (l *OTelLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityWarn, "WARN", msg, args)
}

func (l *OTelLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityError, "ERROR", msg, args)
}

func (l *OTelLogger) emit(ctx context.Context, severity log.Severity, severityText string, msg string, args []any) {
	var record log.Record
	record.SetTimestamp(time.Now())
	record.SetSeverity(severity)
	record.SetSeverityText(severityText)
	record.SetBody(log.StringValue(msg))

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}

		record.AddAttributes(log.KeyValue{Key: key, Value: logValueFrom(args[i+1])})
	}

	l.logger.Emit(ctx, record)
}

func logValueFrom(v any) log.Value {
	switch val := v.(type) {
	case string:
		return log.StringValue(val)
	case int:
		return log.IntValue(val)
	case int64:
		return log.Int64Value(val)
	case float64:
		return log.Float64Value(val)
	case bool:
		return log.BoolValue(val)
	case time.Duration:
		return log.Int64Value(val.Milliseconds())
	case error:
		return log.StringValue(val.Error())
	default:
		return log.StringValue(fmt.Sprint(val))
	}
}

var _ eventstore.ContextualLogger = (*OTelLogger)(nil)
