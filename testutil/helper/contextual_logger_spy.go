package helper

import (
	"context"
	"sync"
)

// SpyLogRecord is one captured log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	HasCtx  bool
}

// ContextualLoggerSpy captures calls to eventstore.ContextualLogger.
type ContextualLoggerSpy struct {
	mu      sync.Mutex
	records []SpyLogRecord
}

// NewContextualLoggerSpy creates an empty ContextualLoggerSpy.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

// DebugContext implements eventstore.ContextualLogger.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements eventstore.ContextualLogger.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements eventstore.ContextualLogger.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements eventstore.ContextualLogger.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level string, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg, Args: args, HasCtx: ctx != nil})
}

// HasInfoLog checks if there's an info record with the message.
func (s *ContextualLoggerSpy) HasInfoLog(msg string) bool {
	return s.has("info", msg)
}

// HasWarnLog checks if there's a warn record with the message.
func (s *ContextualLoggerSpy) HasWarnLog(msg string) bool {
	return s.has("warn", msg)
}

// HasErrorLog checks if there's an error record with the message.
func (s *ContextualLoggerSpy) HasErrorLog(msg string) bool {
	return s.has("error", msg)
}

// HasDebugLog checks if there's a debug record with the message.
func (s *ContextualLoggerSpy) HasDebugLog(msg string) bool {
	return s.has("debug", msg)
}

// GetRecords returns a copy of all captured records.
func (s *ContextualLoggerSpy) GetRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyLogRecord, len(s.records))
	copy(records, s.records)

	return records
}

func (s *ContextualLoggerSpy) has(level string, msg string) bool {
	for _, record := range s.GetRecords() {
		if record.Level == level && record.Message == msg {
			return true
		}
	}

	return false
}
