package oteladapters

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

// MetricsCollector records eventstore and handler metrics as OpenTelemetry instruments.
// Durations go to float64 histograms in seconds, counters to int64 counters and values to float64 gauges.
// Instruments are created lazily on first use and cached by name.
type MetricsCollector struct {
	meter metric.Meter

	mu         sync.RWMutex
	histograms map[string]metric.Float64Histogram
	counters   map[string]metric.Int64Counter
	gauges     map[string]metric.Float64Gauge
}

// NewMetricsCollector creates a collector that registers its instruments on meter.
func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: make(map[string]metric.Float64Histogram),
		counters:   make(map[string]metric.Int64Counter),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

func (m *MetricsCollector) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.Background(), name, duration, labels)
}

func (m *MetricsCollector) RecordDurationContext(
	ctx context.Context,
	name string,
	duration time.Duration,
	labels map[string]string,
) {
	histogram, ok := m.histogram(name)
	if !ok {
		return
	}

	histogram.Record(ctx, duration.Seconds(), metric.WithAttributes(attributesFrom(labels)...))
}

func (m *MetricsCollector) IncrementCounter(name string, labels map[string]string) {
	m.IncrementCounterContext(context.Background(), name, labels)
}

func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, name string, labels map[string]string) {
	counter, ok := m.counter(name)
	if !ok {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(attributesFrom(labels)...))
}

func (m *MetricsCollector) RecordValue(name string, value float64, labels map[string]string) {
	m.RecordValueContext(context.Background(), name, value, labels)
}

func (m *MetricsCollector) RecordValueContext(ctx context.Context, name string, value float64, labels map[string]string) {
	gauge, ok := m.gauge(name)
	if !ok {
		return
	}

	gauge.Record(ctx, value, metric.WithAttributes(attributesFrom(labels)...))
}

func (m *MetricsCollector) histogram(name string) (metric.Float64Histogram, bool) {
	return cachedInstrument(&m.mu, m.histograms, name, func() (metric.Float64Histogram, error) {
		return m.meter.Float64Histogram(name, metric.WithUnit("s"), metric.WithDescription(describe(name)))
	})
}

func (m *MetricsCollector) counter(name string) (metric.Int64Counter, bool) {
	return cachedInstrument(&m.mu, m.counters, name, func() (metric.Int64Counter, error) {
		return m.meter.Int64Counter(name, metric.WithDescription(describe(name)))
	})
}

func (m *MetricsCollector) gauge(name string) (metric.Float64Gauge, bool) {
	return cachedInstrument(&m.mu, m.gauges, name, func() (metric.Float64Gauge, error) {
		return m.meter.Float64Gauge(name, metric.WithDescription(describe(name)))
	})
}

// cachedInstrument returns the instrument registered under name, creating it if needed.
// A failed creation is not cached, the next call tries again.
func cachedInstrument[I any](mu *sync.RWMutex, cache map[string]I, name string, create func() (I, error)) (I, bool) {
	mu.RLock()
	instrument, ok := cache[name]
	mu.RUnlock()

	if ok {
		return instrument, true
	}

	mu.Lock()
	defer mu.Unlock()

	if instrument, ok = cache[name]; ok {
		return instrument, true
	}

	instrument, err := create()
	if err != nil {
		var zero I
		return zero, false
	}

	cache[name] = instrument

	return instrument, true
}

// describe turns "commands_duration_seconds" into "commands duration seconds".
func describe(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

var _ eventstore.ContextualMetricsCollector = (*MetricsCollector)(nil)
