// Package metrics предоставляет систему метрик на основе OpenTelemetry.
package metrics

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics сборщик метрик репозиториев
type Metrics struct {
	meter             metric.Meter
	operationsTotal   metric.Int64Counter
	itemsAdded        metric.Int64Counter
	errorsTotal       metric.Int64Counter
	operationDuration metric.Float64Histogram
	activeOperations  metric.Int64UpDownCounter
	customMetrics     map[string]interface{}
	mu                sync.RWMutex
}

// NewMetrics создает новый сборщик метрик
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("keeper")

	operationsTotal, err := meter.Int64Counter(
		"repository_operations_total",
		metric.WithDescription("Total number of repository operations"),
	)
	if err != nil {
		return nil, err
	}

	itemsAdded, err := meter.Int64Counter(
		"repository_items_added_total",
		metric.WithDescription("Total number of items added to repositories"),
	)
	if err != nil {
		return nil, err
	}

	errorsTotal, err := meter.Int64Counter(
		"repository_errors_total",
		metric.WithDescription("Total number of repository errors"),
	)
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram(
		"repository_operation_duration_seconds",
		metric.WithDescription("Repository operation duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	activeOperations, err := meter.Int64UpDownCounter(
		"repository_active_operations",
		metric.WithDescription("Number of repository operations in flight"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		meter:             meter,
		operationsTotal:   operationsTotal,
		itemsAdded:        itemsAdded,
		errorsTotal:       errorsTotal,
		operationDuration: operationDuration,
		activeOperations:  activeOperations,
		customMetrics:     make(map[string]interface{}),
	}, nil
}

// RecordOperation записывает метрику операции репозитория
func (m *Metrics) RecordOperation(ctx context.Context, operation string, duration time.Duration, success bool) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	}

	m.operationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

	if !success {
		m.errorsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
		))
	}
}

// RecordItemAdded записывает метрику добавления элемента
func (m *Metrics) RecordItemAdded(ctx context.Context, repositoryName string) {
	m.itemsAdded.Add(ctx, 1, metric.WithAttributes(
		attribute.String("repository", repositoryName),
	))
}

// IncrementActiveOperations увеличивает счетчик активных операций
func (m *Metrics) IncrementActiveOperations(ctx context.Context) {
	m.activeOperations.Add(ctx, 1)
}

// DecrementActiveOperations уменьшает счетчик активных операций
func (m *Metrics) DecrementActiveOperations(ctx context.Context) {
	m.activeOperations.Add(ctx, -1)
}

// Register регистрирует кастомную метрику
func (m *Metrics) Register(name string, metric interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customMetrics[name] = metric
	return nil
}

// Unregister удаляет кастомную метрику
func (m *Metrics) Unregister(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.customMetrics, name)
	return nil
}
