// Package repository предоставляет generic адаптеры для работы с in-memory коллекциями.
package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/akriventsev/keeper/framework/metrics"
)

// InstrumentedRepository[T] декоратор над Repository[T], записывающий
// метрики и trace spans для каждой операции. Семантика операций
// не меняется: декоратор прозрачно делегирует вызовы вложенному репозиторию.
type InstrumentedRepository[T any] struct {
	inner   Repository[T]
	name    string
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// NewInstrumentedRepository оборачивает репозиторий в инструментацию
func NewInstrumentedRepository[T any](name string, inner Repository[T], m *metrics.Metrics) *InstrumentedRepository[T] {
	return &InstrumentedRepository[T]{
		inner:   inner,
		name:    name,
		metrics: m,
		tracer:  otel.Tracer("keeper/repository"),
	}
}

// Add делегирует Add с инструментацией
func (r *InstrumentedRepository[T]) Add(ctx context.Context, item T) error {
	ctx, finish := r.begin(ctx, "add")
	err := r.inner.Add(ctx, item)
	finish(err)

	if err == nil && r.metrics != nil {
		r.metrics.RecordItemAdded(ctx, r.name)
	}
	return err
}

// GetAll делегирует GetAll с инструментацией
func (r *InstrumentedRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, finish := r.begin(ctx, "get_all")
	items, err := r.inner.GetAll(ctx)
	finish(err)
	return items, err
}

// GetByID делегирует GetByID с инструментацией
func (r *InstrumentedRepository[T]) GetByID(ctx context.Context, id int) (T, error) {
	ctx, finish := r.begin(ctx, "get_by_id")
	item, err := r.inner.GetByID(ctx, id)
	finish(err)
	return item, err
}

// Find делегирует Find с инструментацией
func (r *InstrumentedRepository[T]) Find(ctx context.Context, predicate Predicate[T]) (T, error) {
	ctx, finish := r.begin(ctx, "find")
	item, err := r.inner.Find(ctx, predicate)
	finish(err)
	return item, err
}

// Update делегирует Update с инструментацией
func (r *InstrumentedRepository[T]) Update(ctx context.Context, item T) error {
	ctx, finish := r.begin(ctx, "update")
	err := r.inner.Update(ctx, item)
	finish(err)
	return err
}

// Delete делегирует Delete с инструментацией
func (r *InstrumentedRepository[T]) Delete(ctx context.Context, id int) error {
	ctx, finish := r.begin(ctx, "delete")
	err := r.inner.Delete(ctx, id)
	finish(err)
	return err
}

// begin открывает span и возвращает функцию завершения операции
func (r *InstrumentedRepository[T]) begin(ctx context.Context, operation string) (context.Context, func(error)) {
	ctx, span := r.tracer.Start(ctx, "repository."+operation,
		trace.WithAttributes(
			attribute.String("repository.name", r.name),
			attribute.String("repository.operation", operation),
		),
	)

	start := time.Now()
	if r.metrics != nil {
		r.metrics.IncrementActiveOperations(ctx)
	}

	return ctx, func(err error) {
		if r.metrics != nil {
			r.metrics.DecrementActiveOperations(ctx)
			r.metrics.RecordOperation(ctx, operation, time.Since(start), err == nil)
		}
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}
}
