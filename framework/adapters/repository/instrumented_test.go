package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/akriventsev/keeper/framework/core"
	"github.com/akriventsev/keeper/framework/metrics"
)

func newInstrumented(t *testing.T) Repository[testItem] {
	t.Helper()

	m, err := metrics.NewMetrics()
	if err != nil {
		t.Fatalf("Failed to create metrics: %v", err)
	}

	inner := NewInMemoryRepository[testItem](quietConfig())
	return NewInstrumentedRepository[testItem]("catalog", inner, m)
}

func TestInstrumentedRepository_DelegatesAdd(t *testing.T) {
	repo := newInstrumented(t)
	ctx := context.Background()

	if err := repo.Add(ctx, testItem{Name: "Phone", Price: 1500.00}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if len(all) != 1 || all[0].Name != "Phone" {
		t.Errorf("Expected added item to be visible, got %v", all)
	}
}

func TestInstrumentedRepository_PreservesSemantics(t *testing.T) {
	repo := newInstrumented(t)
	ctx := context.Background()

	if err := repo.Add(ctx, testItem{Name: "Toy Car", Price: 25.00}); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	// Заглушка GetByID сохраняется
	item, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if item != (testItem{}) {
		t.Errorf("Expected zero value, got %v", item)
	}

	// Update и Delete остаются нереализованными
	if err := repo.Update(ctx, testItem{}); !errors.Is(err, core.NewError(core.ErrNotImplemented, "")) {
		t.Errorf("Expected NOT_IMPLEMENTED error, got %v", err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, core.NewError(core.ErrNotImplemented, "")) {
		t.Errorf("Expected NOT_IMPLEMENTED error, got %v", err)
	}
}

func TestInstrumentedRepository_NilMetrics(t *testing.T) {
	inner := NewInMemoryRepository[int](quietConfig())
	repo := NewInstrumentedRepository[int]("numbers", inner, nil)
	ctx := context.Background()

	// Без сборщика метрик операции работают как обычно
	if err := repo.Add(ctx, 42); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	found, err := repo.Find(ctx, func(n int) bool { return n == 42 })
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if found != 42 {
		t.Errorf("Expected 42, got %d", found)
	}
}
