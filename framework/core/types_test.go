package core

import (
	"context"
	"errors"
	"testing"
)

func TestFrameworkContext_GetMetadata(t *testing.T) {
	ctx := context.Background()
	fwCtx := NewFrameworkContext(ctx)

	// Устанавливаем метаданные
	fwCtx.SetMetadata("key1", "value1")
	fwCtx.SetMetadata("key2", 42)

	// Получаем метаданные
	val1, ok1 := fwCtx.GetMetadata("key1")
	if !ok1 {
		t.Error("Expected metadata key1 to exist")
	}
	if val1 != "value1" {
		t.Errorf("Expected value1, got %v", val1)
	}

	val2, ok2 := fwCtx.GetMetadata("key2")
	if !ok2 {
		t.Error("Expected metadata key2 to exist")
	}
	if val2 != 42 {
		t.Errorf("Expected 42, got %v", val2)
	}

	// Несуществующий ключ
	_, ok3 := fwCtx.GetMetadata("nonexistent")
	if ok3 {
		t.Error("Expected nonexistent key to not exist")
	}
}

func TestFrameworkContext_CorrelationID(t *testing.T) {
	fwCtx := NewFrameworkContext(context.Background())

	// Correlation ID генерируется автоматически
	if fwCtx.GetCorrelationID() == "" {
		t.Error("Expected auto-generated correlation ID")
	}

	// Явно заданный ID имеет приоритет
	fwCtx.SetMetadata("correlation_id", "custom-id")
	if fwCtx.GetCorrelationID() != "custom-id" {
		t.Errorf("Expected custom-id, got %s", fwCtx.GetCorrelationID())
	}
}

func TestResult_Ok(t *testing.T) {
	result := Ok(42)

	if !result.IsOk() {
		t.Error("Expected result to be ok")
	}
	if result.IsErr() {
		t.Error("Expected result to not be error")
	}
	if result.Value != 42 {
		t.Errorf("Expected 42, got %d", result.Value)
	}
}

func TestResult_Err(t *testing.T) {
	testErr := errors.New("test error")
	result := Err[int](testErr)

	if result.IsOk() {
		t.Error("Expected result to not be ok")
	}
	if !result.IsErr() {
		t.Error("Expected result to be error")
	}
	if result.Error != testErr {
		t.Errorf("Expected test error, got %v", result.Error)
	}
}

func TestOption_Some(t *testing.T) {
	opt := Some("value")

	if !opt.IsSome() {
		t.Error("Expected option to be some")
	}
	if opt.IsNone() {
		t.Error("Expected option to not be none")
	}
	if opt.Value() != "value" {
		t.Errorf("Expected value, got %s", opt.Value())
	}
}

func TestOption_None(t *testing.T) {
	opt := None[string]()

	if opt.IsSome() {
		t.Error("Expected option to not be some")
	}
	if !opt.IsNone() {
		t.Error("Expected option to be none")
	}
	if opt.ValueOr("default") != "default" {
		t.Errorf("Expected default, got %s", opt.ValueOr("default"))
	}
}

func TestOption_None_ValuePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when calling Value on none")
		}
	}()

	opt := None[int]()
	_ = opt.Value()
}

func TestReadOnly_Value(t *testing.T) {
	holder := NewReadOnly(42)

	if holder.Value() != 42 {
		t.Errorf("Expected 42, got %d", holder.Value())
	}

	// Копия не влияет на оригинал
	copied := holder
	if copied.Value() != 42 {
		t.Errorf("Expected 42 in copy, got %d", copied.Value())
	}
}

func TestReadOnly_ZeroValue(t *testing.T) {
	var holder ReadOnly[string]

	if holder.Value() != "" {
		t.Errorf("Expected empty string, got %s", holder.Value())
	}
}
