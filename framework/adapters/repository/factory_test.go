package repository

import (
	"context"
	"testing"
)

func TestRepositoryFactory_CreateInMemory(t *testing.T) {
	factory := NewRepositoryFactory()

	repo, err := CreateRepository[any](factory, "inmemory", quietConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	ctx := context.Background()
	if err := repo.Add(ctx, "item"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 item, got %d", len(all))
	}
}

func TestRepositoryFactory_UnknownType(t *testing.T) {
	factory := NewRepositoryFactory()

	_, err := CreateRepository[any](factory, "postgres", nil)
	if err == nil {
		t.Error("Expected error for unknown repository type")
	}
}

func TestRepositoryFactory_RegisterCustom(t *testing.T) {
	factory := NewRepositoryFactory()

	err := factory.Register("custom", func(config interface{}) (interface{}, error) {
		return NewInMemoryRepository[int](quietConfig()), nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	repo, err := CreateRepository[int](factory, "custom", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	ctx := context.Background()
	if err := repo.Add(ctx, 42); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestRepositoryFactory_RegisterDuplicate(t *testing.T) {
	factory := NewRepositoryFactory()

	err := factory.Register("inmemory", func(config interface{}) (interface{}, error) {
		return nil, nil
	})
	if err == nil {
		t.Error("Expected error for duplicate adapter name")
	}
}

func TestRepositoryFactory_RegisterInvalid(t *testing.T) {
	factory := NewRepositoryFactory()

	if err := factory.Register("", func(config interface{}) (interface{}, error) { return nil, nil }); err == nil {
		t.Error("Expected error for empty adapter name")
	}
	if err := factory.Register("nilcreator", nil); err == nil {
		t.Error("Expected error for nil creator")
	}
}
