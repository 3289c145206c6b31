// Package repository предоставляет generic адаптеры для работы с in-memory коллекциями.
package repository

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/akriventsev/keeper/framework/core"
)

// InMemoryConfig конфигурация для InMemory репозитория
type InMemoryConfig struct {
	// ConnectionString строка подключения. Реального подключения нет:
	// значение используется только в диагностических сообщениях.
	ConnectionString string
	// Quiet отключает диагностические сообщения об операциях
	Quiet bool
}

// DefaultInMemoryConfig возвращает конфигурацию InMemory по умолчанию
func DefaultInMemoryConfig() InMemoryConfig {
	return InMemoryConfig{
		ConnectionString: "inmemory://local",
	}
}

// InMemoryRepository[T] generic in-memory репозиторий.
//
// Хранит элементы в порядке вставки, дубликаты допускаются, ограничения
// на размер нет. Элементы никогда не удаляются: Update и Delete объявлены
// в контракте, но намеренно возвращают ошибку NOT_IMPLEMENTED.
type InMemoryRepository[T any] struct {
	config InMemoryConfig
	id     string
	items  []T
	mu     sync.RWMutex
}

// NewInMemoryRepository создает новый in-memory репозиторий
func NewInMemoryRepository[T any](config InMemoryConfig) *InMemoryRepository[T] {
	return &InMemoryRepository[T]{
		config: config,
		id:     uuid.NewString(),
	}
}

// Name возвращает имя компонента
func (r *InMemoryRepository[T]) Name() string {
	return "inmemory-repository-" + r.id[:8]
}

// Type возвращает тип компонента
func (r *InMemoryRepository[T]) Type() core.ComponentType {
	return core.ComponentTypeAdapter
}

// String возвращает отображаемое описание репозитория
func (r *InMemoryRepository[T]) String() string {
	return fmt.Sprintf("InMemoryRepository(%s)", r.config.ConnectionString)
}

// Add дописывает элемент в конец коллекции. Операция всегда успешна.
func (r *InMemoryRepository[T]) Add(ctx context.Context, item T) error {
	r.mu.Lock()
	r.items = append(r.items, item)
	total := len(r.items)
	r.mu.Unlock()

	if !r.config.Quiet {
		log.Printf("repository %s: item added, %d total", r.Name(), total)
	}
	return nil
}

// GetAll возвращает содержимое коллекции в порядке вставки.
//
// Возвращаемый slice разделяет память с внутренним хранилищем:
// защитной копии нет, вызывающий код не должен модифицировать результат.
func (r *InMemoryRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items, nil
}

// GetByID заглушка: всегда возвращает нулевое значение T независимо от id.
// Реальный поиск по идентификатору не реализован.
func (r *InMemoryRepository[T]) GetByID(ctx context.Context, id int) (T, error) {
	var zero T
	return zero, nil
}

// Find возвращает первый элемент, удовлетворяющий предикату, сканируя
// коллекцию в порядке вставки. Если совпадений нет, возвращается нулевое
// значение T без ошибки (семантика first-or-default).
func (r *InMemoryRepository[T]) Find(ctx context.Context, predicate Predicate[T]) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if predicate(item) {
			return item, nil
		}
	}

	var zero T
	return zero, nil
}

// Update всегда возвращает ошибку NOT_IMPLEMENTED. Состояние не меняется.
func (r *InMemoryRepository[T]) Update(ctx context.Context, item T) error {
	return core.NewError(core.ErrNotImplemented, "update is not implemented")
}

// Delete всегда возвращает ошибку NOT_IMPLEMENTED. Состояние не меняется.
func (r *InMemoryRepository[T]) Delete(ctx context.Context, id int) error {
	return core.NewError(core.ErrNotImplemented, "delete is not implemented")
}

// Count возвращает количество элементов
func (r *InMemoryRepository[T]) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
