// Package repository предоставляет generic адаптеры для работы с in-memory коллекциями.
package repository

import "context"

// Predicate функция-предикат для поиска по коллекции
type Predicate[T any] func(item T) bool

// Repository интерфейс для репозитория.
//
// Контракт операций:
//   - Add всегда успешен и дописывает элемент в конец коллекции
//   - GetAll возвращает содержимое в порядке вставки
//   - GetByID заглушка: всегда возвращает нулевое значение T
//   - Find возвращает первый подходящий элемент или нулевое значение T
//   - Update и Delete всегда возвращают ошибку NOT_IMPLEMENTED
type Repository[T any] interface {
	Add(ctx context.Context, item T) error
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Find(ctx context.Context, predicate Predicate[T]) (T, error)
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id int) error
}
