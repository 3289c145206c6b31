// Package core предоставляет базовые типы для всех компонентов фреймворка.
package core

import (
	"context"

	"github.com/google/uuid"
)

// Context расширенный контекст с дополнительными методами для работы с метаданными
type Context interface {
	context.Context
	// GetMetadata возвращает метаданные из контекста
	GetMetadata(key string) (interface{}, bool)
	// SetMetadata устанавливает метаданные в контекст
	SetMetadata(key string, value interface{})
	// GetCorrelationID возвращает correlation ID
	GetCorrelationID() string
}

// FrameworkContext реализация расширенного контекста
type FrameworkContext struct {
	context.Context
	metadata map[string]interface{}
}

// NewFrameworkContext создает новый расширенный контекст.
// Correlation ID генерируется автоматически, если не задан через SetMetadata.
func NewFrameworkContext(ctx context.Context) *FrameworkContext {
	return &FrameworkContext{
		Context: ctx,
		metadata: map[string]interface{}{
			"correlation_id": uuid.NewString(),
		},
	}
}

// GetMetadata возвращает метаданные из контекста
func (c *FrameworkContext) GetMetadata(key string) (interface{}, bool) {
	val, ok := c.metadata[key]
	return val, ok
}

// SetMetadata устанавливает метаданные в контекст
func (c *FrameworkContext) SetMetadata(key string, value interface{}) {
	if c.metadata == nil {
		c.metadata = make(map[string]interface{})
	}
	c.metadata[key] = value
}

// GetCorrelationID возвращает correlation ID
func (c *FrameworkContext) GetCorrelationID() string {
	val, ok := c.GetMetadata("correlation_id")
	if !ok {
		return ""
	}
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// Result[T] generic тип для результатов операций (успех/ошибка)
type Result[T any] struct {
	Value T
	Error error
}

// Ok создает успешный результат
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Err создает результат с ошибкой
func Err[T any](err error) Result[T] {
	return Result[T]{Error: err}
}

// IsOk проверяет, успешен ли результат
func (r Result[T]) IsOk() bool {
	return r.Error == nil
}

// IsErr проверяет, есть ли ошибка в результате
func (r Result[T]) IsErr() bool {
	return r.Error != nil
}

// Option[T] generic тип для опциональных значений
type Option[T any] struct {
	value T
	some  bool
}

// Some создает Option с значением
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None создает пустой Option
func None[T any]() Option[T] {
	return Option[T]{some: false}
}

// IsSome проверяет, есть ли значение
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone проверяет, пуст ли Option
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value возвращает значение (panic если None)
func (o Option[T]) Value() T {
	if !o.some {
		panic("option is none")
	}
	return o.value
}

// ValueOr возвращает значение или значение по умолчанию
func (o Option[T]) ValueOr(defaultValue T) T {
	if o.some {
		return o.value
	}
	return defaultValue
}

// ReadOnly[T] generic контейнер для значений, неизменяемых после создания.
// Значение задается один раз в конструкторе; метода для изменения нет.
type ReadOnly[T any] struct {
	value T
}

// NewReadOnly создает контейнер с зафиксированным значением
func NewReadOnly[T any](value T) ReadOnly[T] {
	return ReadOnly[T]{value: value}
}

// Value возвращает зафиксированное значение
func (r ReadOnly[T]) Value() T {
	return r.value
}

// ComponentType enum для типов компонентов
type ComponentType string

const (
	ComponentTypeModule  ComponentType = "module"
	ComponentTypeAdapter ComponentType = "adapter"
	ComponentTypeHandler ComponentType = "handler"
)
