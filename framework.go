// Package keeper предоставляет универсальные generic-компоненты для работы
// с in-memory коллекциями сущностей.
//
// Основные возможности:
//   - Generic репозиторий с контрактом add/get_all/find
//   - Comparable capability для поэлементного сравнения сущностей
//   - ReadOnly контейнеры для значений, неизменяемых после создания
//   - Метрики и трейсинг на основе OpenTelemetry
//
// Пример использования:
//
//	fw := keeper.New()
//	if err := fw.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer fw.Shutdown(ctx)
package keeper

import (
	"context"
	"fmt"

	"github.com/akriventsev/keeper/framework/core"
)

// Version представляет версию фреймворка
const (
	Version = "1.0.0"
	Major   = 1
	Minor   = 0
	Patch   = 0
)

// Metadata содержит метаданные о фреймворке
type Metadata struct {
	Name        string
	Version     string
	Description string
	Author      string
	License     string
}

// GetMetadata возвращает метаданные фреймворка
func GetMetadata() Metadata {
	return Metadata{
		Name:        "Keeper Framework",
		Version:     Version,
		Description: "Generic in-memory repository components",
		Author:      "Keeper Team",
		License:     "MIT",
	}
}

// Framework основной интерфейс фреймворка
type Framework interface {
	// Initialize инициализирует фреймворк
	Initialize(ctx context.Context) error
	// Shutdown корректно завершает работу фреймворка
	Shutdown(ctx context.Context) error
	// GetComponent возвращает компонент по имени
	GetComponent(name string) (core.Component, error)
	// RegisterComponent регистрирует компонент
	RegisterComponent(component core.Component) error
}

// BaseFramework базовая реализация фреймворка
type BaseFramework struct {
	components map[string]core.Component
	metadata   Metadata
}

// New создает новый экземпляр фреймворка
func New() *BaseFramework {
	return &BaseFramework{
		components: make(map[string]core.Component),
		metadata:   GetMetadata(),
	}
}

// Initialize инициализирует зарегистрированные компоненты
func (f *BaseFramework) Initialize(ctx context.Context) error {
	for name, component := range f.components {
		if initializable, ok := component.(core.Initializable); ok {
			if err := initializable.Initialize(ctx); err != nil {
				return fmt.Errorf("failed to initialize component %s: %w", name, err)
			}
		}
		if lifecycle, ok := component.(core.Lifecycle); ok {
			if err := lifecycle.Start(ctx); err != nil {
				return fmt.Errorf("failed to start component %s: %w", name, err)
			}
		}
	}
	return nil
}

// Shutdown корректно завершает работу компонентов
func (f *BaseFramework) Shutdown(ctx context.Context) error {
	var firstErr error
	for name, component := range f.components {
		if lifecycle, ok := component.(core.Lifecycle); ok {
			if err := lifecycle.Stop(ctx); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("failed to stop component %s: %w", name, err)
			}
		}
		if disposable, ok := component.(core.Disposable); ok {
			if err := disposable.Dispose(ctx); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("failed to dispose component %s: %w", name, err)
			}
		}
	}
	return firstErr
}

// GetComponent возвращает компонент по имени
func (f *BaseFramework) GetComponent(name string) (core.Component, error) {
	component, exists := f.components[name]
	if !exists {
		return nil, fmt.Errorf("component %s not found", name)
	}
	return component, nil
}

// RegisterComponent регистрирует компонент
func (f *BaseFramework) RegisterComponent(component core.Component) error {
	if _, exists := f.components[component.Name()]; exists {
		return fmt.Errorf("component %s already registered", component.Name())
	}
	f.components[component.Name()] = component
	return nil
}

// FrameworkVersion возвращает версию фреймворка
func FrameworkVersion() string {
	return Version
}
