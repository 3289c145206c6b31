// Package testing предоставляет утилиты для тестирования приложений на базе фреймворка.
package testing

import (
	"context"
	"testing"

	"github.com/akriventsev/keeper"
	"github.com/akriventsev/keeper/framework/adapters/repository"
	"github.com/akriventsev/keeper/framework/metrics"
)

// InMemoryTestEnvironment тестовая среда с готовыми in-memory компонентами
type InMemoryTestEnvironment struct {
	Framework *keeper.BaseFramework
	Metrics   *metrics.Metrics
}

// NewInMemoryTestEnvironment создает новую тестовую среду с готовыми компонентами.
// Если создание сборщика метрик завершается с ошибкой, тест завершается с t.Fatalf
func NewInMemoryTestEnvironment(t *testing.T) *InMemoryTestEnvironment {
	t.Helper()

	collector, err := metrics.NewMetrics()
	if err != nil {
		t.Fatalf("failed to create metrics collector: %v", err)
	}

	return &InMemoryTestEnvironment{
		Framework: keeper.New(),
		Metrics:   collector,
	}
}

// NewRepository создает in-memory репозиторий с инструментацией для тестов.
// Диагностические сообщения отключены, чтобы не засорять вывод тестов.
func NewRepository[T any](t *testing.T, env *InMemoryTestEnvironment, name string) repository.Repository[T] {
	t.Helper()

	cfg := repository.DefaultInMemoryConfig()
	cfg.Quiet = true

	inner := repository.NewInMemoryRepository[T](cfg)
	if err := env.Framework.RegisterComponent(inner); err != nil {
		t.Fatalf("failed to register test repository: %v", err)
	}

	return repository.NewInstrumentedRepository[T](name, inner, env.Metrics)
}

// Shutdown корректно завершает работу тестовой среды
func (env *InMemoryTestEnvironment) Shutdown(t *testing.T) {
	t.Helper()

	if err := env.Framework.Shutdown(context.Background()); err != nil {
		t.Errorf("failed to shutdown test environment: %v", err)
	}
}
