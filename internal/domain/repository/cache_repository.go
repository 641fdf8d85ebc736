package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vastu-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем результатов.
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetReport получает отчет анализа из кеша
	GetReport(ctx context.Context, projectID uuid.UUID, moduleID string) (*domain.AnalysisReport, error)

	// SetReport сохраняет отчет анализа в кеше
	SetReport(ctx context.Context, report *domain.AnalysisReport, ttl time.Duration) error

	// InvalidateProject удаляет все кешированные отчеты проекта
	InvalidateProject(ctx context.Context, projectID uuid.UUID) error

	// GetSectors получает геометрию секторов из кеша
	GetSectors(ctx context.Context, count int, rotation float64) ([]domain.Sector, error)

	// SetSectors сохраняет геометрию секторов в кеше
	SetSectors(ctx context.Context, count int, rotation float64, sectors []domain.Sector, ttl time.Duration) error
}
