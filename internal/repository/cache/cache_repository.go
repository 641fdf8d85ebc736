package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/domain/repository"
	"github.com/vastu-microservice/internal/pkg/errors"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository создает новый экземпляр CacheRepository
func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.client,
		logger: r.logger,
	}
}

func reportKey(projectID uuid.UUID, moduleID string) string {
	return fmt.Sprintf("report:%s:%s", projectID, moduleID)
}

func sectorKey(count int, rotation float64) string {
	return fmt.Sprintf("sectors:%d:%.4f", count, rotation)
}

// Get получает значение из кеша по ключу
func (c *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		c.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, errors.ErrCacheError
	}
	return data, nil
}

// Set сохраняет значение в кеше с TTL
func (c *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError
	}
	return nil
}

// Delete удаляет значение из кеша
func (c *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.ErrCacheError
	}
	return nil
}

// GetReport получает отчет анализа из кеша
func (c *cacheRepository) GetReport(ctx context.Context, projectID uuid.UUID, moduleID string) (*domain.AnalysisReport, error) {
	data, err := c.Get(ctx, reportKey(projectID, moduleID))
	if err != nil || data == nil {
		return nil, err
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		c.logger.Warn("Failed to unmarshal cached report", zap.Error(err))
		return nil, nil
	}
	return &report, nil
}

// SetReport сохраняет отчет анализа в кеше
func (c *cacheRepository) SetReport(ctx context.Context, report *domain.AnalysisReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return errors.ErrInternalServer
	}
	return c.Set(ctx, reportKey(report.ProjectID, report.ModuleID), data, ttl)
}

// InvalidateProject удаляет все кешированные отчеты проекта
func (c *cacheRepository) InvalidateProject(ctx context.Context, projectID uuid.UUID) error {
	pattern := fmt.Sprintf("report:%s:*", projectID)

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("Failed to delete cached report",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("Cache invalidation scan failed",
			zap.String("project_id", projectID.String()), zap.Error(err))
		return errors.ErrCacheError
	}
	return nil
}

// GetSectors получает геометрию секторов из кеша
func (c *cacheRepository) GetSectors(ctx context.Context, count int, rotation float64) ([]domain.Sector, error) {
	data, err := c.Get(ctx, sectorKey(count, rotation))
	if err != nil || data == nil {
		return nil, err
	}

	var sectors []domain.Sector
	if err := json.Unmarshal(data, &sectors); err != nil {
		return nil, nil
	}
	return sectors, nil
}

// SetSectors сохраняет геометрию секторов в кеше
func (c *cacheRepository) SetSectors(ctx context.Context, count int, rotation float64, sectors []domain.Sector, ttl time.Duration) error {
	data, err := json.Marshal(sectors)
	if err != nil {
		return errors.ErrInternalServer
	}
	return c.Set(ctx, sectorKey(count, rotation), data, ttl)
}
