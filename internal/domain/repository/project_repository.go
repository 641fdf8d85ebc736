package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vastu-microservice/internal/domain"
)

// ProjectRepository определяет хранилище проектов анализа.
type ProjectRepository interface {
	// Create сохраняет новый проект
	Create(ctx context.Context, p *domain.Project) error

	// GetByID возвращает проект по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// List возвращает проекты, новые первыми
	List(ctx context.Context, limit, offset int) ([]*domain.Project, error)

	// Update обновляет контур, поворот и метаданные проекта
	Update(ctx context.Context, p *domain.Project) error

	// Delete удаляет проект и его отчеты
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportRepository определяет хранилище отчетов анализа.
type ReportRepository interface {
	// Save сохраняет отчет, перезаписывая прежний отчет того же
	// модуля для проекта
	Save(ctx context.Context, r *domain.AnalysisReport) error

	// Get возвращает последний отчет модуля для проекта
	Get(ctx context.Context, projectID uuid.UUID, moduleID string) (*domain.AnalysisReport, error)

	// ListByProject возвращает все отчеты проекта
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.AnalysisReport, error)

	// DeleteByProject удаляет отчеты проекта
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
