package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/domain/repository"
	"github.com/vastu-microservice/internal/pkg/errors"
	"github.com/vastu-microservice/internal/pkg/floorplan"
	"github.com/vastu-microservice/internal/pkg/geometry"
	"github.com/vastu-microservice/internal/usecase/dto"
)

const defaultProjectGranularity = 32

// ProjectUseCase обрабатывает бизнес-логику проектов анализа.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	reportRepo  repository.ReportRepository
	cacheRepo   repository.CacheRepository
	streamRepo  repository.StreamRepository
	uploadsDir  string
	logger      *zap.Logger
}

// NewProjectUseCase создает новый экземпляр ProjectUseCase
func NewProjectUseCase(
	projectRepo repository.ProjectRepository,
	reportRepo repository.ReportRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	uploadsDir string,
	logger *zap.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		reportRepo:  reportRepo,
		cacheRepo:   cacheRepo,
		streamRepo:  streamRepo,
		uploadsDir:  uploadsDir,
		logger:      logger,
	}
}

func toBoundary(points []dto.Point) domain.Boundary {
	b := make(domain.Boundary, 0, len(points))
	for _, p := range points {
		b = append(b, domain.Point{X: p.X, Y: p.Y})
	}
	return b
}

// Create создает проект с валидацией контура.
func (uc *ProjectUseCase) Create(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	boundary := toBoundary(req.Boundary)
	if err := geometry.ValidateBoundary(boundary); err != nil {
		return nil, err
	}

	granularity := req.Granularity
	if granularity == 0 {
		granularity = defaultProjectGranularity
	}

	project := &domain.Project{
		ID:             uuid.New(),
		Name:           req.Name,
		Boundary:       boundary,
		RotationOffset: req.RotationOffset,
		Granularity:    granularity,
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	uc.publishAnalysisEvent(ctx, project.ID, domain.ReasonProjectCreated)
	uc.logger.Info("Project created",
		zap.String("id", project.ID.String()),
		zap.String("name", project.Name),
		zap.Int("boundary_points", len(project.Boundary)))
	return project, nil
}

// Get возвращает проект по идентификатору.
func (uc *ProjectUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

// List возвращает страницу проектов.
func (uc *ProjectUseCase) List(ctx context.Context, req dto.ListProjectsRequest) ([]*domain.Project, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 20
	}
	return uc.projectRepo.List(ctx, limit, req.Offset)
}

// Update обновляет проект. Изменение геометрии инвалидирует кеш
// отчетов и ставит пересчет анализа в очередь.
func (uc *ProjectUseCase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*domain.Project, error) {
	boundary := toBoundary(req.Boundary)
	if err := geometry.ValidateBoundary(boundary); err != nil {
		return nil, err
	}

	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	geometryChanged := req.RotationOffset != project.RotationOffset ||
		!boundariesEqual(boundary, project.Boundary)

	project.Name = req.Name
	project.Boundary = boundary
	project.RotationOffset = req.RotationOffset
	if req.Granularity != 0 {
		project.Granularity = req.Granularity
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	if geometryChanged {
		if err := uc.cacheRepo.InvalidateProject(ctx, id); err != nil {
			uc.logger.Warn("Failed to invalidate project cache", zap.Error(err))
		}
		uc.publishAnalysisEvent(ctx, id, domain.ReasonBoundaryChanged)
	}
	return project, nil
}

// Delete удаляет проект, его отчеты и кеш.
func (uc *ProjectUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.reportRepo.DeleteByProject(ctx, id); err != nil {
		uc.logger.Warn("Failed to delete project reports", zap.Error(err))
	}
	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.cacheRepo.InvalidateProject(ctx, id); err != nil {
		uc.logger.Warn("Failed to invalidate project cache", zap.Error(err))
	}
	uc.logger.Info("Project deleted", zap.String("id", id.String()))
	return nil
}

// AttachImage обрабатывает загруженный план этажа: декодирует,
// сохраняет миниатюру на диск и записывает размеры в проект.
func (uc *ProjectUseCase) AttachImage(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (*dto.FloorplanResponse, error) {
	if !floorplan.SupportedExtension(filename) {
		return nil, errors.ErrInvalidImage
	}

	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	meta, thumb, err := floorplan.Process(r)
	if err != nil {
		uc.logger.Warn("Failed to process floorplan image",
			zap.String("project_id", id.String()), zap.Error(err))
		return nil, errors.ErrInvalidImage
	}

	thumbFile := fmt.Sprintf("%s_thumb.png", id)
	if err := os.MkdirAll(uc.uploadsDir, 0o755); err != nil {
		return nil, errors.ErrInternalServer
	}
	if err := os.WriteFile(filepath.Join(uc.uploadsDir, thumbFile), thumb, 0o644); err != nil {
		uc.logger.Error("Failed to write thumbnail", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	project.ImageFile = filename
	project.ImageWidth = meta.Width
	project.ImageHeight = meta.Height
	project.ThumbnailFile = thumbFile
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return &dto.FloorplanResponse{
		ProjectID:     id.String(),
		Width:         meta.Width,
		Height:        meta.Height,
		ThumbnailFile: thumbFile,
	}, nil
}

func (uc *ProjectUseCase) publishAnalysisEvent(ctx context.Context, id uuid.UUID, reason string) {
	event := domain.AnalysisRequestedEvent{ProjectID: id, Reason: reason}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamAnalysisRequested, event); err != nil {
		// Пересчет не критичен для ответа: отчет досчитается по запросу
		uc.logger.Warn("Failed to publish analysis event",
			zap.String("project_id", id.String()),
			zap.String("reason", reason),
			zap.Error(err))
	}
}

func boundariesEqual(a, b domain.Boundary) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
