package usecase

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/analysis"
	"github.com/vastu-microservice/internal/analysis/modules"
	"github.com/vastu-microservice/internal/config"
	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/domain/repository"
	"github.com/vastu-microservice/internal/pkg/errors"
	"github.com/vastu-microservice/internal/pkg/palette"
	"github.com/vastu-microservice/internal/usecase/dto"
)

// adHocSeed - фиксированный seed для разовых запросов без проекта:
// повторный запрос с теми же входами дает тот же результат.
const adHocSeed = 1

// AnalysisUseCase обрабатывает бизнес-логику запуска анализа.
type AnalysisUseCase struct {
	projectRepo repository.ProjectRepository
	reportRepo  repository.ReportRepository
	cacheRepo   repository.CacheRepository
	registry    *modules.Registry
	cfg         config.AnalysisConfig
	reportTTL   time.Duration
	sectorTTL   time.Duration
	logger      *zap.Logger
}

// NewAnalysisUseCase создает новый экземпляр AnalysisUseCase
func NewAnalysisUseCase(
	projectRepo repository.ProjectRepository,
	reportRepo repository.ReportRepository,
	cacheRepo repository.CacheRepository,
	registry *modules.Registry,
	cfg config.AnalysisConfig,
	cacheCfg config.CacheConfig,
	logger *zap.Logger,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		projectRepo: projectRepo,
		reportRepo:  reportRepo,
		cacheRepo:   cacheRepo,
		registry:    registry,
		cfg:         cfg,
		reportTTL:   cacheCfg.ReportCacheTTL,
		sectorTTL:   cacheCfg.SectorCacheTTL,
		logger:      logger,
	}
}

// ListModules возвращает зарегистрированные аналитические модули.
func (uc *AnalysisUseCase) ListModules() []dto.ModuleInfo {
	list := uc.registry.List()
	out := make([]dto.ModuleInfo, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ModuleInfo{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
		})
	}
	return out
}

// RunForProject запускает модуль для проекта. Без флагов и без force
// используется кеш; любой запуск с флагами считается заново, потому
// что флаги не входят в ключ кеша.
func (uc *AnalysisUseCase) RunForProject(ctx context.Context, projectID uuid.UUID, moduleID string, req dto.RunAnalysisRequest) (*dto.ReportResponse, bool, error) {
	module, err := uc.registry.Get(moduleID)
	if err != nil {
		return nil, false, err
	}

	flags, err := toSituationalFlags(req.Flags)
	if err != nil {
		return nil, false, err
	}

	useCache := !req.Force && len(flags) == 0
	if useCache {
		cached, err := uc.cacheRepo.GetReport(ctx, projectID, moduleID)
		if err == nil && cached != nil {
			uc.logger.Debug("Analysis report served from cache",
				zap.String("project_id", projectID.String()),
				zap.String("module", moduleID))
			return uc.toResponse(cached), true, nil
		}
	}

	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, false, err
	}

	report, err := uc.runModule(project, module, flags)
	if err != nil {
		return nil, false, err
	}

	if err := uc.reportRepo.Save(ctx, report); err != nil {
		uc.logger.Warn("Failed to persist analysis report", zap.Error(err))
	}
	if useCache {
		if err := uc.cacheRepo.SetReport(ctx, report, uc.reportTTL); err != nil {
			uc.logger.Warn("Failed to cache analysis report", zap.Error(err))
		}
	}
	return uc.toResponse(report), false, nil
}

// RunAllForProject пересчитывает все модули проекта и прогревает кеш.
// Используется воркером после изменения геометрии.
func (uc *AnalysisUseCase) RunAllForProject(ctx context.Context, projectID uuid.UUID, moduleIDs []string) error {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if len(moduleIDs) == 0 {
		moduleIDs = uc.registry.IDs()
	}

	for _, id := range moduleIDs {
		module, err := uc.registry.Get(id)
		if err != nil {
			uc.logger.Warn("Skipping unknown module in analysis event",
				zap.String("module", id))
			continue
		}

		report, err := uc.runModule(project, module, nil)
		if err != nil {
			return err
		}
		if err := uc.reportRepo.Save(ctx, report); err != nil {
			return err
		}
		if err := uc.cacheRepo.SetReport(ctx, report, uc.reportTTL); err != nil {
			uc.logger.Warn("Failed to cache analysis report", zap.Error(err))
		}
	}

	uc.logger.Info("Project analysis recomputed",
		zap.String("project_id", projectID.String()),
		zap.Int("modules", len(moduleIDs)))
	return nil
}

// RunAdHoc выполняет разовый анализ контура без сохранения проекта.
func (uc *AnalysisUseCase) RunAdHoc(ctx context.Context, req dto.AdHocAnalysisRequest) (*dto.ReportResponse, error) {
	module, err := uc.registry.Get(req.Module)
	if err != nil {
		return nil, err
	}

	flags, err := toSituationalFlags(req.Flags)
	if err != nil {
		return nil, err
	}

	boundary := toBoundary(req.Boundary)
	opts := uc.coverageOptions(adHocSeed)
	if req.Samples > 0 {
		opts.Samples = req.Samples
	}

	report, err := uc.evaluate(uuid.Nil, boundary, req.RotationOffset, module, flags, opts)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(report), nil
}

// GetReports возвращает сохраненные отчеты проекта.
func (uc *AnalysisUseCase) GetReports(ctx context.Context, projectID uuid.UUID) ([]*dto.ReportResponse, error) {
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	reports, err := uc.reportRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, uc.toResponse(r))
	}
	return out, nil
}

// Sectors возвращает геометрию секторов для произвольного поворота,
// с кешем: геометрия зависит только от (count, rotation).
func (uc *AnalysisUseCase) Sectors(ctx context.Context, req dto.SectorsRequest) ([]domain.Sector, error) {
	count := req.Count
	if count == 0 {
		count = uc.cfg.DefaultGranularity
	}

	if cached, err := uc.cacheRepo.GetSectors(ctx, count, req.RotationOffset); err == nil && cached != nil {
		return cached, nil
	}

	sectors, err := analysis.BuildSectors(count, req.RotationOffset)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetSectors(ctx, count, req.RotationOffset, sectors, uc.sectorTTL); err != nil {
		uc.logger.Warn("Failed to cache sector geometry", zap.Error(err))
	}
	return sectors, nil
}

// ProjectSectors возвращает сектора проекта с покрытием и цветом для
// отрисовки поверх плана.
func (uc *AnalysisUseCase) ProjectSectors(ctx context.Context, projectID uuid.UUID) ([]domain.SectorView, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	sectors, err := analysis.BuildSectors(project.Granularity, project.RotationOffset)
	if err != nil {
		return nil, err
	}

	coverage, err := analysis.EstimateCoverage(project.Boundary, sectors, uc.coverageOptions(seedForProject(projectID)))
	if err != nil {
		return nil, err
	}

	views := make([]domain.SectorView, 0, len(sectors))
	for i, s := range sectors {
		views = append(views, domain.SectorView{
			Sector:          s,
			CoveragePercent: coverage[i].CoveragePercent,
			Color:           palette.CoverageColor(coverage[i].CoveragePercent),
		})
	}
	return views, nil
}

func (uc *AnalysisUseCase) runModule(project *domain.Project, module modules.Module, flags domain.SituationalFlags) (*domain.AnalysisReport, error) {
	return uc.evaluate(
		project.ID,
		project.Boundary,
		project.RotationOffset,
		module,
		flags,
		uc.coverageOptions(seedForProject(project.ID)),
	)
}

// evaluate - общий путь оценки: каноническое 32-секторное разбиение,
// покрытие, агрегация по направлениям, оценочный движок модуля.
func (uc *AnalysisUseCase) evaluate(
	projectID uuid.UUID,
	boundary domain.Boundary,
	rotation float64,
	module modules.Module,
	flags domain.SituationalFlags,
	opts analysis.CoverageOptions,
) (*domain.AnalysisReport, error) {
	sectors, err := analysis.BuildSectors(analysis.Granularity32, rotation)
	if err != nil {
		return nil, err
	}

	coverage, err := analysis.EstimateCoverage(boundary, sectors, opts)
	if err != nil {
		return nil, err
	}

	assessments, overall, severity := module.Engine.Evaluate(analysis.AggregateByDirection(coverage), flags)

	return &domain.AnalysisReport{
		ProjectID:       projectID,
		ModuleID:        module.ID,
		ModuleTitle:     module.Title,
		Granularity:     analysis.Granularity32,
		RotationOffset:  rotation,
		Directions:      assessments,
		Coverage:        coverage,
		OverallScore:    overall,
		OverallSeverity: severity,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

func (uc *AnalysisUseCase) coverageOptions(seed int64) analysis.CoverageOptions {
	return analysis.CoverageOptions{
		Samples:         uc.cfg.SamplesPerSector,
		InnerRadiusFrac: uc.cfg.InnerRadiusFrac,
		OuterRadiusFrac: uc.cfg.OuterRadiusFrac,
		Seed:            seed,
	}
}

func (uc *AnalysisUseCase) toResponse(report *domain.AnalysisReport) *dto.ReportResponse {
	colors := make(map[string]string, len(report.Directions))
	for _, d := range report.Directions {
		colors[string(d.Direction)] = palette.ScoreColor(d.Score)
	}
	return &dto.ReportResponse{
		AnalysisReport:  report,
		OverallColor:    palette.ScoreColor(report.OverallScore),
		DirectionColors: colors,
	}
}

// seedForProject выводит seed сэмплирования из идентификатора проекта:
// повторные запуски для одного проекта воспроизводимы.
func seedForProject(id uuid.UUID) int64 {
	if id == uuid.Nil {
		return adHocSeed
	}
	return int64(binary.BigEndian.Uint64(id[:8]))
}

func toSituationalFlags(in map[string]dto.SituationalFlag) (domain.SituationalFlags, error) {
	if len(in) == 0 {
		return nil, nil
	}
	flags := make(domain.SituationalFlags, len(in))
	for code, f := range in {
		d := domain.DirectionCode(code)
		if !d.IsValid() {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"direction": code,
			})
		}
		flags[d] = domain.SituationalInput{
			HeavyStructure: f.HeavyStructure,
			Blocked:        f.Blocked,
			Usage:          f.Usage,
		}
	}
	return flags, nil
}
