package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/pkg/errors"
	"github.com/vastu-microservice/internal/pkg/utils"
	"github.com/vastu-microservice/internal/pkg/validator"
	"github.com/vastu-microservice/internal/usecase"
	"github.com/vastu-microservice/internal/usecase/dto"
)

// AnalysisHandler обрабатывает запросы запуска анализа
type AnalysisHandler struct {
	analysisUC *usecase.AnalysisUseCase
	logger     *zap.Logger
}

// NewAnalysisHandler создает новый экземпляр AnalysisHandler
func NewAnalysisHandler(analysisUC *usecase.AnalysisUseCase, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: analysisUC,
		logger:     logger,
	}
}

// ListModules godoc
// @Summary List analysis modules
// @Tags Analysis
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/analysis/modules [get]
func (h *AnalysisHandler) ListModules(c *fiber.Ctx) error {
	modules := h.analysisUC.ListModules()
	return utils.SendSuccess(c, modules, &utils.Meta{Total: len(modules)})
}

// RunForProject godoc
// @Summary Run analysis module for project
// @Description Запускает модуль для проекта; ситуационные флаги передаются в теле
// @Tags Analysis
// @Accept json
// @Produce json
// @Param id path string true "ID проекта"
// @Param module path string true "ID модуля"
// @Param request body dto.RunAnalysisRequest false "Флаги запуска"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/projects/{id}/reports/{module} [post]
func (h *AnalysisHandler) RunForProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.RunAnalysisRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		if err := validator.Validate(req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"validation": err.Error(),
			}))
		}
	}

	start := time.Now()
	report, cached, err := h.analysisUC.RunForProject(c.Context(), id, c.Params("module"), req)
	if err != nil {
		h.logger.Error("Failed to run analysis",
			zap.String("project_id", id.String()),
			zap.String("module", c.Params("module")),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, &utils.Meta{
		Cached:   cached,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetReports godoc
// @Summary Get stored reports for project
// @Tags Analysis
// @Produce json
// @Param id path string true "ID проекта"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/projects/{id}/reports [get]
func (h *AnalysisHandler) GetReports(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	reports, err := h.analysisUC.GetReports(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, reports, &utils.Meta{Total: len(reports)})
}

// RunAdHoc godoc
// @Summary Run ad-hoc analysis
// @Description Разовый анализ контура без сохранения проекта
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body dto.AdHocAnalysisRequest true "Контур и модуль"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/analysis/run [post]
func (h *AnalysisHandler) RunAdHoc(c *fiber.Ctx) error {
	var req dto.AdHocAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	report, err := h.analysisUC.RunAdHoc(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to run ad-hoc analysis",
			zap.String("module", req.Module), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, report, nil)
}
