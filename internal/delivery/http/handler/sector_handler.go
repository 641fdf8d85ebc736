package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/pkg/errors"
	"github.com/vastu-microservice/internal/pkg/utils"
	"github.com/vastu-microservice/internal/pkg/validator"
	"github.com/vastu-microservice/internal/usecase"
	"github.com/vastu-microservice/internal/usecase/dto"
)

// SectorHandler обрабатывает запросы геометрии секторов
type SectorHandler struct {
	analysisUC *usecase.AnalysisUseCase
	logger     *zap.Logger
}

// NewSectorHandler создает новый экземпляр SectorHandler
func NewSectorHandler(analysisUC *usecase.AnalysisUseCase, logger *zap.Logger) *SectorHandler {
	return &SectorHandler{
		analysisUC: analysisUC,
		logger:     logger,
	}
}

// GetSectors godoc
// @Summary Get sector geometry
// @Description Возвращает разбиение круга на сектора для заданного поворота
// @Tags Sectors
// @Produce json
// @Param count query int false "Число секторов (8/16/32)" default(32)
// @Param rotation query number false "Поворот севера в градусах" default(0)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sectors [get]
func (h *SectorHandler) GetSectors(c *fiber.Ctx) error {
	req := dto.SectorsRequest{
		Count:          c.QueryInt("count", 0),
		RotationOffset: c.QueryFloat("rotation", 0),
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidGranularity)
	}

	sectors, err := h.analysisUC.Sectors(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, sectors, &utils.Meta{Total: len(sectors)})
}

// GetProjectSectors godoc
// @Summary Get project sectors with coverage
// @Description Сектора проекта с покрытием контуром и цветом для отрисовки
// @Tags Sectors
// @Produce json
// @Param id path string true "ID проекта"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/projects/{id}/sectors [get]
func (h *SectorHandler) GetProjectSectors(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	views, err := h.analysisUC.ProjectSectors(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to compute project sectors",
			zap.String("project_id", id.String()), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, views, &utils.Meta{Total: len(views)})
}
