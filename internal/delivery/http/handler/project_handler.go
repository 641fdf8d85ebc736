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

// ProjectHandler обрабатывает запросы для проектов анализа
type ProjectHandler struct {
	projectUC *usecase.ProjectUseCase
	logger    *zap.Logger
}

// NewProjectHandler создает новый экземпляр ProjectHandler
func NewProjectHandler(projectUC *usecase.ProjectUseCase, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUC: projectUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Create analysis project
// @Description Создает проект с контуром здания и ориентацией севера
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Проект"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	project, err := h.projectUC.Create(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create project", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// Get godoc
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param id path string true "ID проекта"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	project, err := h.projectUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// List godoc
// @Summary List projects
// @Tags Projects
// @Produce json
// @Param limit query int false "Размер страницы" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	req := dto.ListProjectsRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	projects, err := h.projectUC.List(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to list projects", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, projects, &utils.Meta{Total: len(projects)})
}

// Update godoc
// @Summary Update project
// @Description Обновляет контур и ориентацию; изменение геометрии ставит пересчет анализа в очередь
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "ID проекта"
// @Param request body dto.UpdateProjectRequest true "Проект"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	project, err := h.projectUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// Delete godoc
// @Summary Delete project
// @Tags Projects
// @Param id path string true "ID проекта"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.projectUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": id}, nil)
}

// AttachImage godoc
// @Summary Upload floorplan image
// @Description Принимает изображение плана, сохраняет миниатюру и размеры
// @Tags Projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID проекта"
// @Param image formData file true "Изображение плана"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/projects/{id}/image [post]
func (h *ProjectHandler) AttachImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidImage)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidImage)
	}
	defer file.Close()

	resp, err := h.projectUC.AttachImage(c.Context(), id, fileHeader.Filename, file)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
