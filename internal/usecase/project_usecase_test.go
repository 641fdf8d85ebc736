package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/pkg/errors"
	"github.com/vastu-microservice/internal/usecase"
	"github.com/vastu-microservice/internal/usecase/dto"
)

func squareBoundaryDTO() []dto.Point {
	return []dto.Point{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 100, Y: 100},
		{X: 0, Y: 100},
	}
}

func newProjectUseCase(t *testing.T) (*usecase.ProjectUseCase, *MockProjectRepository, *MockReportRepository, *MockCacheRepository, *MockStreamRepository) {
	t.Helper()
	projectRepo := &MockProjectRepository{}
	reportRepo := &MockReportRepository{}
	cacheRepo := &MockCacheRepository{}
	streamRepo := &MockStreamRepository{}

	uc := usecase.NewProjectUseCase(
		projectRepo, reportRepo, cacheRepo, streamRepo,
		t.TempDir(), zap.NewNop(),
	)
	return uc, projectRepo, reportRepo, cacheRepo, streamRepo
}

func TestProjectUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success publishes analysis event", func(t *testing.T) {
		uc, projectRepo, _, _, streamRepo := newProjectUseCase(t)

		projectRepo.On("Create", ctx, mock.AnythingOfType("*domain.Project")).Return(nil)
		streamRepo.On("PublishToStream", ctx, domain.StreamAnalysisRequested,
			mock.AnythingOfType("domain.AnalysisRequestedEvent")).Return(nil)

		project, err := uc.Create(ctx, dto.CreateProjectRequest{
			Name:     "Test flat",
			Boundary: squareBoundaryDTO(),
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, project.ID)
		assert.Equal(t, "Test flat", project.Name)
		assert.Len(t, project.Boundary, 4)
		assert.Equal(t, 32, project.Granularity) // дефолтная гранулярность

		projectRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("degenerate boundary rejected before persistence", func(t *testing.T) {
		uc, projectRepo, _, _, _ := newProjectUseCase(t)

		_, err := uc.Create(ctx, dto.CreateProjectRequest{
			Name: "Bad",
			Boundary: []dto.Point{
				{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2},
			},
		})

		assert.ErrorIs(t, err, errors.ErrDegenerateBoundary)
		projectRepo.AssertNotCalled(t, "Create")
	})

	t.Run("publish failure does not fail creation", func(t *testing.T) {
		uc, projectRepo, _, _, streamRepo := newProjectUseCase(t)

		projectRepo.On("Create", ctx, mock.Anything).Return(nil)
		streamRepo.On("PublishToStream", ctx, domain.StreamAnalysisRequested, mock.Anything).
			Return(errors.ErrCacheError)

		_, err := uc.Create(ctx, dto.CreateProjectRequest{
			Name:     "Resilient",
			Boundary: squareBoundaryDTO(),
		})

		assert.NoError(t, err)
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	existing := func() *domain.Project {
		return &domain.Project{
			ID:   projectID,
			Name: "Old name",
			Boundary: domain.Boundary{
				{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
			},
			RotationOffset: 0,
			Granularity:    32,
		}
	}

	t.Run("geometry change invalidates cache and queues recompute", func(t *testing.T) {
		uc, projectRepo, _, cacheRepo, streamRepo := newProjectUseCase(t)

		projectRepo.On("GetByID", ctx, projectID).Return(existing(), nil)
		projectRepo.On("Update", ctx, mock.Anything).Return(nil)
		cacheRepo.On("InvalidateProject", ctx, projectID).Return(nil)
		streamRepo.On("PublishToStream", ctx, domain.StreamAnalysisRequested,
			mock.MatchedBy(func(e domain.AnalysisRequestedEvent) bool {
				return e.ProjectID == projectID && e.Reason == domain.ReasonBoundaryChanged
			})).Return(nil)

		project, err := uc.Update(ctx, projectID, dto.UpdateProjectRequest{
			Name:           "New name",
			Boundary:       squareBoundaryDTO(),
			RotationOffset: 15, // поворот изменился
		})

		require.NoError(t, err)
		assert.Equal(t, "New name", project.Name)
		assert.Equal(t, 15.0, project.RotationOffset)

		cacheRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("rename only keeps cache warm", func(t *testing.T) {
		uc, projectRepo, _, cacheRepo, streamRepo := newProjectUseCase(t)

		projectRepo.On("GetByID", ctx, projectID).Return(existing(), nil)
		projectRepo.On("Update", ctx, mock.Anything).Return(nil)

		_, err := uc.Update(ctx, projectID, dto.UpdateProjectRequest{
			Name:           "Renamed",
			Boundary:       squareBoundaryDTO(),
			RotationOffset: 0,
		})

		require.NoError(t, err)
		cacheRepo.AssertNotCalled(t, "InvalidateProject")
		streamRepo.AssertNotCalled(t, "PublishToStream")
	})

	t.Run("missing project", func(t *testing.T) {
		uc, projectRepo, _, _, _ := newProjectUseCase(t)

		projectRepo.On("GetByID", ctx, projectID).Return(nil, errors.ErrProjectNotFound)

		_, err := uc.Update(ctx, projectID, dto.UpdateProjectRequest{
			Name:     "Any",
			Boundary: squareBoundaryDTO(),
		})

		assert.ErrorIs(t, err, errors.ErrProjectNotFound)
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	t.Run("removes reports, project and cache", func(t *testing.T) {
		uc, projectRepo, reportRepo, cacheRepo, _ := newProjectUseCase(t)

		reportRepo.On("DeleteByProject", ctx, projectID).Return(nil)
		projectRepo.On("Delete", ctx, projectID).Return(nil)
		cacheRepo.On("InvalidateProject", ctx, projectID).Return(nil)

		err := uc.Delete(ctx, projectID)

		require.NoError(t, err)
		projectRepo.AssertExpectations(t)
		reportRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("missing project propagates", func(t *testing.T) {
		uc, projectRepo, reportRepo, _, _ := newProjectUseCase(t)

		reportRepo.On("DeleteByProject", ctx, projectID).Return(nil)
		projectRepo.On("Delete", ctx, projectID).Return(errors.ErrProjectNotFound)

		err := uc.Delete(ctx, projectID)
		assert.ErrorIs(t, err, errors.ErrProjectNotFound)
	})
}

func TestProjectUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc, projectRepo, _, _, _ := newProjectUseCase(t)

	projects := []*domain.Project{{ID: uuid.New()}, {ID: uuid.New()}}
	projectRepo.On("List", ctx, 20, 0).Return(projects, nil)

	// Нулевой лимит заменяется дефолтной страницей
	got, err := uc.List(ctx, dto.ListProjectsRequest{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	projectRepo.AssertExpectations(t)
}

func TestProjectUseCase_AttachImage_UnsupportedExtension(t *testing.T) {
	ctx := context.Background()
	uc, projectRepo, _, _, _ := newProjectUseCase(t)

	_, err := uc.AttachImage(ctx, uuid.New(), "plan.pdf", nil)

	assert.ErrorIs(t, err, errors.ErrInvalidImage)
	projectRepo.AssertNotCalled(t, "GetByID")
}
