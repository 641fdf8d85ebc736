package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/domain/repository"
	"github.com/vastu-microservice/internal/pkg/errors"
)

type projectRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewProjectRepository создает новый экземпляр ProjectRepository
func NewProjectRepository(db *DB) repository.ProjectRepository {
	return &projectRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create сохраняет новый проект
func (r *projectRepository) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (
			id, name, boundary, rotation_offset, granularity,
			image_file, image_width, image_height, thumbnail_file,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Boundary, p.RotationOffset, p.Granularity,
		p.ImageFile, p.ImageWidth, p.ImageHeight, p.ThumbnailFile,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create project", zap.String("id", p.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// GetByID возвращает проект по идентификатору
func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `
		SELECT id, name, boundary, rotation_offset, granularity,
		       COALESCE(image_file, ''), COALESCE(image_width, 0),
		       COALESCE(image_height, 0), COALESCE(thumbnail_file, ''),
		       created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var p domain.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Boundary, &p.RotationOffset, &p.Granularity,
		&p.ImageFile, &p.ImageWidth, &p.ImageHeight, &p.ThumbnailFile,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrProjectNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get project by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &p, nil
}

// List возвращает проекты, новые первыми
func (r *projectRepository) List(ctx context.Context, limit, offset int) ([]*domain.Project, error) {
	query := `
		SELECT id, name, boundary, rotation_offset, granularity,
		       COALESCE(image_file, ''), COALESCE(image_width, 0),
		       COALESCE(image_height, 0), COALESCE(thumbnail_file, ''),
		       created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list projects", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Boundary, &p.RotationOffset, &p.Granularity,
			&p.ImageFile, &p.ImageWidth, &p.ImageHeight, &p.ThumbnailFile,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			r.logger.Error("Failed to scan project row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return projects, nil
}

// Update обновляет контур, поворот и метаданные проекта
func (r *projectRepository) Update(ctx context.Context, p *domain.Project) error {
	query := `
		UPDATE projects
		SET name = $2, boundary = $3, rotation_offset = $4, granularity = $5,
		    image_file = $6, image_width = $7, image_height = $8,
		    thumbnail_file = $9, updated_at = $10
		WHERE id = $1
	`

	p.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Boundary, p.RotationOffset, p.Granularity,
		p.ImageFile, p.ImageWidth, p.ImageHeight, p.ThumbnailFile,
		p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to update project", zap.String("id", p.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrProjectNotFound
	}
	return nil
}

// Delete удаляет проект; отчеты удаляются каскадно по внешнему ключу
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete project", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrProjectNotFound
	}
	return nil
}
