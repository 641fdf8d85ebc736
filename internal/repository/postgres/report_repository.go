package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/domain/repository"
	"github.com/vastu-microservice/internal/pkg/errors"
)

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewReportRepository создает новый экземпляр ReportRepository
func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Save сохраняет отчет; отчет того же модуля для проекта перезаписывается
func (r *reportRepository) Save(ctx context.Context, report *domain.AnalysisReport) error {
	directions, err := json.Marshal(report.Directions)
	if err != nil {
		return errors.ErrInternalServer
	}
	coverage, err := json.Marshal(report.Coverage)
	if err != nil {
		return errors.ErrInternalServer
	}

	query := `
		INSERT INTO analysis_reports (
			project_id, module_id, module_title, granularity, rotation_offset,
			directions, coverage, recommendations,
			overall_score, overall_severity, generated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (project_id, module_id) DO UPDATE SET
			module_title = EXCLUDED.module_title,
			granularity = EXCLUDED.granularity,
			rotation_offset = EXCLUDED.rotation_offset,
			directions = EXCLUDED.directions,
			coverage = EXCLUDED.coverage,
			recommendations = EXCLUDED.recommendations,
			overall_score = EXCLUDED.overall_score,
			overall_severity = EXCLUDED.overall_severity,
			generated_at = EXCLUDED.generated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		report.ProjectID, report.ModuleID, report.ModuleTitle,
		report.Granularity, report.RotationOffset,
		directions, coverage, pq.Array(collectRecommendations(report)),
		report.OverallScore, report.OverallSeverity, report.GeneratedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save analysis report",
			zap.String("project_id", report.ProjectID.String()),
			zap.String("module", report.ModuleID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// Get возвращает последний отчет модуля для проекта
func (r *reportRepository) Get(ctx context.Context, projectID uuid.UUID, moduleID string) (*domain.AnalysisReport, error) {
	query := `
		SELECT project_id, module_id, module_title, granularity, rotation_offset,
		       directions, coverage, overall_score, overall_severity, generated_at
		FROM analysis_reports
		WHERE project_id = $1 AND module_id = $2
	`

	report, err := r.scanReport(r.db.QueryRowContext(ctx, query, projectID, moduleID))
	if err == sql.ErrNoRows {
		return nil, errors.ErrReportNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get analysis report",
			zap.String("project_id", projectID.String()),
			zap.String("module", moduleID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return report, nil
}

// ListByProject возвращает все отчеты проекта
func (r *reportRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.AnalysisReport, error) {
	query := `
		SELECT project_id, module_id, module_title, granularity, rotation_offset,
		       directions, coverage, overall_score, overall_severity, generated_at
		FROM analysis_reports
		WHERE project_id = $1
		ORDER BY module_id
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		r.logger.Error("Failed to list analysis reports",
			zap.String("project_id", projectID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var reports []*domain.AnalysisReport
	for rows.Next() {
		report, err := r.scanReport(rows)
		if err != nil {
			r.logger.Error("Failed to scan report row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return reports, nil
}

// DeleteByProject удаляет отчеты проекта
func (r *reportRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM analysis_reports WHERE project_id = $1`, projectID)
	if err != nil {
		r.logger.Error("Failed to delete analysis reports",
			zap.String("project_id", projectID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *reportRepository) scanReport(row rowScanner) (*domain.AnalysisReport, error) {
	var report domain.AnalysisReport
	var directions, coverage []byte

	err := row.Scan(
		&report.ProjectID, &report.ModuleID, &report.ModuleTitle,
		&report.Granularity, &report.RotationOffset,
		&directions, &coverage,
		&report.OverallScore, &report.OverallSeverity, &report.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(directions, &report.Directions); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(coverage, &report.Coverage); err != nil {
		return nil, err
	}
	return &report, nil
}

// collectRecommendations собирает рекомендации всех направлений в
// плоский список для колонки text[] - удобно для выборок без разбора jsonb.
func collectRecommendations(report *domain.AnalysisReport) []string {
	var out []string
	for _, d := range report.Directions {
		out = append(out, d.Recommendations...)
	}
	if out == nil {
		out = []string{}
	}
	return out
}
