package domain

import (
	"time"

	"github.com/google/uuid"
)

// Severity - дискретная классификация, выводимая из непрерывной
// оценки через пороговую таблицу модуля.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityMinimal  Severity = "minimal"
)

// DirectionAssessment - результат оценки одного главного направления.
// Вычисляется заново при каждом запуске анализа, ядром не сохраняется.
type DirectionAssessment struct {
	Direction       DirectionCode      `json:"direction"`
	CoveragePercent float64            `json:"coverage_percent"`
	Score           float64            `json:"score"`
	SubScores       map[string]float64 `json:"sub_scores,omitempty"`
	Severity        Severity           `json:"severity"`
	Recommendations []string           `json:"recommendations,omitempty"`
}

// AnalysisReport - полный результат запуска одного аналитического
// модуля для проекта: оценки по 8 направлениям, покрытие мелких
// секторов и общая оценка (среднее арифметическое по направлениям).
type AnalysisReport struct {
	ProjectID       uuid.UUID             `json:"project_id"`
	ModuleID        string                `json:"module_id"`
	ModuleTitle     string                `json:"module_title"`
	Granularity     int                   `json:"granularity"`
	RotationOffset  float64               `json:"rotation_offset"`
	Directions      []DirectionAssessment `json:"directions"`
	Coverage        []CoverageResult      `json:"coverage"`
	OverallScore    float64               `json:"overall_score"`
	OverallSeverity Severity              `json:"overall_severity"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

// Assessment возвращает оценку направления из отчета, nil если нет.
func (r *AnalysisReport) Assessment(d DirectionCode) *DirectionAssessment {
	for i := range r.Directions {
		if r.Directions[i].Direction == d {
			return &r.Directions[i]
		}
	}
	return nil
}
