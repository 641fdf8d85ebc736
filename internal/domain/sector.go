package domain

// Sector - один угловой сектор круговой модели направлений.
// Углы в градусах, по часовой стрелке от севера (0°), уже с учетом
// поворота плана, нормализованы в [0, 360).
type Sector struct {
	Index         int           `json:"index"`
	StartAngle    float64       `json:"start_angle"`
	EndAngle      float64       `json:"end_angle"`
	CenterAngle   float64       `json:"center_angle"`
	Label         string        `json:"label"`
	Code          string        `json:"code"`
	MainDirection DirectionCode `json:"main_direction"`
	Group         string        `json:"group"`
}

// Span возвращает угловую ширину сектора в градусах.
func (s Sector) Span() float64 {
	span := s.EndAngle - s.StartAngle
	if span <= 0 {
		span += 360
	}
	return span
}

// Contains проверяет попадание нормализованного угла в [StartAngle, EndAngle)
// с учетом перехода через 0°.
func (s Sector) Contains(angle float64) bool {
	if s.StartAngle <= s.EndAngle {
		return angle >= s.StartAngle && angle < s.EndAngle
	}
	// Сектор пересекает 0°
	return angle >= s.StartAngle || angle < s.EndAngle
}

// CoverageResult - оценка покрытия сектора контуром здания.
type CoverageResult struct {
	SectorIndex      int           `json:"sector_index"`
	Direction        DirectionCode `json:"direction"`
	CoveragePercent  float64       `json:"coverage_percent"`
	AreaContribution float64       `json:"area_contribution"`
}

// DirectionCoverage - покрытие, агрегированное по главному направлению
// (среднее по входящим в него мелким секторам).
type DirectionCoverage struct {
	Direction       DirectionCode `json:"direction"`
	CoveragePercent float64       `json:"coverage_percent"`
	TotalArea       float64       `json:"total_area"`
	SectorCount     int           `json:"sector_count"`
}

// SectorView - сектор с данными для отрисовки: покрытие и цвет,
// вычисленный по шкале severity. Потребляется слоем рендеринга.
type SectorView struct {
	Sector
	CoveragePercent float64 `json:"coverage_percent"`
	Color           string  `json:"color"`
}
