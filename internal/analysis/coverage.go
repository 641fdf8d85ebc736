package analysis

import (
	"math"
	"math/rand"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/pkg/geometry"
)

// Параметры сэмплирования по умолчанию. 20 точек на сектор хватает
// для грубого предпросмотра; сервис считает с 256 точками, что при
// фиксированном seed держит ошибку покрытия в пределах нескольких
// процентных пунктов.
const (
	PreviewSamplesPerSector = 20
	DefaultSamplesPerSector = 256

	DefaultInnerRadiusFrac = 0.2
	DefaultOuterRadiusFrac = 1.0
)

// CoverageOptions - параметры оценки покрытия секторов.
type CoverageOptions struct {
	// Samples - число случайных точек на сектор.
	Samples int
	// InnerRadiusFrac/OuterRadiusFrac - радиальная полоса сэмплирования
	// в долях внешнего радиуса.
	InnerRadiusFrac float64
	OuterRadiusFrac float64
	// Seed делает оценку воспроизводимой: одинаковые входы и seed
	// дают одинаковое покрытие.
	Seed int64
}

// DefaultCoverageOptions возвращает параметры по умолчанию.
func DefaultCoverageOptions() CoverageOptions {
	return CoverageOptions{
		Samples:         DefaultSamplesPerSector,
		InnerRadiusFrac: DefaultInnerRadiusFrac,
		OuterRadiusFrac: DefaultOuterRadiusFrac,
		Seed:            1,
	}
}

func (o CoverageOptions) normalized() CoverageOptions {
	if o.Samples <= 0 {
		o.Samples = DefaultSamplesPerSector
	}
	if o.OuterRadiusFrac <= 0 || o.OuterRadiusFrac > 1 {
		o.OuterRadiusFrac = DefaultOuterRadiusFrac
	}
	if o.InnerRadiusFrac < 0 || o.InnerRadiusFrac >= o.OuterRadiusFrac {
		o.InnerRadiusFrac = DefaultInnerRadiusFrac
	}
	return o
}

// EstimateCoverage оценивает покрытие каждого сектора контуром здания
// методом Монте-Карло: точки равномерны по углу в спане сектора и по
// радиусу в полосе [inner·R, outer·R], переводятся в декартовы
// координаты (0° = север = -Y) и проверяются ray-casting тестом.
// Покрытие = inside/total × 100. Оценка стохастическая по построению;
// при одинаковом seed - детерминированная.
//
// AreaContribution = coverage/100 × (span/360)·π·R² - площадь кругового
// сектора без вычета внутренней полосы. Вычет намеренно не делается,
// вклад площади согласован с тем, как его потребляют оценочные правила.
func EstimateCoverage(boundary domain.Boundary, sectors []domain.Sector, opts CoverageOptions) ([]domain.CoverageResult, error) {
	if err := geometry.ValidateBoundary(boundary); err != nil {
		return nil, err
	}

	box, err := geometry.BoundingBox(boundary)
	if err != nil {
		return nil, err
	}
	radius := box.Radius()

	opts = opts.normalized()
	rng := rand.New(rand.NewSource(opts.Seed))

	results := make([]domain.CoverageResult, 0, len(sectors))
	for _, sector := range sectors {
		inside := 0
		span := sector.Span()
		for s := 0; s < opts.Samples; s++ {
			theta := sector.StartAngle + rng.Float64()*span
			frac := opts.InnerRadiusFrac + rng.Float64()*(opts.OuterRadiusFrac-opts.InnerRadiusFrac)
			r := frac * radius

			rad := theta * math.Pi / 180
			p := domain.Point{
				X: box.CenterX + r*math.Sin(rad),
				Y: box.CenterY - r*math.Cos(rad),
			}
			if geometry.PointInPolygon(p, boundary) {
				inside++
			}
		}

		coverage := float64(inside) / float64(opts.Samples) * 100
		sectorArea := span / 360 * math.Pi * radius * radius
		results = append(results, domain.CoverageResult{
			SectorIndex:      sector.Index,
			Direction:        sector.MainDirection,
			CoveragePercent:  coverage,
			AreaContribution: coverage / 100 * sectorArea,
		})
	}
	return results, nil
}

// AggregateByDirection сводит покрытие мелких секторов к 8 главным
// направлениям: процент покрытия усредняется, площадь суммируется.
// Результат в каноническом порядке направлений.
func AggregateByDirection(results []domain.CoverageResult) []domain.DirectionCoverage {
	byDir := make(map[domain.DirectionCode]*domain.DirectionCoverage, len(domain.MainDirections))
	for _, res := range results {
		agg, ok := byDir[res.Direction]
		if !ok {
			agg = &domain.DirectionCoverage{Direction: res.Direction}
			byDir[res.Direction] = agg
		}
		agg.CoveragePercent += res.CoveragePercent
		agg.TotalArea += res.AreaContribution
		agg.SectorCount++
	}

	out := make([]domain.DirectionCoverage, 0, len(domain.MainDirections))
	for _, d := range domain.MainDirections {
		agg, ok := byDir[d]
		if !ok {
			// Направление без секторов: невозможно при фиксированном
			// разбиении, но агрегат не должен на этом падать
			out = append(out, domain.DirectionCoverage{Direction: d})
			continue
		}
		agg.CoveragePercent /= float64(agg.SectorCount)
		out = append(out, *agg)
	}
	return out
}
