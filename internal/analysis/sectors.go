package analysis

import (
	"math"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/pkg/errors"
	"github.com/vastu-microservice/internal/pkg/utils"
)

// Поддерживаемые гранулярности разбиения круга.
const (
	Granularity8  = 8
	Granularity16 = 16
	Granularity32 = 32
)

// labels16 - коды 16-румбовой розы в порядке по часовой стрелке от севера.
var labels16 = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// labels32 - коды 32-румбовой розы. Каноническое разбиение: 11.25° на
// сектор, каждое главное направление владеет непрерывной серией из 4
// секторов.
var labels32 = []string{
	"N", "NbE", "NNE", "NEbN", "NE", "NEbE", "ENE", "EbN",
	"E", "EbS", "ESE", "SEbE", "SE", "SEbS", "SSE", "SbE",
	"S", "SbW", "SSW", "SWbS", "SW", "SWbW", "WSW", "WbS",
	"W", "WbN", "WNW", "NWbW", "NW", "NWbN", "NNW", "NbW",
}

// names16 - названия 16 румбов.
var names16 = []string{
	"North", "North-northeast", "Northeast", "East-northeast",
	"East", "East-southeast", "Southeast", "South-southeast",
	"South", "South-southwest", "Southwest", "West-southwest",
	"West", "West-northwest", "Northwest", "North-northwest",
}

// mainDirectionFor возвращает главное направление сектора i для данной
// гранулярности. Сектор 0 начинается строго на севере, поэтому север
// владеет секторами по обе стороны от 0° (серия с переносом через 0).
func mainDirectionFor(count, i int) domain.DirectionCode {
	switch count {
	case Granularity8:
		return domain.MainDirections[i]
	case Granularity16:
		return domain.MainDirections[((i+1)%16)/2]
	default:
		return domain.MainDirections[((i+2)%32)/4]
	}
}

func sectorCode(count, i int) string {
	switch count {
	case Granularity8:
		return string(domain.MainDirections[i])
	case Granularity16:
		return labels16[i]
	default:
		return labels32[i]
	}
}

func sectorLabel(count, i int) string {
	switch count {
	case Granularity8:
		return domain.MainDirections[i].Name()
	case Granularity16:
		return names16[i]
	default:
		// Для 32 румбов полное название не табулируется, код достаточен
		return labels32[i]
	}
}

// BuildSectors строит count равных секторов, выровненных на поворот
// плана: startAngle[i] = i*(360/count) + rotationOffset (mod 360).
// Спаны секторов точно замощают [0, 360) без зазоров и перекрытий.
func BuildSectors(count int, rotationOffset float64) ([]domain.Sector, error) {
	if !utils.ValidateGranularity(count) {
		return nil, errors.ErrInvalidGranularity
	}
	if math.IsNaN(rotationOffset) || math.IsInf(rotationOffset, 0) {
		return nil, errors.ErrInvalidRotation
	}

	span := 360.0 / float64(count)
	sectors := make([]domain.Sector, count)
	for i := 0; i < count; i++ {
		start := utils.NormalizeAngle(float64(i)*span + rotationOffset)
		main := mainDirectionFor(count, i)
		sectors[i] = domain.Sector{
			Index:         i,
			StartAngle:    start,
			EndAngle:      utils.NormalizeAngle(start + span),
			CenterAngle:   utils.NormalizeAngle(start + span/2),
			Label:         sectorLabel(count, i),
			Code:          sectorCode(count, i),
			MainDirection: main,
			Group:         main.Group(),
		}
	}
	return sectors, nil
}

// FindSectorForAngle возвращает сектор, чей [startAngle, endAngle)
// содержит угол, с учетом перехода через 360°/0°. Линейный поиск:
// секторов максимум 32.
func FindSectorForAngle(angle float64, sectors []domain.Sector) (*domain.Sector, error) {
	if len(sectors) == 0 {
		return nil, errors.ErrInvalidGranularity
	}
	norm := utils.NormalizeAngle(angle)
	for i := range sectors {
		if sectors[i].Contains(norm) {
			return &sectors[i], nil
		}
	}
	// Недостижимо для корректного разбиения, но не паникуем
	return nil, errors.ErrInternalServer
}

// SectorsForDirection возвращает индексы секторов, принадлежащих
// главному направлению, в порядке следования.
func SectorsForDirection(sectors []domain.Sector, d domain.DirectionCode) []int {
	var idx []int
	for i := range sectors {
		if sectors[i].MainDirection == d {
			idx = append(idx, i)
		}
	}
	return idx
}
