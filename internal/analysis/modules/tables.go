package modules

import "github.com/vastu-microservice/internal/domain"

// Покровители и стихии главных направлений - общий доменный словарь,
// из которого модули собирают свои таблицы атрибутов. Контент
// статический, загружается один раз на процесс и никогда не мутируется.
var guardians = map[domain.DirectionCode]string{
	domain.DirectionN:  "Kubera",
	domain.DirectionNE: "Ishana",
	domain.DirectionE:  "Indra",
	domain.DirectionSE: "Agni",
	domain.DirectionS:  "Yama",
	domain.DirectionSW: "Nairritya",
	domain.DirectionW:  "Varuna",
	domain.DirectionNW: "Vayu",
}

var elements = map[domain.DirectionCode]string{
	domain.DirectionN:  "water",
	domain.DirectionNE: "water",
	domain.DirectionE:  "air",
	domain.DirectionSE: "fire",
	domain.DirectionS:  "earth",
	domain.DirectionSW: "earth",
	domain.DirectionW:  "water",
	domain.DirectionNW: "air",
}

// spec описывает числовые и текстовые поля записи одного направления
// в таблице конкретного модуля.
type recordSpec struct {
	IdealPercent     float64
	StrengthPriority float64
	Qualities        []string
	Guidance         string
}

// buildTable собирает полную таблицу атрибутов из спецификаций модуля.
// Имя и стихия берутся из общего словаря.
func buildTable(specs map[domain.DirectionCode]recordSpec) domain.AttributeTable {
	table := make(domain.AttributeTable, len(domain.MainDirections))
	for _, d := range domain.MainDirections {
		s := specs[d]
		table[d] = domain.AttributeRecord{
			Direction:        d,
			Name:             guardians[d],
			Element:          elements[d],
			IdealPercent:     s.IdealPercent,
			StrengthPriority: s.StrengthPriority,
			Qualities:        s.Qualities,
			Guidance:         s.Guidance,
		}
	}
	return table
}
