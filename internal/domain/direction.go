package domain

// DirectionCode - код одного из 8 главных направлений.
type DirectionCode string

const (
	DirectionN  DirectionCode = "N"
	DirectionNE DirectionCode = "NE"
	DirectionE  DirectionCode = "E"
	DirectionSE DirectionCode = "SE"
	DirectionS  DirectionCode = "S"
	DirectionSW DirectionCode = "SW"
	DirectionW  DirectionCode = "W"
	DirectionNW DirectionCode = "NW"
)

// MainDirections - канонический порядок главных направлений,
// по часовой стрелке начиная с севера. Порядок значим: агрегация
// и отчеты всегда идут в этом порядке.
var MainDirections = []DirectionCode{
	DirectionN, DirectionNE, DirectionE, DirectionSE,
	DirectionS, DirectionSW, DirectionW, DirectionNW,
}

// IsValid проверяет, что код является одним из 8 главных направлений.
func (d DirectionCode) IsValid() bool {
	switch d {
	case DirectionN, DirectionNE, DirectionE, DirectionSE,
		DirectionS, DirectionSW, DirectionW, DirectionNW:
		return true
	}
	return false
}

// directionNames - человекочитаемые названия главных направлений.
var directionNames = map[DirectionCode]string{
	DirectionN:  "North",
	DirectionNE: "Northeast",
	DirectionE:  "East",
	DirectionSE: "Southeast",
	DirectionS:  "South",
	DirectionSW: "Southwest",
	DirectionW:  "West",
	DirectionNW: "Northwest",
}

// Name возвращает полное название направления.
func (d DirectionCode) Name() string {
	return directionNames[d]
}

// Группы секторов: стороны света и промежуточные направления
// рассматриваются некоторыми правилами по-разному.
const (
	GroupCardinal = "cardinal"
	GroupOrdinal  = "ordinal"
)

// Group возвращает группу направления (cardinal/ordinal).
func (d DirectionCode) Group() string {
	switch d {
	case DirectionN, DirectionE, DirectionS, DirectionW:
		return GroupCardinal
	}
	return GroupOrdinal
}
