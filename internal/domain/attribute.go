package domain

// AttributeRecord - неизменяемая запись атрибутов одного главного
// направления. Таблицы из 8 таких записей поставляются каждым
// аналитическим модулем; ядро их никогда не мутирует. Текстовые поля -
// непрозрачный доменный контент, логика оценки от него не зависит.
type AttributeRecord struct {
	Direction        DirectionCode `json:"direction"`
	Name             string        `json:"name"`
	Element          string        `json:"element"`
	IdealPercent     float64       `json:"ideal_percent"`
	StrengthPriority float64       `json:"strength_priority"`
	Qualities        []string      `json:"qualities,omitempty"`
	Guidance         string        `json:"guidance,omitempty"`
}

// AttributeTable - таблица атрибутов, ключ - код главного направления.
// Таблица обязана покрывать все 8 направлений (см. Complete).
type AttributeTable map[DirectionCode]AttributeRecord

// Complete проверяет, что таблица содержит запись для каждого из
// 8 главных направлений. Отсутствующая запись - ошибка программиста,
// модуль с неполной таблицей не должен регистрироваться.
func (t AttributeTable) Complete() bool {
	for _, d := range MainDirections {
		if _, ok := t[d]; !ok {
			return false
		}
	}
	return true
}

// SituationalInput - ситуационные флаги одного направления,
// передаваемые вызывающим кодом: тяжелая конструкция, перекрытие,
// заявленное использование помещения.
type SituationalInput struct {
	HeavyStructure bool   `json:"heavy_structure"`
	Blocked        bool   `json:"blocked"`
	Usage          string `json:"usage,omitempty"`
}

// SituationalFlags - флаги по направлениям. Отсутствие записи
// означает отсутствие каких-либо флагов для направления.
type SituationalFlags map[DirectionCode]SituationalInput
