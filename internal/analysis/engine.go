package analysis

import (
	"fmt"
	"strings"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/pkg/errors"
	"github.com/vastu-microservice/internal/pkg/utils"
)

// NeutralScore - нейтральная оценка: стартовая база под-оценок и
// значение для направления без данных.
const NeutralScore = 50.0

// Имена под-оценок. Не все модули считают все четыре: веса в RuleSet
// определяют, что входит в итоговую оценку направления.
const (
	SubScoreCoverage    = "coverage"
	SubScoreStructure   = "structure"
	SubScoreObstruction = "obstruction"
	SubScoreUsage       = "usage"
)

// Threshold - одна строка пороговой таблицы: минимальная оценка и
// соответствующая ей классификация.
type Threshold struct {
	Min    float64
	Bucket domain.Severity
}

// ThresholdTable - пороговая таблица модуля, по убыванию Min.
// Модули различаются точными срезами, поэтому таблица - данные
// конкретного модуля, а не общая константа.
type ThresholdTable []Threshold

// DefaultThresholds - квартильная форма, общая для большинства модулей.
var DefaultThresholds = ThresholdTable{
	{Min: 80, Bucket: domain.SeverityCritical},
	{Min: 60, Bucket: domain.SeverityHigh},
	{Min: 40, Bucket: domain.SeverityMedium},
	{Min: 20, Bucket: domain.SeverityLow},
}

// Classify возвращает классификацию для оценки. Срез включающий:
// ровно 80 попадает в бакет с Min 80.
func (t ThresholdTable) Classify(score float64) domain.Severity {
	for _, row := range t {
		if score >= row.Min {
			return row.Bucket
		}
	}
	return domain.SeverityMinimal
}

// DirectionSet - множество направлений-исключений. Правила вида
// "тяжесть полезна в {S, SW}" кодируются данными, а не ветвлениями:
// новый вариант правила не требует изменения кода.
type DirectionSet map[domain.DirectionCode]struct{}

// NewDirectionSet строит множество из перечисленных кодов.
func NewDirectionSet(codes ...domain.DirectionCode) DirectionSet {
	s := make(DirectionSet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// Contains проверяет принадлежность направления множеству.
func (s DirectionSet) Contains(d domain.DirectionCode) bool {
	_, ok := s[d]
	return ok
}

// UsageKeywords - списки ключевых слов использования для направления.
type UsageKeywords struct {
	Ideal      []string
	Prohibited []string
}

// RecommendationTemplates - шаблоны текстов рекомендаций по условиям.
// Это форматирование отчета, не бизнес-логика: набор подменяется или
// локализуется независимо от числовых правил. Каждый шаблон получает
// название направления и текст guidance из таблицы атрибутов.
type RecommendationTemplates struct {
	MissingHeaviness string
	ExcessHeaviness  string
	Blockage         string
	ProhibitedUsage  string
	CoverageGap      string
}

// DefaultRecommendations - базовый набор шаблонов на английском.
var DefaultRecommendations = RecommendationTemplates{
	MissingHeaviness: "%s lacks required structural weight: %s",
	ExcessHeaviness:  "%s carries heavy structure that weakens the zone: %s",
	Blockage:         "%s is obstructed: %s",
	ProhibitedUsage:  "%s hosts an unsuitable activity (%s): %s",
	CoverageGap:      "%s deviates from its ideal footprint share: %s",
}

// RuleSet - параметризация оценочного движка одним модулем:
// множества направлений, веса, ключевые слова, пороги и шаблоны.
type RuleSet struct {
	// HeavinessBeneficial/HeavinessHarmful - где тяжелая конструкция
	// полезна, а где вредна; направления вне обоих множеств нейтральны.
	HeavinessBeneficial DirectionSet
	HeavinessHarmful    DirectionSet
	HeavinessBonus      float64
	HeavinessPenalty    float64

	// BlockageExempt - направления, где перекрытие допустимо.
	BlockageExempt  DirectionSet
	BlockagePenalty float64

	// UsageKeywords - идеальные/запрещенные активности по направлениям.
	UsageKeywords map[domain.DirectionCode]UsageKeywords
	UsageBonus    float64
	UsagePenalty  float64

	// SubScoreWeights - веса под-оценок в итоговой оценке направления.
	// Отсутствующая под-оценка не участвует. Пустая карта означает
	// равные веса для всех четырех под-оценок.
	SubScoreWeights map[string]float64

	Thresholds      ThresholdTable
	Recommendations RecommendationTemplates
}

func (r RuleSet) withDefaults() RuleSet {
	if len(r.Thresholds) == 0 {
		r.Thresholds = DefaultThresholds
	}
	if r.Recommendations == (RecommendationTemplates{}) {
		r.Recommendations = DefaultRecommendations
	}
	if len(r.SubScoreWeights) == 0 {
		r.SubScoreWeights = map[string]float64{
			SubScoreCoverage:    1,
			SubScoreStructure:   1,
			SubScoreObstruction: 1,
			SubScoreUsage:       1,
		}
	}
	return r
}

// Engine - оценочный движок одного аналитического модуля: таблица
// атрибутов плюс набор правил. Движок без состояния, Evaluate - чистая
// функция от входов.
type Engine struct {
	moduleID string
	title    string
	table    domain.AttributeTable
	rules    RuleSet
}

// NewEngine создает движок. Неполная таблица атрибутов - ошибка
// программиста, отказ сразу, без тихих значений по умолчанию.
func NewEngine(moduleID, title string, table domain.AttributeTable, rules RuleSet) (*Engine, error) {
	if !table.Complete() {
		return nil, errors.ErrMissingAttribute
	}
	return &Engine{
		moduleID: moduleID,
		title:    title,
		table:    table,
		rules:    rules.withDefaults(),
	}, nil
}

// ModuleID возвращает идентификатор модуля.
func (e *Engine) ModuleID() string { return e.moduleID }

// Title возвращает название модуля.
func (e *Engine) Title() string { return e.title }

// Attributes возвращает таблицу атрибутов модуля.
func (e *Engine) Attributes() domain.AttributeTable { return e.table }

// Evaluate оценивает 8 главных направлений по агрегированному покрытию
// и ситуационным флагам. Возвращает оценки в каноническом порядке,
// общую оценку (среднее арифметическое, равные веса) и ее классификацию.
func (e *Engine) Evaluate(coverage []domain.DirectionCoverage, flags domain.SituationalFlags) ([]domain.DirectionAssessment, float64, domain.Severity) {
	covByDir := make(map[domain.DirectionCode]domain.DirectionCoverage, len(coverage))
	for _, c := range coverage {
		covByDir[c.Direction] = c
	}

	assessments := make([]domain.DirectionAssessment, 0, len(domain.MainDirections))
	var total float64
	for _, d := range domain.MainDirections {
		a := e.evaluateDirection(d, covByDir[d], flags[d])
		total += a.Score
		assessments = append(assessments, a)
	}

	overall := total / float64(len(domain.MainDirections))
	return assessments, overall, e.rules.Thresholds.Classify(overall)
}

func (e *Engine) evaluateDirection(d domain.DirectionCode, cov domain.DirectionCoverage, input domain.SituationalInput) domain.DirectionAssessment {
	record := e.table[d]
	rules := e.rules

	if cov.SectorCount == 0 {
		// Направление без секторов: нейтральная оценка, без рекомендаций
		return domain.DirectionAssessment{
			Direction: d,
			Score:     NeutralScore,
			Severity:  rules.Thresholds.Classify(NeutralScore),
		}
	}

	subScores := make(map[string]float64, 4)
	var recs []string

	// Покрытие: близость фактической доли к идеальной
	covScore := utils.Clamp(100-absDiff(cov.CoveragePercent, record.IdealPercent), 0, 100)
	subScores[SubScoreCoverage] = covScore
	if covScore < 40 {
		recs = appendRec(recs, rules.Recommendations.CoverageGap, d, record)
	}

	// Тяжесть: асимметричное табличное правило
	structure := NeutralScore
	switch {
	case input.HeavyStructure && rules.HeavinessBeneficial.Contains(d):
		structure += rules.HeavinessBonus * record.StrengthPriority
	case input.HeavyStructure && rules.HeavinessHarmful.Contains(d):
		structure -= rules.HeavinessPenalty * record.StrengthPriority
		recs = appendRec(recs, rules.Recommendations.ExcessHeaviness, d, record)
	case !input.HeavyStructure && rules.HeavinessBeneficial.Contains(d):
		structure -= rules.HeavinessPenalty * record.StrengthPriority / 2
		recs = appendRec(recs, rules.Recommendations.MissingHeaviness, d, record)
	}
	subScores[SubScoreStructure] = utils.Clamp(structure, 0, 100)

	// Перекрытие: всегда вредно, кроме явных исключений
	obstruction := 100.0
	if input.Blocked {
		if rules.BlockageExempt.Contains(d) {
			obstruction = 70
		} else {
			obstruction = utils.Clamp(100-rules.BlockagePenalty, 0, 100)
			recs = appendRec(recs, rules.Recommendations.Blockage, d, record)
		}
	}
	subScores[SubScoreObstruction] = obstruction

	// Использование: сопоставление с ключевыми словами направления
	usage := NeutralScore
	if input.Usage != "" {
		kw := rules.UsageKeywords[d]
		switch {
		case matchKeyword(input.Usage, kw.Prohibited):
			usage = utils.Clamp(NeutralScore-rules.UsagePenalty, 0, 100)
			recs = appendUsageRec(recs, rules.Recommendations.ProhibitedUsage, d, input.Usage, record)
		case matchKeyword(input.Usage, kw.Ideal):
			usage = utils.Clamp(NeutralScore+rules.UsageBonus, 0, 100)
		}
	}
	subScores[SubScoreUsage] = usage

	score := weightedMean(subScores, rules.SubScoreWeights)
	return domain.DirectionAssessment{
		Direction:       d,
		CoveragePercent: cov.CoveragePercent,
		Score:           score,
		SubScores:       subScores,
		Severity:        rules.Thresholds.Classify(score),
		Recommendations: recs,
	}
}

// weightedMean считает взвешенное среднее под-оценок; под-оценка с
// нулевым весом не участвует.
func weightedMean(scores, weights map[string]float64) float64 {
	var sum, weightSum float64
	for name, score := range scores {
		w := weights[name]
		if w <= 0 {
			continue
		}
		sum += score * w
		weightSum += w
	}
	if weightSum == 0 {
		return NeutralScore
	}
	return utils.Clamp(sum/weightSum, 0, 100)
}

// matchKeyword - регистронезависимое вхождение любого ключевого слова.
func matchKeyword(usage string, keywords []string) bool {
	u := strings.ToLower(usage)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(u, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func appendRec(recs []string, template string, d domain.DirectionCode, record domain.AttributeRecord) []string {
	if template == "" {
		return recs
	}
	return append(recs, fmt.Sprintf(template, d.Name(), record.Guidance))
}

func appendUsageRec(recs []string, template string, d domain.DirectionCode, usage string, record domain.AttributeRecord) []string {
	if template == "" {
		return recs
	}
	return append(recs, fmt.Sprintf(template, d.Name(), usage, record.Guidance))
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
