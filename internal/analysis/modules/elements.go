package modules

import (
	"github.com/vastu-microservice/internal/analysis"
	"github.com/vastu-microservice/internal/domain"
)

// ModuleElements - баланс стихий: насколько фактическая доля площади
// каждой зоны близка к идеальной для ее стихии. Оценка почти целиком
// определяется покрытием.
const ModuleElements = "elements"

func newElementsModule() (*analysis.Engine, error) {
	table := buildTable(map[domain.DirectionCode]recordSpec{
		domain.DirectionN: {
			IdealPercent: 60, StrengthPriority: 0.7,
			Guidance: "extend the built footprint moderately into the north water zone",
		},
		domain.DirectionNE: {
			IdealPercent: 45, StrengthPriority: 1.0,
			Guidance: "leave the northeast comparatively open",
		},
		domain.DirectionE: {
			IdealPercent: 60, StrengthPriority: 0.6,
			Guidance: "balance the east air zone with open galleries",
		},
		domain.DirectionSE: {
			IdealPercent: 70, StrengthPriority: 0.8,
			Guidance: "the fire corner supports a fuller footprint",
		},
		domain.DirectionS: {
			IdealPercent: 80, StrengthPriority: 0.7,
			Guidance: "build the south earth zone solidly",
		},
		domain.DirectionSW: {
			IdealPercent: 90, StrengthPriority: 1.0,
			Guidance: "maximize built coverage in the southwest earth corner",
		},
		domain.DirectionW: {
			IdealPercent: 75, StrengthPriority: 0.6,
			Guidance: "keep the west water zone well covered",
		},
		domain.DirectionNW: {
			IdealPercent: 65, StrengthPriority: 0.5,
			Guidance: "the northwest air zone tolerates partial coverage",
		},
	})

	return analysis.NewEngine(ModuleElements, "Element Balance", table, analysis.RuleSet{
		// Пороги этого модуля чуть ниже общих
		Thresholds: analysis.ThresholdTable{
			{Min: 75, Bucket: domain.SeverityCritical},
			{Min: 55, Bucket: domain.SeverityHigh},
			{Min: 35, Bucket: domain.SeverityMedium},
			{Min: 15, Bucket: domain.SeverityLow},
		},
		SubScoreWeights: map[string]float64{
			analysis.SubScoreCoverage: 1,
		},
	})
}
