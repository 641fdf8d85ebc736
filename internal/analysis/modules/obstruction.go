package modules

import (
	"github.com/vastu-microservice/internal/analysis"
	"github.com/vastu-microservice/internal/domain"
)

// ModuleObstruction - перекрытия и загромождения зон. Перекрытие
// вредно везде, кроме юга и юго-запада, где закрытость допустима.
const ModuleObstruction = "obstruction"

func newObstructionModule() (*analysis.Engine, error) {
	table := buildTable(map[domain.DirectionCode]recordSpec{
		domain.DirectionN: {
			IdealPercent: 12, StrengthPriority: 0.9,
			Guidance: "clear the north of clutter, it governs flow of opportunity",
		},
		domain.DirectionNE: {
			IdealPercent: 10, StrengthPriority: 1.0,
			Guidance: "any obstruction in the northeast is considered severe",
		},
		domain.DirectionE: {
			IdealPercent: 12, StrengthPriority: 0.8,
			Guidance: "keep eastern passages unobstructed for morning light",
		},
		domain.DirectionSE: {
			IdealPercent: 12, StrengthPriority: 0.6,
			Guidance: "limit storage in the southeast to movable items",
		},
		domain.DirectionS: {
			IdealPercent: 13, StrengthPriority: 0.4,
			Guidance: "a closed south face is acceptable",
		},
		domain.DirectionSW: {
			IdealPercent: 15, StrengthPriority: 0.3,
			Guidance: "a solid southwest corner is desirable",
		},
		domain.DirectionW: {
			IdealPercent: 14, StrengthPriority: 0.6,
			Guidance: "partial western closure is tolerable",
		},
		domain.DirectionNW: {
			IdealPercent: 12, StrengthPriority: 0.7,
			Guidance: "the northwest should allow air movement",
		},
	})

	return analysis.NewEngine(ModuleObstruction, "Zone Obstruction", table, analysis.RuleSet{
		BlockageExempt: analysis.NewDirectionSet(
			domain.DirectionS, domain.DirectionSW,
		),
		BlockagePenalty: 60,
		// Пороги смещены: перекрытие классифицируется жестче покрытия
		Thresholds: analysis.ThresholdTable{
			{Min: 85, Bucket: domain.SeverityCritical},
			{Min: 65, Bucket: domain.SeverityHigh},
			{Min: 45, Bucket: domain.SeverityMedium},
			{Min: 25, Bucket: domain.SeverityLow},
		},
		SubScoreWeights: map[string]float64{
			analysis.SubScoreObstruction: 3,
			analysis.SubScoreCoverage:    1,
		},
	})
}
