package modules

import (
	"github.com/vastu-microservice/internal/analysis"
	"github.com/vastu-microservice/internal/domain"
)

// ModuleStructure - распределение строительной массы по направлениям.
// Тяжесть полезна на юге, юго-западе и западе, вредна на севере,
// северо-востоке, востоке и северо-западе; юго-восток нейтрален.
const ModuleStructure = "structure"

func newStructureModule() (*analysis.Engine, error) {
	table := buildTable(map[domain.DirectionCode]recordSpec{
		domain.DirectionN: {
			IdealPercent: 10, StrengthPriority: 0.8,
			Qualities: []string{"open", "light"},
			Guidance:  "keep the north light and open, avoid tall storage",
		},
		domain.DirectionNE: {
			IdealPercent: 8, StrengthPriority: 1.0,
			Qualities: []string{"open", "lowest"},
			Guidance:  "the northeast must stay the lowest and lightest zone",
		},
		domain.DirectionE: {
			IdealPercent: 10, StrengthPriority: 0.7,
			Qualities: []string{"open", "light"},
			Guidance:  "keep eastern walls thin and openings generous",
		},
		domain.DirectionSE: {
			IdealPercent: 12, StrengthPriority: 0.5,
			Qualities: []string{"moderate"},
			Guidance:  "moderate mass is acceptable in the southeast",
		},
		domain.DirectionS: {
			IdealPercent: 14, StrengthPriority: 0.8,
			Qualities: []string{"heavy", "tall"},
			Guidance:  "place heavy construction and tall walls to the south",
		},
		domain.DirectionSW: {
			IdealPercent: 18, StrengthPriority: 1.0,
			Qualities: []string{"heaviest", "tallest"},
			Guidance:  "the southwest should carry the heaviest mass of the building",
		},
		domain.DirectionW: {
			IdealPercent: 16, StrengthPriority: 0.7,
			Qualities: []string{"heavy"},
			Guidance:  "solid western walls support the structure",
		},
		domain.DirectionNW: {
			IdealPercent: 12, StrengthPriority: 0.6,
			Qualities: []string{"light"},
			Guidance:  "avoid permanent heavy mass in the northwest",
		},
	})

	return analysis.NewEngine(ModuleStructure, "Structural Load Distribution", table, analysis.RuleSet{
		HeavinessBeneficial: analysis.NewDirectionSet(
			domain.DirectionS, domain.DirectionSW, domain.DirectionW,
		),
		HeavinessHarmful: analysis.NewDirectionSet(
			domain.DirectionN, domain.DirectionNE, domain.DirectionE, domain.DirectionNW,
		),
		HeavinessBonus:   35,
		HeavinessPenalty: 35,
		BlockageExempt: analysis.NewDirectionSet(
			domain.DirectionS, domain.DirectionSW,
		),
		BlockagePenalty: 40,
		SubScoreWeights: map[string]float64{
			analysis.SubScoreStructure:   2,
			analysis.SubScoreCoverage:    1,
			analysis.SubScoreObstruction: 1,
		},
	})
}
