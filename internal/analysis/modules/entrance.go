package modules

import (
	"github.com/vastu-microservice/internal/analysis"
	"github.com/vastu-microservice/internal/domain"
)

// ModuleEntrance - оценка расположения входа. Вход моделируется как
// заявленное использование "entrance" в соответствующем направлении:
// благоприятен на севере, северо-востоке и востоке, неблагоприятен
// на юге, юго-западе и северо-западе.
const ModuleEntrance = "entrance"

func newEntranceModule() (*analysis.Engine, error) {
	table := buildTable(map[domain.DirectionCode]recordSpec{
		domain.DirectionN: {
			IdealPercent: 12, StrengthPriority: 0.9,
			Guidance: "a north entrance invites prosperity",
		},
		domain.DirectionNE: {
			IdealPercent: 10, StrengthPriority: 1.0,
			Guidance: "the northeast entrance is the most auspicious placement",
		},
		domain.DirectionE: {
			IdealPercent: 12, StrengthPriority: 0.9,
			Guidance: "an east entrance welcomes the rising sun",
		},
		domain.DirectionSE: {
			IdealPercent: 12, StrengthPriority: 0.5,
			Guidance: "a southeast entrance needs a compensating threshold",
		},
		domain.DirectionS: {
			IdealPercent: 13, StrengthPriority: 0.8,
			Guidance: "avoid a south-facing main door where possible",
		},
		domain.DirectionSW: {
			IdealPercent: 15, StrengthPriority: 1.0,
			Guidance: "a southwest entrance undermines the stability corner",
		},
		domain.DirectionW: {
			IdealPercent: 14, StrengthPriority: 0.5,
			Guidance: "a west entrance is acceptable with good lighting",
		},
		domain.DirectionNW: {
			IdealPercent: 12, StrengthPriority: 0.7,
			Guidance: "a northwest entrance causes restlessness",
		},
	})

	keywords := make(map[domain.DirectionCode]analysis.UsageKeywords, len(domain.MainDirections))
	favorable := analysis.NewDirectionSet(domain.DirectionN, domain.DirectionNE, domain.DirectionE)
	unfavorable := analysis.NewDirectionSet(domain.DirectionS, domain.DirectionSW, domain.DirectionNW)
	for _, d := range domain.MainDirections {
		switch {
		case favorable.Contains(d):
			keywords[d] = analysis.UsageKeywords{Ideal: []string{"entrance", "door", "gate"}}
		case unfavorable.Contains(d):
			keywords[d] = analysis.UsageKeywords{Prohibited: []string{"entrance", "door", "gate"}}
		}
	}

	return analysis.NewEngine(ModuleEntrance, "Entrance Placement", table, analysis.RuleSet{
		UsageKeywords:   keywords,
		UsageBonus:      45,
		UsagePenalty:    45,
		BlockagePenalty: 50,
		SubScoreWeights: map[string]float64{
			analysis.SubScoreUsage:       3,
			analysis.SubScoreObstruction: 1,
		},
	})
}
