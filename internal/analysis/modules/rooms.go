package modules

import (
	"github.com/vastu-microservice/internal/analysis"
	"github.com/vastu-microservice/internal/domain"
)

// ModuleRooms - соответствие назначений помещений направлениям.
// Заявленное использование зоны сопоставляется со списками идеальных
// и запрещенных активностей направления.
const ModuleRooms = "rooms"

func newRoomsModule() (*analysis.Engine, error) {
	table := buildTable(map[domain.DirectionCode]recordSpec{
		domain.DirectionN: {
			IdealPercent: 12, StrengthPriority: 0.7,
			Qualities: []string{"wealth", "career"},
			Guidance:  "the north suits treasuries, safes and living rooms",
		},
		domain.DirectionNE: {
			IdealPercent: 10, StrengthPriority: 1.0,
			Qualities: []string{"sacred", "water"},
			Guidance:  "reserve the northeast for prayer, meditation and water storage",
		},
		domain.DirectionE: {
			IdealPercent: 12, StrengthPriority: 0.6,
			Qualities: []string{"health"},
			Guidance:  "eastern rooms favor bathing and morning activity",
		},
		domain.DirectionSE: {
			IdealPercent: 12, StrengthPriority: 0.9,
			Qualities: []string{"fire"},
			Guidance:  "the southeast is the seat of fire, place the kitchen here",
		},
		domain.DirectionS: {
			IdealPercent: 13, StrengthPriority: 0.5,
			Qualities: []string{"rest"},
			Guidance:  "southern rooms suit dining and rest",
		},
		domain.DirectionSW: {
			IdealPercent: 16, StrengthPriority: 1.0,
			Qualities: []string{"stability"},
			Guidance:  "the master bedroom belongs in the southwest",
		},
		domain.DirectionW: {
			IdealPercent: 13, StrengthPriority: 0.5,
			Qualities: []string{"gain"},
			Guidance:  "western rooms suit dining and children's study",
		},
		domain.DirectionNW: {
			IdealPercent: 12, StrengthPriority: 0.6,
			Qualities: []string{"movement"},
			Guidance:  "the northwest suits guest rooms and storage of finished goods",
		},
	})

	keywords := map[domain.DirectionCode]analysis.UsageKeywords{
		domain.DirectionN: {
			Ideal:      []string{"living", "safe", "treasury", "office"},
			Prohibited: []string{"kitchen", "toilet"},
		},
		domain.DirectionNE: {
			Ideal:      []string{"prayer", "meditation", "pooja", "water"},
			Prohibited: []string{"kitchen", "toilet", "bedroom", "staircase"},
		},
		domain.DirectionE: {
			Ideal:      []string{"bathroom", "study", "living"},
			Prohibited: []string{"toilet", "storage"},
		},
		domain.DirectionSE: {
			Ideal:      []string{"kitchen", "electrical", "boiler"},
			Prohibited: []string{"water", "bedroom", "prayer"},
		},
		domain.DirectionS: {
			Ideal:      []string{"dining", "bedroom"},
			Prohibited: []string{"entrance", "water"},
		},
		domain.DirectionSW: {
			Ideal:      []string{"master bedroom", "bedroom", "wardrobe", "storage"},
			Prohibited: []string{"toilet", "kitchen", "children"},
		},
		domain.DirectionW: {
			Ideal:      []string{"dining", "study", "children"},
			Prohibited: []string{"kitchen"},
		},
		domain.DirectionNW: {
			Ideal:      []string{"guest", "garage", "storage"},
			Prohibited: []string{"master bedroom", "prayer"},
		},
	}

	return analysis.NewEngine(ModuleRooms, "Room Placement", table, analysis.RuleSet{
		UsageKeywords: keywords,
		UsageBonus:    40,
		UsagePenalty:  40,
		SubScoreWeights: map[string]float64{
			analysis.SubScoreUsage:    3,
			analysis.SubScoreCoverage: 1,
		},
	})
}
