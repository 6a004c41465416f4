package maya

import (
	"math"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

// Category is one life area of the energy profile.
type Category string

const (
	CategoryOverall Category = "overall"
	CategoryLove    Category = "love"
	CategoryWealth  Category = "wealth"
	CategoryCareer  Category = "career"
	CategoryStudy   Category = "study"
)

// Categories lists the profile areas in display order.
var Categories = []Category{CategoryOverall, CategoryLove, CategoryWealth, CategoryCareer, CategoryStudy}

// Trend is the sign of the day's perturbation.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
)

const (
	minEnergy       = 50
	maxEnergy       = 95
	maxPerturbation = 8.0
)

// EnergyDetail describes one category score.
type EnergyDetail struct {
	Score      int    `json:"score"`
	Trend      Trend  `json:"trend"`
	Intensity  int    `json:"intensity"`
	Suggestion string `json:"suggestion"`
}

// EnergyProfile holds the five category scores for a day.
type EnergyProfile struct {
	Scores  map[Category]int          `json:"scores"`
	Details map[Category]EnergyDetail `json:"details"`
}

// Energy scores each category from smooth yearly waves plus a per-category
// perturbation that is fixed for a given date and kin.
func Energy(date caldate.Date, kin int) EnergyProfile {
	doy := float64(date.YearDay())
	base := 65 + 5*math.Sin(2*math.Pi*doy/365) + 5*(float64(date.YearDay()%30)/30)

	adjust := map[Category]float64{
		CategoryOverall: 0,
		CategoryLove:    3 * math.Sin(2*math.Pi*float64(date.Month)/12),
		CategoryWealth:  4 * math.Cos(2*math.Pi*float64(date.Day)/31),
		CategoryCareer:  3 * math.Sin(2*math.Pi*float64(kin)/260),
		CategoryStudy:   4 * math.Cos(2*math.Pi*doy/365),
	}

	profile := EnergyProfile{
		Scores:  make(map[Category]int, len(Categories)),
		Details: make(map[Category]EnergyDetail, len(Categories)),
	}
	for _, cat := range Categories {
		r := newStream(int64(date.Ordinal()) + keySeed(string(cat)) + int64(kin))
		variation := uniform(r, -maxPerturbation, maxPerturbation)

		raw := math.Max(minEnergy, math.Min(base+adjust[cat]+variation, maxEnergy))
		score := int(math.RoundToEven(raw))

		trend := TrendFalling
		if variation > 0 {
			trend = TrendRising
		}
		profile.Scores[cat] = score
		profile.Details[cat] = EnergyDetail{
			Score:      score,
			Trend:      trend,
			Intensity:  int(math.Abs(math.RoundToEven(variation))),
			Suggestion: energySuggestion(cat, score),
		}
	}
	return profile
}

var energyAdvice = map[Category][3]string{
	CategoryOverall: {
		"Overall energy is high today, make the most of it with any activity",
		"Energy is steady today, keep a balanced mind and your plans will go smoothly",
		"Energy is low today, rest and avoid overextending yourself",
	},
	CategoryLove: {
		"Love energy is high, a good day to express feelings and grow closer",
		"Love energy is steady, keep communication honest to stay close",
		"Love energy is low, give yourself and your partner some space",
	},
	CategoryWealth: {
		"Wealth energy is high, a good day for financial decisions",
		"Wealth energy is steady, spend sensibly and think long term",
		"Wealth energy is low, hold off on major financial decisions",
	},
	CategoryCareer: {
		"Career energy is high, take on important work and show your strengths",
		"Career energy is steady, focus on the task at hand and keep moving",
		"Career energy is low, handle routine work and postpone big calls",
	},
	CategoryStudy: {
		"Study energy is high, learn something new and take on challenges",
		"Study energy is steady, stay focused and consolidate what you know",
		"Study energy is low, review and organize rather than tackle hard material",
	},
}

func energySuggestion(cat Category, score int) string {
	bands, ok := energyAdvice[cat]
	if !ok {
		return "Stay balanced and pay attention to your own needs"
	}
	switch {
	case score >= 80:
		return bands[0]
	case score >= 65:
		return bands[1]
	default:
		return bands[2]
	}
}
