package maya

import "github.com/yanqian/cosmic-rhythm/internal/domain/caldate"

const (
	suggestionCount = 4
	avoidanceCount  = 3
)

// Suggestions pairs things to do with things to avoid.
type Suggestions struct {
	Do    []string `json:"do"`
	Avoid []string `json:"avoid"`
}

// LuckyItems are the day's lucky colour, number and food.
type LuckyItems struct {
	Color  string `json:"color"`
	Number int    `json:"number"`
	Food   string `json:"food"`
}

// Content is the personalized bundle for one day.
type Content struct {
	Suggestions Suggestions `json:"suggestions"`
	Lucky       LuckyItems  `json:"lucky_items"`
	Message     string      `json:"daily_message"`
	Quote       string      `json:"daily_quote"`
}

// ContentFor draws every field from streams seeded with ordinal+kin, so a
// day always yields the same bundle regardless of call order.
func ContentFor(date caldate.Date, kin int) Content {
	seed := int64(date.Ordinal() + kin)

	r := newStream(seed)
	suggestions := Suggestions{
		Do:    sample(r, suggestionPool, suggestionCount),
		Avoid: sample(r, avoidancePool, avoidanceCount),
	}

	r = newStream(seed)
	lucky := LuckyItems{
		Color:  choice(r, luckyColors),
		Number: choice(r, luckyNumbers),
		Food:   choice(r, luckyFoods),
	}

	r = newStream(seed)
	return Content{
		Suggestions: suggestions,
		Lucky:       lucky,
		Message:     choice(r, dailyMessages),
		Quote:       choice(r, dailyQuotes),
	}
}
