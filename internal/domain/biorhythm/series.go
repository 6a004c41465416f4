package biorhythm

import "github.com/yanqian/cosmic-rhythm/internal/domain/caldate"

// Range computes one reading per day from today-before to today+after
// inclusive. Callers validate the window; negative sides are treated as 0.
func Range(birth, today caldate.Date, before, after int) RangeReading {
	before = max(before, 0)
	after = max(after, 0)
	n := before + after + 1
	out := RangeReading{
		BirthDate:    birth,
		Today:        today,
		Start:        today.AddDays(-before),
		End:          today.AddDays(after),
		Dates:        make([]caldate.Date, 0, n),
		Physical:     make([]float64, 0, n),
		Emotional:    make([]float64, 0, n),
		Intellectual: make([]float64, 0, n),
		Readings:     make([]Reading, 0, n),
	}
	for day := out.Start; !day.After(out.End); day = day.AddDays(1) {
		r := Compute(birth, day)
		out.Dates = append(out.Dates, day)
		out.Physical = append(out.Physical, r.Physical.Value)
		out.Emotional = append(out.Emotional, r.Emotional.Value)
		out.Intellectual = append(out.Intellectual, r.Intellectual.Value)
		out.Readings = append(out.Readings, r)
	}
	return out
}

// Forecast returns days compact entries starting at start.
func Forecast(birth, start caldate.Date, days int) []ForecastDay {
	out := make([]ForecastDay, 0, max(days, 0))
	for i := 0; i < days; i++ {
		day := start.AddDays(i)
		r := Compute(birth, day)
		out = append(out, ForecastDay{
			Date:         day,
			Weekday:      day.Weekday().String(),
			Physical:     r.Physical.Value,
			Emotional:    r.Emotional.Value,
			Intellectual: r.Intellectual.Value,
			OverallScore: r.OverallScore,
		})
	}
	return out
}
