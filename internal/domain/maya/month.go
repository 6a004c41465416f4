package maya

import (
	"fmt"
	"time"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

const moonLength = 28

// MonthInfo locates a date in the 13-moon year.
type MonthInfo struct {
	Month   string `json:"month"`
	Index   int    `json:"index"`
	Day     int    `json:"day"`
	Display string `json:"display"`
}

// MonthFor counts 28-day moons from July 26 of the current year, or of the
// previous year for dates before July 26. Days past the thirteenth moon
// (the Day Out of Time and leap days) stay in the last moon.
func MonthFor(date caldate.Date) MonthInfo {
	start := caldate.Of(date.Year, time.July, 26)
	if date.Before(start) {
		start = caldate.Of(date.Year-1, time.July, 26)
	}
	d := date.DaysSince(start)

	index := d / moonLength
	day := d%moonLength + 1
	// Day 29 is the Day Out of Time, day 30 the leap day of a year whose
	// cycle spans Feb 29. Counting continues from the last moon's start so
	// days never skip a number.
	if last := len(Moons) - 1; index > last {
		index = last
		day = d - last*moonLength + 1
	}
	return MonthInfo{
		Month:   Moons[index],
		Index:   index,
		Day:     day,
		Display: fmt.Sprintf("%s | Day %d", Moons[index], day),
	}
}
