package maya

import (
	"time"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

// SpecialDate marks a seasonal turning point.
type SpecialDate struct {
	Name string `json:"name"`
	Info string `json:"info"`
}

type monthDay struct {
	month time.Month
	day   int
}

// fixed approximations, not astronomical
var seasonalMarkers = map[monthDay]string{
	{time.March, 20}:     "Spring Equinox",
	{time.June, 21}:      "Summer Solstice",
	{time.September, 23}: "Autumn Equinox",
	{time.December, 21}:  "Winter Solstice",
}

// SpecialDateFor returns the marker for date, or nil.
func SpecialDateFor(date caldate.Date) *SpecialDate {
	name, ok := seasonalMarkers[monthDay{date.Month, date.Day}]
	if !ok {
		return nil
	}
	return &SpecialDate{Name: name, Info: keyDateInfo[name]}
}
