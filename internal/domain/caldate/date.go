package caldate

import (
	"fmt"
	"time"
)

// Layout is the canonical wire format for calendar dates.
const Layout = "2006-01-02"

// Date is a proleptic Gregorian calendar day. It carries no time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Of builds a Date, normalizing out-of-range components the way time.Date does.
func Of(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays returns the day n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return fromDayNumber(d.dayNumber() + int64(n))
}

// DaysSince returns the signed number of days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.dayNumber() - other.dayNumber())
}

// Ordinal counts days with 0001-01-01 as day 1.
func (d Date) Ordinal() int {
	return int(d.dayNumber()-ordinalBase) + 1
}

// YearDay returns the day of the year in [1,366].
func (d Date) YearDay() int {
	return d.DaysSince(Date{Year: d.Year, Month: time.January, Day: 1}) + 1
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	w := (d.dayNumber() + 4) % 7
	if w < 0 {
		w += 7
	}
	return time.Weekday(w)
}

func (d Date) Before(other Date) bool { return d.dayNumber() < other.dayNumber() }

func (d Date) After(other Date) bool { return d.dayNumber() > other.dayNumber() }

func (d Date) Equal(other Date) bool { return d.dayNumber() == other.dayNumber() }

// MarshalText renders the canonical YYYY-MM-DD form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts anything Parse accepts.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var ordinalBase = Date{Year: 1, Month: time.January, Day: 1}.dayNumber()

// dayNumber counts days since 1970-01-01 using the civil-from-days algorithm,
// which stays exact for any year without going through time.Duration.
func (d Date) dayNumber() int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func fromDayNumber(z int64) Date {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if month > 12 {
		month -= 12
	}
	if month <= 2 {
		y++
	}
	return Date{Year: int(y), Month: time.Month(month), Day: int(day)}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
