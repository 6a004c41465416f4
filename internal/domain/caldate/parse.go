package caldate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidDate marks input that is not a valid YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// year first, one separator kind used twice, optional zero padding
var datePattern = regexp.MustCompile(`^(\d{4})([-/.])(\d{1,2})([-/.])(\d{1,2})$`)

// Parse reads a calendar date. Full-width digits and separators are folded
// with NFKC before matching, so "２０２５－０９－２３" is accepted.
func Parse(value string) (Date, error) {
	folded := strings.TrimSpace(norm.NFKC.String(value))
	if folded == "" {
		return Date{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	m := datePattern.FindStringSubmatch(folded)
	if m == nil || m[2] != m[4] {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[5])
	if year < 1 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	d := Date{Year: year, Month: time.Month(month), Day: day}
	if month < 1 || month > 12 || day < 1 || day > daysIn(d.Month, year) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return d, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Normalize re-renders value in the canonical YYYY-MM-DD form.
func Normalize(value string) (string, error) {
	d, err := Parse(value)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// Canonical is the best-effort form of Normalize: input that does not parse
// is returned unchanged. Only use it for display and logging; computation
// paths must go through Parse so malformed input is rejected.
func Canonical(value string) string {
	normalized, err := Normalize(value)
	if err != nil {
		return value
	}
	return normalized
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
