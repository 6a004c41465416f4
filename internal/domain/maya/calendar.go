package maya

import (
	"fmt"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

// TzolkinCycle is the length of the sacred count.
const TzolkinCycle = 260

// Anchor pins one calendar date to a known KIN.
type Anchor struct {
	Date caldate.Date
	Kin  int
}

// DefaultAnchor puts 2012-12-21 at KIN 260, the day before the count
// restarts at 1.
var DefaultAnchor = Anchor{Date: caldate.Of(2012, 12, 21), Kin: TzolkinCycle}

// Calendar derives Tzolk'in positions relative to an anchor.
type Calendar struct {
	anchor Anchor
}

// NewCalendar validates the anchor. A zero anchor selects DefaultAnchor.
func NewCalendar(anchor Anchor) (*Calendar, error) {
	if anchor == (Anchor{}) {
		anchor = DefaultAnchor
	}
	if anchor.Kin < 1 || anchor.Kin > TzolkinCycle {
		return nil, fmt.Errorf("anchor kin %d out of range 1..%d", anchor.Kin, TzolkinCycle)
	}
	if anchor.Date.IsZero() {
		return nil, fmt.Errorf("anchor date is required")
	}
	return &Calendar{anchor: anchor}, nil
}

// Anchor returns the configured anchor.
func (c *Calendar) Anchor() Anchor {
	return c.anchor
}

// Kin returns the KIN in [1,260] for date.
func (c *Calendar) Kin(date caldate.Date) int {
	days := date.DaysSince(c.anchor.Date)
	return mod(c.anchor.Kin-1+days, TzolkinCycle) + 1
}

// SealFor is total over all integers. The result owns its slices.
func SealFor(kin int) Seal {
	return Seals[SealIndex(kin)].clone()
}

// SealIndex is (kin-1) mod 20 in [0,20).
func SealIndex(kin int) int {
	return mod(kin-1, len(Seals))
}

// ToneFor is total over all integers. The result owns its slices.
func ToneFor(kin int) Tone {
	return Tones[ToneIndex(kin)].clone()
}

// ToneIndex is (kin-1) mod 13 in [0,13).
func ToneIndex(kin int) int {
	return mod(kin-1, len(Tones))
}

// SealDescription renders "<Tone> <Seal>", e.g. "Magnetic Blue Night".
func SealDescription(kin int) string {
	return Tones[ToneIndex(kin)].Name + " " + Seals[SealIndex(kin)].Name
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
