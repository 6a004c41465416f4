package biorhythm

import (
	"math"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

// Compute evaluates all three cycles for target relative to birth. The day
// difference is signed, so targets before the birth date are valid.
func Compute(birth, target caldate.Date) Reading {
	days := target.DaysSince(birth)
	r := Reading{
		BirthDate:    birth,
		TargetDate:   target,
		DaysDiff:     days,
		Physical:     sampleFor(days, Cycles[0]),
		Emotional:    sampleFor(days, Cycles[1]),
		Intellectual: sampleFor(days, Cycles[2]),
	}
	r.OverallScore = OverallScore(r)
	r.Advice = Advise(r)
	return r
}

// Value is sin(2π·days/period).
func Value(days, period int) float64 {
	return math.Sin(2 * math.Pi * float64(days) / float64(period))
}

// CycleDay is days mod period in [0, period).
func CycleDay(days, period int) int {
	m := days % period
	if m < 0 {
		m += period
	}
	return m
}

// Classify maps a cycle value onto a State.
func Classify(value float64) State {
	switch {
	case value > 0.7:
		return StateExcellent
	case value > 0.3:
		return StateGood
	case value > -0.3:
		return StateNormal
	case value > -0.7:
		return StatePoor
	default:
		return StateCritical
	}
}

// OverallScore weights physical 40%, emotional 30% and intellectual 30%
// after mapping each axis from [-1,1] onto [0,100].
func OverallScore(r Reading) float64 {
	return toPercent(r.Physical.Value)*0.4 +
		toPercent(r.Emotional.Value)*0.3 +
		toPercent(r.Intellectual.Value)*0.3
}

func toPercent(v float64) float64 {
	return (v + 1) * 50
}

func sampleFor(days int, c Cycle) Sample {
	value := Value(days, c.Period)
	state := Classify(value)
	return Sample{
		Value:       value,
		CycleDay:    CycleDay(days, c.Period),
		State:       state,
		Description: describe(c.Axis, state),
	}
}

var descriptions = map[Axis]map[State]string{
	AxisPhysical: {
		StateExcellent: "Full of physical energy, a good day for intense exercise",
		StateGood:      "Physical condition is good, moderate exercise fits well",
		StateNormal:    "Physical condition is average, balance work and rest",
		StatePoor:      "Physical energy is low, get more rest",
		StateCritical:  "Physical energy is at its lowest, rest fully",
	},
	AxisEmotional: {
		StateExcellent: "Spirits are high, a good day for social activities",
		StateGood:      "Emotionally stable with a positive outlook",
		StateNormal:    "Emotions are even, keep a calm mind",
		StatePoor:      "Mood is low, take time to recharge",
		StateCritical:  "Emotions swing widely, lean on people you trust",
	},
	AxisIntellectual: {
		StateExcellent: "Thinking is sharp, ideal for study and deep work",
		StateGood:      "Mind is active and work goes efficiently",
		StateNormal:    "Mental energy is normal, routine work is fine",
		StatePoor:      "Thinking is sluggish, stick to simple tasks",
		StateCritical:  "Focus is hard to hold, avoid complex decisions",
	},
}

func describe(axis Axis, state State) string {
	return descriptions[axis][state]
}
