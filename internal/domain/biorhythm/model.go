package biorhythm

import "github.com/yanqian/cosmic-rhythm/internal/domain/caldate"

// Axis names one of the three cycles.
type Axis string

const (
	AxisPhysical     Axis = "physical"
	AxisEmotional    Axis = "emotional"
	AxisIntellectual Axis = "intellectual"
)

// Cycle pairs an axis with its period in days.
type Cycle struct {
	Axis   Axis
	Period int
}

// Cycles lists the classical periods in output order.
var Cycles = [3]Cycle{
	{Axis: AxisPhysical, Period: 23},
	{Axis: AxisEmotional, Period: 28},
	{Axis: AxisIntellectual, Period: 33},
}

// State is the discrete classification of a cycle value.
type State string

const (
	StateExcellent State = "excellent"
	StateGood      State = "good"
	StateNormal    State = "normal"
	StatePoor      State = "poor"
	StateCritical  State = "critical"
)

// States lists every state from best to worst.
var States = []State{StateExcellent, StateGood, StateNormal, StatePoor, StateCritical}

// Sample is the value of one cycle on one day.
type Sample struct {
	Value       float64 `json:"value"`
	CycleDay    int     `json:"cycle_day"`
	State       State   `json:"state"`
	Description string  `json:"description"`
}

// Reading holds the three samples for a birth/target pair.
type Reading struct {
	BirthDate    caldate.Date `json:"birth_date"`
	TargetDate   caldate.Date `json:"target_date"`
	DaysDiff     int          `json:"days_diff"`
	Physical     Sample       `json:"physical"`
	Emotional    Sample       `json:"emotional"`
	Intellectual Sample       `json:"intellectual"`
	OverallScore float64      `json:"overall_score"`
	Advice       LifeAdvice   `json:"advice"`
}

// Sample returns the sample for axis.
func (r Reading) Sample(axis Axis) Sample {
	switch axis {
	case AxisPhysical:
		return r.Physical
	case AxisEmotional:
		return r.Emotional
	default:
		return r.Intellectual
	}
}

// LifeAdvice is day-level guidance derived from the axis states.
type LifeAdvice struct {
	Exercise string `json:"exercise"`
	Diet     string `json:"diet"`
	Work     string `json:"work"`
	Rest     string `json:"rest"`
	Social   string `json:"social"`
}

// RangeRequest selects a window around today.
type RangeRequest struct {
	BirthDate  string
	DaysBefore int
	DaysAfter  int
}

// RangeReading is a chronological series of readings. The columnar slices
// mirror Readings for chart consumers.
type RangeReading struct {
	BirthDate    caldate.Date   `json:"birth_date"`
	Today        caldate.Date   `json:"today"`
	Start        caldate.Date   `json:"start"`
	End          caldate.Date   `json:"end"`
	Dates        []caldate.Date `json:"dates"`
	Physical     []float64      `json:"physical"`
	Emotional    []float64      `json:"emotional"`
	Intellectual []float64      `json:"intellectual"`
	Readings     []Reading      `json:"biorhythm_list"`
}

// ForecastDay is the compact per-day entry of a forecast.
type ForecastDay struct {
	Date         caldate.Date `json:"date"`
	Weekday      string       `json:"weekday"`
	Physical     float64      `json:"physical"`
	Emotional    float64      `json:"emotional"`
	Intellectual float64      `json:"intellectual"`
	OverallScore float64      `json:"overall_score"`
}

// Config carries the service limits.
type Config struct {
	MaxRangeDays int
	ForecastDays int
}
