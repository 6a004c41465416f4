package maya

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

// DayReading is the full Maya calendar summary of one date.
type DayReading struct {
	Date          caldate.Date              `json:"date"`
	Weekday       string                    `json:"weekday"`
	KinLabel      string                    `json:"maya_kin"`
	Kin           int                       `json:"kin"`
	Seal          string                    `json:"maya_seal"`
	SealInfo      Seal                      `json:"maya_seal_info"`
	Tone          string                    `json:"maya_tone"`
	ToneInfo      Tone                      `json:"maya_tone_info"`
	Month         MonthInfo                 `json:"maya_month"`
	SealDesc      string                    `json:"maya_seal_desc"`
	Suggestions   Suggestions               `json:"suggestions"`
	LuckyItems    LuckyItems                `json:"lucky_items"`
	DailyMessage  string                    `json:"daily_message"`
	DailyQuote    string                    `json:"daily_quote"`
	EnergyScores  map[Category]int          `json:"energy_scores"`
	EnergyDetails map[Category]EnergyDetail `json:"energy_details"`
	SpecialDate   *SpecialDate              `json:"special_date"`
}

// Reading composes every derivation for date.
func (c *Calendar) Reading(date caldate.Date) DayReading {
	kin := c.Kin(date)
	seal := SealFor(kin)
	tone := ToneFor(kin)
	content := ContentFor(date, kin)
	energy := Energy(date, kin)

	return DayReading{
		Date:          date,
		Weekday:       date.Weekday().String(),
		KinLabel:      KinLabel(kin),
		Kin:           kin,
		Seal:          seal.Name,
		SealInfo:      seal,
		Tone:          tone.Name,
		ToneInfo:      tone,
		Month:         MonthFor(date),
		SealDesc:      SealDescription(kin),
		Suggestions:   content.Suggestions,
		LuckyItems:    content.Lucky,
		DailyMessage:  content.Message,
		DailyQuote:    content.Quote,
		EnergyScores:  energy.Scores,
		EnergyDetails: energy.Details,
		SpecialDate:   SpecialDateFor(date),
	}
}

// Clone returns a deep copy of r.
func (r DayReading) Clone() DayReading {
	r.SealInfo = r.SealInfo.clone()
	r.ToneInfo = r.ToneInfo.clone()
	r.Suggestions = Suggestions{
		Do:    slices.Clone(r.Suggestions.Do),
		Avoid: slices.Clone(r.Suggestions.Avoid),
	}
	r.EnergyScores = maps.Clone(r.EnergyScores)
	r.EnergyDetails = maps.Clone(r.EnergyDetails)
	if r.SpecialDate != nil {
		sd := *r.SpecialDate
		r.SpecialDate = &sd
	}
	return r
}

// KinLabel renders kin as "KIN183".
func KinLabel(kin int) string {
	return fmt.Sprintf("KIN%d", kin)
}

// LifePurpose is templated from the seal and tone records.
type LifePurpose struct {
	Summary     string `json:"summary"`
	Details     string `json:"details"`
	ActionGuide string `json:"action_guide"`
}

// PersonalTraits lists strengths and challenges for a birth kin.
type PersonalTraits struct {
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
}

// FieldPlacement is one field of the birth energy pair.
type FieldPlacement struct {
	Type string      `json:"type"`
	Info EnergyField `json:"info"`
}

// BirthEnergyField is the primary/secondary elemental pair of a birth kin.
type BirthEnergyField struct {
	Primary           FieldPlacement `json:"primary"`
	Secondary         FieldPlacement `json:"secondary"`
	BalanceSuggestion string         `json:"balance_suggestion"`
}

// BirthInfo is the birth chart of a date.
type BirthInfo struct {
	Date             caldate.Date     `json:"date"`
	Weekday          string           `json:"weekday"`
	KinLabel         string           `json:"maya_kin"`
	Kin              int              `json:"kin"`
	Seal             string           `json:"maya_seal"`
	SealDesc         string           `json:"maya_seal_desc"`
	SealInfo         Seal             `json:"maya_seal_info"`
	ToneInfo         Tone             `json:"maya_tone_info"`
	LifePurpose      LifePurpose      `json:"life_purpose"`
	PersonalTraits   PersonalTraits   `json:"personal_traits"`
	BirthEnergyField BirthEnergyField `json:"birth_energy_field"`
}

var birthChallenges = []string{
	"Balancing inner needs with outside expectations",
	"Moving past reserve and caution",
	"Not over-protecting yourself",
}

// Birth builds the chart for a birth date.
func (c *Calendar) Birth(birth caldate.Date) BirthInfo {
	day := c.Reading(birth)
	seal := day.SealInfo
	tone := day.ToneInfo

	return BirthInfo{
		Date:     day.Date,
		Weekday:  day.Weekday,
		KinLabel: day.KinLabel,
		Kin:      day.Kin,
		Seal:     day.Seal,
		SealDesc: day.SealDesc,
		SealInfo: seal,
		ToneInfo: tone,
		LifePurpose: LifePurpose{
			Summary:     fmt.Sprintf("%s carries a unique life energy", day.SealDesc),
			Details:     fmt.Sprintf("Your life purpose is tied to %s", strings.Join(seal.Traits, ", ")),
			ActionGuide: fmt.Sprintf("Realize your potential by %s", tone.Action),
		},
		PersonalTraits: PersonalTraits{
			Strengths: []string{
				fmt.Sprintf("A gift for %s", seal.Traits[0]),
				fmt.Sprintf("Ability in %s", seal.Energy[0]),
				fmt.Sprintf("Embodying %s", tone.Essence),
				"Discovering and growing your own talents",
				fmt.Sprintf("A gift for %s", secondOrFirst(seal.Traits)),
			},
			Challenges: append([]string(nil), birthChallenges...),
		},
		BirthEnergyField: fieldsFor(day.Kin),
	}
}

// fieldsFor picks the primary field at kin mod n and the secondary from the
// remaining fields at kin mod (n-1).
func fieldsFor(kin int) BirthEnergyField {
	primary := energyFields[mod(kin, len(energyFields))].clone()
	remaining := make([]EnergyField, 0, len(energyFields)-1)
	for _, f := range energyFields {
		if f.Name != primary.Name {
			remaining = append(remaining, f)
		}
	}
	secondary := remaining[mod(kin, len(remaining))].clone()
	return BirthEnergyField{
		Primary:           FieldPlacement{Type: primary.Name, Info: primary},
		Secondary:         FieldPlacement{Type: secondary.Name, Info: secondary},
		BalanceSuggestion: fmt.Sprintf("Balance the energies of %s and %s to reach your full potential", primary.Name, secondary.Name),
	}
}

func secondOrFirst(items []string) string {
	if len(items) > 1 {
		return items[1]
	}
	return items[0]
}
