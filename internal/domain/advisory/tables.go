package advisory

import (
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

// Advice is a colour and food suggestion for one biorhythm state.
type Advice struct {
	Color string `json:"color"`
	Food  string `json:"food"`
}

var stateAdvice = map[biorhythm.State]Advice{
	biorhythm.StateExcellent: {Color: "red", Food: "protein-rich meals such as lean meat, eggs and legumes"},
	biorhythm.StateGood:      {Color: "orange", Food: "whole grains with fresh vegetables"},
	biorhythm.StateNormal:    {Color: "green", Food: "a balanced plate with seasonal fruit"},
	biorhythm.StatePoor:      {Color: "blue", Food: "warm soups and easily digested congee"},
	biorhythm.StateCritical:  {Color: "white", Food: "light broth, bananas and herbal tea"},
}

// ForState is total over the five states; unknown states get the normal entry.
func ForState(state biorhythm.State) Advice {
	if a, ok := stateAdvice[state]; ok {
		return a
	}
	return stateAdvice[biorhythm.StateNormal]
}

// Dress is the outfit and diet guidance for a seal colour family.
type Dress struct {
	Family  maya.Color `json:"color_family"`
	Colors  []string   `json:"colors"`
	Accent  string     `json:"accent"`
	Foods   []string   `json:"foods"`
	Avoid   []string   `json:"avoid"`
	Summary string     `json:"summary"`
}

var familyDress = map[maya.Color]Dress{
	maya.ColorRed: {
		Colors:  []string{"red", "burgundy", "coral"},
		Accent:  "gold",
		Foods:   []string{"tomatoes", "red beans", "cherries"},
		Avoid:   []string{"icy drinks"},
		Summary: "A red day starts things. Warm tones support initiative.",
	},
	maya.ColorWhite: {
		Colors:  []string{"white", "cream", "light grey"},
		Accent:  "silver",
		Foods:   []string{"pears", "lotus root", "tofu"},
		Avoid:   []string{"heavy fried food"},
		Summary: "A white day refines. Clean light colours keep the mind clear.",
	},
	maya.ColorBlue: {
		Colors:  []string{"navy", "sky blue", "teal"},
		Accent:  "white",
		Foods:   []string{"blueberries", "seaweed", "black sesame"},
		Avoid:   []string{"too much caffeine"},
		Summary: "A blue day transforms. Cool tones help you stay calm through change.",
	},
	maya.ColorYellow: {
		Colors:  []string{"yellow", "ochre", "beige"},
		Accent:  "brown",
		Foods:   []string{"corn", "pumpkin", "millet"},
		Avoid:   []string{"overly sweet snacks"},
		Summary: "A yellow day ripens. Earthy tones bring steadiness and warmth.",
	},
}

// ForFamily returns a copy of the dress entry for family.
func ForFamily(family maya.Color) Dress {
	d, ok := familyDress[family]
	if !ok {
		d = familyDress[maya.ColorRed]
		family = maya.ColorRed
	}
	d.Family = family
	d.Colors = append([]string(nil), d.Colors...)
	d.Foods = append([]string(nil), d.Foods...)
	d.Avoid = append([]string(nil), d.Avoid...)
	return d
}

// Personal combines the physical and emotional states of a reading.
type Personal struct {
	Physical  Advice `json:"physical"`
	Emotional Advice `json:"emotional"`
	Overall   string `json:"overall"`
}

// ForReading derives personal advice from a biorhythm reading.
func ForReading(r biorhythm.Reading) Personal {
	p := Personal{
		Physical:  ForState(r.Physical.State),
		Emotional: ForState(r.Emotional.State),
	}
	switch {
	case r.OverallScore >= 70:
		p.Overall = "Bright colours suit your high energy today"
	case r.OverallScore >= 40:
		p.Overall = "Stick with comfortable, balanced colours today"
	default:
		p.Overall = "Choose soft, soothing colours and gentle food today"
	}
	return p
}
