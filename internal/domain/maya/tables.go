package maya

import "slices"

// Seal is one of the twenty day glyphs.
type Seal struct {
	Name     string   `json:"name"`
	Color    Color    `json:"color"`
	Traits   []string `json:"traits"`
	Energy   []string `json:"energy"`
	Keywords []string `json:"keywords"`
}

func (s Seal) clone() Seal {
	s.Traits = slices.Clone(s.Traits)
	s.Energy = slices.Clone(s.Energy)
	s.Keywords = slices.Clone(s.Keywords)
	return s
}

// Tone is one of the thirteen galactic tones.
type Tone struct {
	Number   int      `json:"number"`
	Name     string   `json:"name"`
	Essence  string   `json:"essence"`
	Action   string   `json:"action"`
	Keywords []string `json:"keywords"`
}

func (t Tone) clone() Tone {
	t.Keywords = slices.Clone(t.Keywords)
	return t
}

// Color is the colour family a seal belongs to. Families repeat every four
// seals starting with red.
type Color string

const (
	ColorRed    Color = "red"
	ColorWhite  Color = "white"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
)

var colorFamilies = [4]Color{ColorRed, ColorWhite, ColorBlue, ColorYellow}

// Seals is ordered so that index (kin-1) mod 20 selects the seal of kin.
var Seals = [20]Seal{
	{Name: "Red Dragon", Traits: []string{"nurturing", "birth", "trust"}, Energy: []string{"being", "primal force"}, Keywords: []string{"origin", "nourish"}},
	{Name: "White Wind", Traits: []string{"communication", "spirit", "inspiration"}, Energy: []string{"breath", "expression"}, Keywords: []string{"voice", "message"}},
	{Name: "Blue Night", Traits: []string{"dreaming", "intuition", "abundance"}, Energy: []string{"inner vision", "plenty"}, Keywords: []string{"dream", "rest"}},
	{Name: "Yellow Seed", Traits: []string{"growth", "awareness", "potential"}, Energy: []string{"flowering", "intention"}, Keywords: []string{"target", "plant"}},
	{Name: "Red Serpent", Traits: []string{"vitality", "instinct", "passion"}, Energy: []string{"life force", "survival"}, Keywords: []string{"body", "kundalini"}},
	{Name: "White Worldbridger", Traits: []string{"equality", "release", "connection"}, Energy: []string{"opportunity", "letting go"}, Keywords: []string{"bridge", "death"}},
	{Name: "Blue Hand", Traits: []string{"healing", "accomplishment", "knowledge"}, Energy: []string{"action", "completion"}, Keywords: []string{"craft", "know"}},
	{Name: "Yellow Star", Traits: []string{"beauty", "harmony", "elegance"}, Energy: []string{"art", "refinement"}, Keywords: []string{"light", "style"}},
	{Name: "Red Moon", Traits: []string{"purification", "flow", "emotion"}, Energy: []string{"universal water", "cleansing"}, Keywords: []string{"tide", "feeling"}},
	{Name: "White Dog", Traits: []string{"loyalty", "heart", "love"}, Energy: []string{"companionship", "devotion"}, Keywords: []string{"guide", "friend"}},
	{Name: "Blue Monkey", Traits: []string{"play", "magic", "illusion"}, Energy: []string{"humour", "spontaneity"}, Keywords: []string{"trick", "child"}},
	{Name: "Yellow Human", Traits: []string{"free will", "wisdom", "influence"}, Energy: []string{"choice", "understanding"}, Keywords: []string{"sage", "decide"}},
	{Name: "Red Skywalker", Traits: []string{"exploration", "wakefulness", "space"}, Energy: []string{"travel", "prophecy"}, Keywords: []string{"explorer", "sky"}},
	{Name: "White Wizard", Traits: []string{"timelessness", "receptivity", "enchantment"}, Energy: []string{"presence", "magic"}, Keywords: []string{"shaman", "now"}},
	{Name: "Blue Eagle", Traits: []string{"vision", "mind", "creativity"}, Energy: []string{"overview", "planning"}, Keywords: []string{"sight", "future"}},
	{Name: "Yellow Warrior", Traits: []string{"intelligence", "questioning", "fearlessness"}, Energy: []string{"courage", "strategy"}, Keywords: []string{"quest", "truth"}},
	{Name: "Red Earth", Traits: []string{"navigation", "synchronicity", "evolution"}, Energy: []string{"grounding", "signs"}, Keywords: []string{"path", "sync"}},
	{Name: "White Mirror", Traits: []string{"reflection", "order", "endlessness"}, Energy: []string{"clarity", "truth"}, Keywords: []string{"mirror", "sword"}},
	{Name: "Blue Storm", Traits: []string{"transformation", "energy", "self-generation"}, Energy: []string{"catalysis", "renewal"}, Keywords: []string{"thunder", "change"}},
	{Name: "Yellow Sun", Traits: []string{"enlightenment", "life", "universal fire"}, Energy: []string{"illumination", "wholeness"}, Keywords: []string{"sun", "love"}},
}

func init() {
	for i := range Seals {
		Seals[i].Color = colorFamilies[i%len(colorFamilies)]
	}
}

// Tones is ordered so that index (kin-1) mod 13 selects the tone of kin.
var Tones = [13]Tone{
	{Number: 1, Name: "Magnetic", Essence: "purpose", Action: "unifying", Keywords: []string{"attract", "begin"}},
	{Number: 2, Name: "Lunar", Essence: "challenge", Action: "polarizing", Keywords: []string{"stabilize", "duality"}},
	{Number: 3, Name: "Electric", Essence: "service", Action: "activating", Keywords: []string{"bond", "energize"}},
	{Number: 4, Name: "Self-Existing", Essence: "form", Action: "defining", Keywords: []string{"measure", "structure"}},
	{Number: 5, Name: "Overtone", Essence: "radiance", Action: "empowering", Keywords: []string{"command", "center"}},
	{Number: 6, Name: "Rhythmic", Essence: "equality", Action: "organizing", Keywords: []string{"balance", "flow"}},
	{Number: 7, Name: "Resonant", Essence: "attunement", Action: "channeling", Keywords: []string{"inspire", "listen"}},
	{Number: 8, Name: "Galactic", Essence: "integrity", Action: "harmonizing", Keywords: []string{"model", "align"}},
	{Number: 9, Name: "Solar", Essence: "intention", Action: "pulsing", Keywords: []string{"realize", "expand"}},
	{Number: 10, Name: "Planetary", Essence: "manifestation", Action: "perfecting", Keywords: []string{"produce", "ground"}},
	{Number: 11, Name: "Spectral", Essence: "liberation", Action: "dissolving", Keywords: []string{"release", "free"}},
	{Number: 12, Name: "Crystal", Essence: "cooperation", Action: "dedicating", Keywords: []string{"universalize", "share"}},
	{Number: 13, Name: "Cosmic", Essence: "presence", Action: "enduring", Keywords: []string{"transcend", "complete"}},
}

// Moons names the thirteen 28-day months starting July 26.
var Moons = [13]string{
	"Magnetic Bat Moon",
	"Lunar Scorpion Moon",
	"Electric Deer Moon",
	"Self-Existing Owl Moon",
	"Overtone Peacock Moon",
	"Rhythmic Lizard Moon",
	"Resonant Monkey Moon",
	"Galactic Hawk Moon",
	"Solar Jaguar Moon",
	"Planetary Dog Moon",
	"Spectral Serpent Moon",
	"Crystal Rabbit Moon",
	"Cosmic Turtle Moon",
}

var suggestionPool = []string{
	"Meditate for ten minutes to settle your mind",
	"Write down three things you are grateful for",
	"Reach out to an old friend",
	"Spend some time outdoors",
	"Try a new recipe",
	"Finish one task you have been postponing",
	"Read a few pages of a good book",
	"Tidy up your workspace",
	"Take a slow walk after dinner",
	"Listen to music that lifts you",
	"Set one clear intention for the day",
	"Drink more water",
}

var avoidancePool = []string{
	"Making impulsive purchases",
	"Arguing over small things",
	"Skipping meals",
	"Staying up late",
	"Overcommitting your schedule",
	"Dwelling on past mistakes",
	"Scrolling your phone before sleep",
	"Signing contracts in a hurry",
}

var luckyColors = []string{"crimson", "ivory", "sapphire", "gold", "emerald", "violet", "amber", "silver"}

var luckyNumbers = []int{1, 3, 5, 7, 8, 9, 11, 13, 20}

var luckyFoods = []string{"almonds", "blueberries", "oranges", "green tea", "honey", "avocado", "dark chocolate", "sweet potato"}

var dailyMessages = []string{
	"Trust the rhythm of the day and let things unfold.",
	"Small steps taken with intention add up to great change.",
	"Your presence is a gift, share it generously.",
	"Listen closely, the answer is already near.",
	"Let go of what no longer serves you.",
	"Today favours quiet courage over loud effort.",
	"Plant a seed now and tend it with patience.",
}

var dailyQuotes = []string{
	"In lak'ech: I am another yourself.",
	"Time is art.",
	"The journey of a thousand miles begins with a single step.",
	"What you seek is seeking you.",
	"Everything flows.",
	"The best way out is always through.",
	"Be the change you wish to see in the world.",
}

// EnergyField is one of the elemental fields used in birth charts.
type EnergyField struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Qualities   []string `json:"qualities"`
}

func (f EnergyField) clone() EnergyField {
	f.Qualities = slices.Clone(f.Qualities)
	return f
}

var energyFields = []EnergyField{
	{Name: "Fire", Description: "drive, passion and transformation", Qualities: []string{"courage", "warmth"}},
	{Name: "Water", Description: "emotion, intuition and flow", Qualities: []string{"empathy", "adaptability"}},
	{Name: "Earth", Description: "stability, patience and growth", Qualities: []string{"reliability", "endurance"}},
	{Name: "Air", Description: "thought, communication and freedom", Qualities: []string{"curiosity", "clarity"}},
	{Name: "Ether", Description: "spirit, connection and wholeness", Qualities: []string{"insight", "presence"}},
}

var keyDateInfo = map[string]string{
	"Spring Equinox":  "Day and night are balanced. A time for new beginnings and planting intentions.",
	"Summer Solstice": "The longest day. Solar energy peaks, celebrate growth and abundance.",
	"Autumn Equinox":  "Balance returns. Harvest what you have sown and give thanks.",
	"Winter Solstice": "The longest night. Turn inward, rest and prepare for renewal.",
}
