package biorhythm

import "strings"

// Advise builds day guidance from the physical, emotional and intellectual
// states of r.
func Advise(r Reading) LifeAdvice {
	return LifeAdvice{
		Exercise: exerciseAdvice(r.Physical.State),
		Diet:     dietAdvice(r.Physical.State, r.Emotional.State),
		Work:     workAdvice(r.Intellectual.State),
		Rest:     restAdvice(r.Physical.State, r.Emotional.State),
		Social:   socialAdvice(r.Emotional.State),
	}
}

func isLow(s State) bool {
	return s == StatePoor || s == StateCritical
}

func exerciseAdvice(physical State) string {
	switch physical {
	case StateExcellent:
		return "High intensity training works today: running, swimming, strength work"
	case StateGood:
		return "Moderate exercise fits: brisk walking, yoga, aerobics"
	case StateNormal:
		return "Keep it light: a walk and some stretching"
	default:
		return "Prioritize rest and skip strenuous exercise"
	}
}

func dietAdvice(physical, emotional State) string {
	var parts []string
	if isLow(physical) {
		parts = append(parts, "Choose easily digested, nourishing food such as congee, soup and fruit.")
	} else {
		parts = append(parts, "Keep a balanced diet with enough protein and vitamins.")
	}
	if isLow(emotional) {
		parts = append(parts, "Bananas and nuts help keep the mood steady.")
	}
	return strings.Join(parts, " ")
}

func workAdvice(intellectual State) string {
	switch intellectual {
	case StateExcellent:
		return "Take on complex problems and creative work"
	case StateGood:
		return "Schedule important meetings and decisions"
	case StateNormal:
		return "Routine tasks go smoothly"
	default:
		return "Stick to simple repetitive work and postpone key decisions"
	}
}

func restAdvice(physical, emotional State) string {
	if isLow(physical) || isLow(emotional) {
		return "Sleep enough, take a midday break and avoid staying up late"
	}
	return "Keep a regular schedule and balance work with rest"
}

func socialAdvice(emotional State) string {
	switch emotional {
	case StateExcellent:
		return "Join social events and build new connections"
	case StateGood:
		return "A small gathering or meeting friends fits well"
	case StateNormal:
		return "Keep normal social contact without overcommitting"
	default:
		return "Spend time alone or with close friends, skip large crowds"
	}
}
