package pet

// SicknessChance accumulates the independent sickness contributions from the
// current vitals. The sum may exceed 1, in which case sickness is certain.
// The chance never decreases as cleanliness or health worsen or hunger grows.
func SicknessChance(p Pet) float64 {
	chance := 0.0

	switch {
	case p.Cleanliness < SickCleanlinessFilthy:
		chance += SickChanceFilthy
	case p.Cleanliness < SickCleanlinessDirty:
		chance += SickChanceDirty
	}
	switch {
	case p.Health < SickHealthFrail:
		chance += SickChanceFrail
	case p.Health < SickHealthWeak:
		chance += SickChanceWeak
	}
	if p.Hunger > SickHungerStarving {
		chance += SickChanceStarving
	}
	return chance
}

// MaybeSicken draws once from roll, a uniform source over [0,1), and marks
// the pet sick when the draw lands under the accumulated chance. Already
// sick pets are left alone. The source is injected so tests can pin it.
func MaybeSicken(p Pet, roll func() float64) Pet {
	if p.Sick || !p.Alive {
		return p
	}
	if roll() < SicknessChance(p) {
		p.Sick = true
	}
	return p
}
