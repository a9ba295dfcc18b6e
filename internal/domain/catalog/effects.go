package catalog

const (
	hungerReductionMin = 10
	hungerReductionMax = 80
	happinessBonusMax  = 30

	priceBonusThreshold  = 50
	priceBonusMultiplier = 1.2
)

// HungerReduction scales a food's base restore by its type and a small bonus
// for pricey items, clamped to [10,80]. The scaling keys off the catalog
// type tag so new entries inherit consistent behavior.
func HungerReduction(f Food) int {
	v := float64(f.HungerRestore)
	switch f.Type {
	case FoodPremium:
		v *= 1.5
	case FoodTreat:
		v *= 1.3
	case FoodMedicine:
		v *= 0.5
	}
	if f.Price > priceBonusThreshold {
		v *= priceBonusMultiplier
	}
	return clamp(int(v), hungerReductionMin, hungerReductionMax)
}

// HappinessBonus scales a food's base happiness by its type, clamped to
// [0,30]. Treats are the happiness play; medicine tastes like medicine.
func HappinessBonus(f Food) int {
	v := float64(f.HappinessBonus)
	switch f.Type {
	case FoodTreat:
		v *= 2
	case FoodPremium:
		v *= 1.5
	case FoodMedicine:
		v *= 0.5
	}
	return clamp(int(v), 0, happinessBonusMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
