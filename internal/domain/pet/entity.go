package pet

import "time"

// New returns a freshly hatched pet: full health, full happiness, spotless,
// not hungry, idle and alive.
func New(id, accountID, name string, now time.Time) Pet {
	return Pet{
		ID:          id,
		AccountID:   accountID,
		Name:        name,
		Health:      100,
		Hunger:      0,
		Happiness:   100,
		Cleanliness: 100,
		State:       StateIdle,
		Alive:       true,
		Sick:        false,
		CreatedAt:   now,
		LastFed:     now,
		LastCleaned: now,
		LastPlayed:  now,
		LastDecayAt: now,
		Version:     1,
		UpdatedAt:   now,
	}
}

func (p *Pet) SetHealth(v int)      { p.Health = clampVital(v) }
func (p *Pet) SetHunger(v int)      { p.Hunger = clampVital(v) }
func (p *Pet) SetHappiness(v int)   { p.Happiness = clampVital(v) }
func (p *Pet) SetCleanliness(v int) { p.Cleanliness = clampVital(v) }

// CanAct gates the guarded transitions: feed, play and sleep all require an
// idle, healthy, living pet.
func (p Pet) CanAct() bool {
	return p.Alive && !p.Sick && p.State == StateIdle
}

// MarkDead is terminal. No vital mutation is permitted afterwards.
func (p *Pet) MarkDead() {
	p.Alive = false
	p.State = StateDead
}

// StatusMessage returns a human-readable condition summary, first matching
// condition wins.
func (p Pet) StatusMessage() string {
	switch {
	case !p.Alive:
		return "RIP"
	case p.Sick:
		return "Sick"
	case p.Hunger > StatusVeryHungry:
		return "Very Hungry"
	case p.Happiness < StatusVerySad:
		return "Very Sad"
	case p.Cleanliness < StatusVeryDirty:
		return "Very Dirty"
	case p.Health < StatusNeedsCare:
		return "Needs Care"
	case p.Happiness > StatusVeryHappy:
		return "Very Happy"
	default:
		return "Doing Well"
	}
}

func clampVital(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
