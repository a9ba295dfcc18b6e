package pet

import "time"

// CareService holds the pure rules that move a pet's vitals, both over time
// and in response to player actions. The zero value uses the stock tuning.
type CareService struct {
	// DecayRate overrides the per-minute drift when positive.
	DecayRate int
}

func (s CareService) rate() int {
	if s.DecayRate > 0 {
		return s.DecayRate
	}
	return DefaultDecayRate
}

// Tick charges elapsed-time decay and re-derives sickness and mortality.
// roll supplies one uniform value in [0,1) when sickness has to be drawn;
// passing nil skips the sickness draw entirely.
//
// Decay is charged exactly once per elapsed minute: the watermark
// LastDecayAt only advances by whole charged minutes, so a second call with
// the same now is a no-op. The first charge after creation is floored to one
// minute so a fresh watermark never yields a zero tick.
func (s CareService) Tick(p Pet, now time.Time, roll func() float64) (Pet, []DomainEvent) {
	if !p.Alive {
		return p, nil
	}

	// Transient activity states end when time next moves.
	if p.State == StateEating || p.State == StateBathing {
		p.State = StateIdle
	}

	minutes := 0
	if p.LastDecayAt.IsZero() {
		minutes = 1
		p.LastDecayAt = now
	} else {
		minutes = int(now.Sub(p.LastDecayAt) / time.Minute)
		if minutes < 1 {
			return p, nil
		}
		p.LastDecayAt = p.LastDecayAt.Add(time.Duration(minutes) * time.Minute)
	}

	before := p
	p = s.ApplyDecay(p, minutes)
	p = DeriveHealth(p)

	events := []DomainEvent{{
		Type:       EventDecayApplied,
		OccurredAt: now,
		Payload: map[string]any{
			"minutes":      minutes,
			"state_before": vitalsPayload(before),
			"state_after":  vitalsPayload(p),
		},
	}}

	if !p.Alive {
		events = append(events, DomainEvent{Type: EventDied, OccurredAt: now})
		p.UpdatedAt = now
		return p, events
	}

	if roll != nil {
		wasSick := p.Sick
		p = MaybeSicken(p, roll)
		if !wasSick && p.Sick {
			events = append(events, DomainEvent{Type: EventGotSick, OccurredAt: now})
		}
	}

	p.UpdatedAt = now
	return p, events
}

// ApplyDecay charges minutes of drift: hunger climbs, happiness and
// cleanliness fall. Happiness already at or below the floor is spared, which
// keeps a neglected pet from spiralling on that axis alone. Dead pets are
// untouched.
func (s CareService) ApplyDecay(p Pet, minutes int) Pet {
	if !p.Alive || minutes <= 0 {
		return p
	}
	amount := s.rate() * minutes

	p.SetHunger(p.Hunger + amount)
	if p.Happiness > HappinessDrainFloor {
		p.SetHappiness(p.Happiness - amount)
	}
	p.SetCleanliness(p.Cleanliness - amount)
	return p
}

// DeriveHealth applies the tiered vital penalties to health. Only the higher
// of each pair of thresholds fires. Health reaching zero kills the pet;
// that transition is one-way.
func DeriveHealth(p Pet) Pet {
	if !p.Alive {
		return p
	}

	penalty := 0
	switch {
	case p.Hunger > HungerSevereThreshold:
		penalty += HungerPenaltySevere
	case p.Hunger > HungerMildThreshold:
		penalty += HungerPenaltyMild
	}
	switch {
	case p.Happiness < HappinessSevereThreshold:
		penalty += HappinessPenaltySevere
	case p.Happiness < HappinessMildThreshold:
		penalty += HappinessPenaltyMild
	}
	switch {
	case p.Cleanliness < CleanlinessSevereThreshold:
		penalty += CleanlinessPenaltySevere
	case p.Cleanliness < CleanlinessMildThreshold:
		penalty += CleanlinessPenaltyMild
	}
	if p.Sick {
		penalty += SicknessPenalty
	}

	p.SetHealth(p.Health - penalty)
	if p.Health <= 0 {
		p.MarkDead()
	}
	return p
}

func vitalsPayload(p Pet) map[string]any {
	return map[string]any{
		"health":      p.Health,
		"hunger":      p.Hunger,
		"happiness":   p.Happiness,
		"cleanliness": p.Cleanliness,
	}
}
