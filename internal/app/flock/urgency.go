package flock

import "quackmate/internal/domain/pet"

const urgencyHorizonMinutes = 10

type CareUrgency struct {
	NeedsAttention      bool     `json:"needs_attention"`
	ProjectedHealthLoss int      `json:"projected_health_loss"`
	Causes              []string `json:"causes"`
}

// EstimateCareUrgency projects the pet ten minutes forward under normal
// decay and reports how much health it stands to lose without care.
func EstimateCareUrgency(care pet.CareService, p pet.Pet) CareUrgency {
	if !p.Alive {
		return CareUrgency{}
	}

	projected := care.ApplyDecay(p, urgencyHorizonMinutes)
	projected = pet.DeriveHealth(projected)
	loss := p.Health - projected.Health
	if loss < 0 {
		loss = 0
	}

	causes := make([]string, 0, 4)
	if p.Sick {
		causes = append(causes, "SICK")
	}
	if projected.Hunger > pet.HungerMildThreshold {
		causes = append(causes, "HUNGER_HIGH")
	}
	if projected.Happiness < pet.HappinessMildThreshold {
		causes = append(causes, "HAPPINESS_LOW")
	}
	if projected.Cleanliness < pet.CleanlinessMildThreshold {
		causes = append(causes, "CLEANLINESS_LOW")
	}

	return CareUrgency{
		NeedsAttention:      loss > 0 || len(causes) > 0,
		ProjectedHealthLoss: loss,
		Causes:              causes,
	}
}
