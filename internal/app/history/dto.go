package history

import "quackmate/internal/domain/pet"

type Request struct {
	AccountID    string
	PetID        string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events       []pet.DomainEvent `json:"events"`
	LatestVitals Vitals            `json:"latest_vitals"`
}

type Vitals struct {
	Health      int `json:"health"`
	Hunger      int `json:"hunger"`
	Happiness   int `json:"happiness"`
	Cleanliness int `json:"cleanliness"`
}
