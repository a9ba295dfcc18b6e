package flock

import "quackmate/internal/domain/pet"

type ListRequest struct {
	AccountID string
}

type ListResponse struct {
	Pets []PetView `json:"pets"`
}

type GetRequest struct {
	AccountID string
	PetID     string
}

type GetResponse struct {
	Pet PetView `json:"pet"`
}

type CreateRequest struct {
	AccountID string
	Name      string
}

type CreateResponse struct {
	Pet pet.Pet `json:"pet"`
}

type PetView struct {
	Pet           pet.Pet     `json:"pet"`
	StatusMessage string      `json:"status_message"`
	Urgency       CareUrgency `json:"care_urgency"`
}
