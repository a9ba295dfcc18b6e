package petcare

import "quackmate/internal/domain/pet"

type ActionType string

const (
	ActionFeed  ActionType = "feed"
	ActionClean ActionType = "clean"
	ActionPlay  ActionType = "play"
	ActionSleep ActionType = "sleep"
	ActionWake  ActionType = "wake"
	ActionHeal  ActionType = "heal"
)

type Request struct {
	AccountID string
	PetID     string
	Action    ActionType
	FoodID    int
}

type Response struct {
	Pet           pet.Pet           `json:"pet"`
	Applied       bool              `json:"applied"`
	DeclineCode   pet.Decline       `json:"decline_code,omitempty"`
	StatusMessage string            `json:"status_message"`
	ExpGained     int               `json:"exp_gained,omitempty"`
	Events        []pet.DomainEvent `json:"events"`
}
