package minigame

import (
	"quackmate/internal/domain/economy"
	"quackmate/internal/domain/pet"
)

type FinishRequest struct {
	AccountID string
	PetID     string
	GameType  string

	// Score is used as-is when Total is zero; otherwise the score is
	// computed from the raw performance numbers.
	Score            int
	Correct          int
	Total            int
	TimeTakenSeconds int
}

type FinishResponse struct {
	Pet         pet.Pet        `json:"pet"`
	Applied     bool           `json:"applied"`
	DeclineCode pet.Decline    `json:"decline_code,omitempty"`
	Result      pet.GameResult `json:"result"`
	Coins       int            `json:"coins"`
	Experience  int            `json:"experience"`
	Level       int            `json:"level"`
	LevelsUp    int            `json:"levels_up"`
}

type HistoryRequest struct {
	AccountID string
	Limit     int
}

type HistoryResponse struct {
	Sessions []economy.MiniGameSession `json:"sessions"`
}

type HighScoresRequest struct {
	GameType string
	Limit    int
}

type HighScoresResponse struct {
	Sessions []economy.MiniGameSession `json:"sessions"`
}
