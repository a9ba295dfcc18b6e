package pet

import "time"

type State string

const (
	StateIdle     State = "IDLE"
	StateEating   State = "EATING"
	StateSleeping State = "SLEEPING"
	StatePlaying  State = "PLAYING"
	StateBathing  State = "BATHING"
	StateDead     State = "DEAD"
)

// Pet is the simulated animal aggregate. Vitals are always kept in [0,100]
// through the Set* methods; callers never write the fields directly.
type Pet struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Name        string `json:"name"`
	Health      int    `json:"health"`
	Hunger      int    `json:"hunger"`
	Happiness   int    `json:"happiness"`
	Cleanliness int    `json:"cleanliness"`
	State       State  `json:"state"`
	Alive       bool   `json:"alive"`
	Sick        bool   `json:"sick"`
	EquippedHat int    `json:"equipped_hat,omitempty"`

	CreatedAt      time.Time `json:"created_at"`
	LastFed        time.Time `json:"last_fed"`
	LastCleaned    time.Time `json:"last_cleaned"`
	LastPlayed     time.Time `json:"last_played"`
	SleepStartedAt time.Time `json:"sleep_started_at,omitempty"`
	LastDecayAt    time.Time `json:"last_decay_at"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Decline reports why an action was not applied. Empty means applied.
type Decline string

const (
	DeclineNone         Decline = ""
	DeclineInvalidState Decline = "INVALID_STATE"
	DeclineNotSleeping  Decline = "NOT_SLEEPING"
	DeclineNotSick      Decline = "NOT_SICK"
	DeclineDead         Decline = "PET_DEAD"
)

type GameResult struct {
	HappinessGain int    `json:"happiness_gain"`
	CoinReward    int    `json:"coin_reward"`
	ExpGain       int    `json:"exp_gain"`
	GameScore     int    `json:"game_score"`
	Success       bool   `json:"success"`
	Message       string `json:"message"`
}

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventDecayApplied = "decay_applied"
	EventGotSick      = "pet_got_sick"
	EventDied         = "pet_died"
	EventFed          = "pet_fed"
	EventCleaned      = "pet_cleaned"
	EventHealed       = "pet_healed"
	EventWoke         = "pet_woke"
	EventGamePlayed   = "game_played"
)
