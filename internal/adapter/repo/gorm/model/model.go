package model

import "time"

type Pet struct {
	ID             string `gorm:"primaryKey"`
	AccountID      string `gorm:"index"`
	Name           string
	Health         int32
	Hunger         int32
	Happiness      int32
	Cleanliness    int32
	State          string
	Alive          bool
	Sick           bool
	EquippedHat    int32
	CreatedAt      time.Time
	LastFed        time.Time
	LastCleaned    time.Time
	LastPlayed     time.Time
	SleepStartedAt *time.Time
	LastDecayAt    time.Time
	Version        int64
	UpdatedAt      time.Time
}

func (Pet) TableName() string { return "pets" }

type Account struct {
	ID         string `gorm:"primaryKey"`
	Username   string `gorm:"uniqueIndex"`
	PassSalt   []byte
	PassHash   []byte
	Coins      int32
	Experience int32
	// Bracket-encoded item ID lists, e.g. "[1,2,2]".
	OwnedHats  string
	OwnedFoods string
	CreatedAt  time.Time
	LastLogin  time.Time
	Active     bool
	UpdatedAt  time.Time
}

func (Account) TableName() string { return "accounts" }

type GameSession struct {
	ID          string `gorm:"primaryKey"`
	AccountID   string `gorm:"index"`
	PetID       string `gorm:"index"`
	GameType    string
	Score       int32
	CoinsEarned int32
	ExpEarned   int32
	PlayedAt    time.Time
}

func (GameSession) TableName() string { return "game_sessions" }

type DomainEvent struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	PetID      string `gorm:"index"`
	Type       string
	OccurredAt time.Time
	Payload    []byte
}

func (DomainEvent) TableName() string { return "domain_events" }
