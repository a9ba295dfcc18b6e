// Package economy covers the player-facing progression loop: coins,
// experience, levels, and the mini-game session log.
package economy

import (
	"time"

	"quackmate/internal/domain/inventory"
)

const (
	StartingCoins = 100

	// ExpPerLevel is the experience bucket size; level is always recomputed
	// as experience/ExpPerLevel + 1, never stored independently.
	ExpPerLevel = 100

	// LevelUpBonusCoins is granted per level gained, a side effect of
	// leveling rather than of the raw experience grant.
	LevelUpBonusCoins = 50
)

type Account struct {
	ID         string              `json:"id"`
	Username   string              `json:"username"`
	PassSalt   []byte              `json:"-"`
	PassHash   []byte              `json:"-"`
	Coins      int                 `json:"coins"`
	Experience int                 `json:"experience"`
	OwnedHats  inventory.Inventory `json:"-"`
	OwnedFoods inventory.Inventory `json:"-"`
	CreatedAt  time.Time           `json:"created_at"`
	LastLogin  time.Time           `json:"last_login"`
	Active     bool                `json:"active"`
}

func NewAccount(id, username string, salt, hash []byte, now time.Time) Account {
	return Account{
		ID:        id,
		Username:  username,
		PassSalt:  salt,
		PassHash:  hash,
		Coins:     StartingCoins,
		CreatedAt: now,
		LastLogin: now,
		Active:    true,
	}
}

// Level is derived from cumulative experience; every ExpPerLevel is a level.
func (a Account) Level() int {
	return a.Experience/ExpPerLevel + 1
}

// AddExperience grants exp (negative grants are ignored), recomputes the
// level and pays the level-up coin bonus. Returns the number of levels
// gained.
func (a *Account) AddExperience(exp int) int {
	if exp <= 0 {
		return 0
	}
	before := a.Level()
	a.Experience += exp
	gained := a.Level() - before
	if gained > 0 {
		a.Coins += gained * LevelUpBonusCoins
	}
	return gained
}

// AddCoins is unconditional for non-negative amounts.
func (a *Account) AddCoins(amount int) {
	if amount < 0 {
		return
	}
	a.Coins += amount
}

// SpendCoins decrements only when the balance covers the amount; an
// insufficient balance declines the spend and leaves coins untouched.
func (a *Account) SpendCoins(amount int) bool {
	if amount < 0 || a.Coins < amount {
		return false
	}
	a.Coins -= amount
	return true
}

func (a Account) CanAfford(price int) bool {
	return a.Coins >= price
}
