// Package catalog holds the static, read-only definitions of purchasable
// items. Entries are immutable once loaded and referenced by id from account
// inventories.
package catalog

type FoodType string

const (
	FoodBasic    FoodType = "basic"
	FoodPremium  FoodType = "premium"
	FoodTreat    FoodType = "treat"
	FoodMedicine FoodType = "medicine"
)

type Food struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          int      `json:"price"`
	HungerRestore  int      `json:"hunger_restore"`
	HealthRestore  int      `json:"health_restore"`
	HappinessBonus int      `json:"happiness_bonus"`
	Type           FoodType `json:"food_type"`
}

type Hat struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int    `json:"price"`
	HappinessBonus int    `json:"happiness_bonus"`
}
