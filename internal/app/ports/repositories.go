package ports

import (
	"context"

	"quackmate/internal/domain/catalog"
	"quackmate/internal/domain/economy"
	"quackmate/internal/domain/pet"
)

type PetRepository interface {
	GetByID(ctx context.Context, petID string) (pet.Pet, error)
	ListByAccountID(ctx context.Context, accountID string) ([]pet.Pet, error)
	// SaveWithVersion persists the pet only if the stored version still
	// matches expectedVersion. expectedVersion 0 means create.
	SaveWithVersion(ctx context.Context, p pet.Pet, expectedVersion int64) error
	DeleteByAccountID(ctx context.Context, accountID string) error
}

type AccountRepository interface {
	GetByID(ctx context.Context, accountID string) (economy.Account, error)
	GetByUsername(ctx context.Context, username string) (economy.Account, error)
	Create(ctx context.Context, account economy.Account) error
	Update(ctx context.Context, account economy.Account) error
	Deactivate(ctx context.Context, accountID string) error
}

type GameSessionRepository interface {
	Append(ctx context.Context, session economy.MiniGameSession) error
	ListByAccountID(ctx context.Context, accountID string, limit int) ([]economy.MiniGameSession, error)
	ListTopByGameType(ctx context.Context, gameType string, limit int) ([]economy.MiniGameSession, error)
}

type EventRepository interface {
	Append(ctx context.Context, petID string, events []pet.DomainEvent) error
	ListByPetID(ctx context.Context, petID string, limit int) ([]pet.DomainEvent, error)
}

type CatalogProvider interface {
	FoodByID(id int) (catalog.Food, bool)
	HatByID(id int) (catalog.Hat, bool)
	Foods() []catalog.Food
	Hats() []catalog.Hat
}
