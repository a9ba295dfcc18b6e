package shop

import (
	"context"
	"errors"
	"strings"
	"time"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/pet"
)

var (
	ErrInvalidRequest    = errors.New("invalid shop request")
	ErrUnknownItem       = errors.New("unknown item")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrHatNotOwned       = errors.New("hat not owned")
	ErrNotPetOwner       = errors.New("pet does not belong to account")
	ErrPetDead           = errors.New("pet is dead")
)

type ItemType string

const (
	ItemFood ItemType = "food"
	ItemHat  ItemType = "hat"
)

type BuyRequest struct {
	AccountID string
	ItemType  ItemType
	ItemID    int
}

type BuyResponse struct {
	ItemID    int    `json:"item_id"`
	ItemName  string `json:"item_name"`
	Price     int    `json:"price"`
	Coins     int    `json:"coins"`
	Inventory string `json:"inventory"`
}

type EquipHatRequest struct {
	AccountID string
	PetID     string
	HatID     int
}

type EquipHatResponse struct {
	Pet pet.Pet `json:"pet"`
}

type BuyUseCase struct {
	Accounts ports.AccountRepository
	Catalog  ports.CatalogProvider
}

type EquipHatUseCase struct {
	Accounts ports.AccountRepository
	Pets     ports.PetRepository
	Catalog  ports.CatalogProvider
	Now      func() time.Time
}

func (u BuyUseCase) Execute(ctx context.Context, req BuyRequest) (BuyResponse, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	if req.AccountID == "" || req.ItemID <= 0 {
		return BuyResponse{}, ErrInvalidRequest
	}

	var name string
	var price int
	switch req.ItemType {
	case ItemFood:
		food, ok := u.Catalog.FoodByID(req.ItemID)
		if !ok {
			return BuyResponse{}, ErrUnknownItem
		}
		name, price = food.Name, food.Price
	case ItemHat:
		hat, ok := u.Catalog.HatByID(req.ItemID)
		if !ok {
			return BuyResponse{}, ErrUnknownItem
		}
		name, price = hat.Name, hat.Price
	default:
		return BuyResponse{}, ErrInvalidRequest
	}

	account, err := u.Accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return BuyResponse{}, err
	}
	if req.ItemType == ItemHat && account.OwnedHats.Contains(req.ItemID) {
		return BuyResponse{}, ErrAlreadyOwned
	}
	if !account.SpendCoins(price) {
		return BuyResponse{}, ErrInsufficientCoins
	}

	var encoded string
	if req.ItemType == ItemFood {
		account.OwnedFoods.Add(req.ItemID)
		encoded = account.OwnedFoods.Encode()
	} else {
		account.OwnedHats.AddUnique(req.ItemID)
		encoded = account.OwnedHats.Encode()
	}
	if err := u.Accounts.Update(ctx, account); err != nil {
		return BuyResponse{}, err
	}

	return BuyResponse{
		ItemID:    req.ItemID,
		ItemName:  name,
		Price:     price,
		Coins:     account.Coins,
		Inventory: encoded,
	}, nil
}

// Execute equips an owned hat on a living pet. HatID zero takes the
// current hat off.
func (u EquipHatUseCase) Execute(ctx context.Context, req EquipHatRequest) (EquipHatResponse, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	req.PetID = strings.TrimSpace(req.PetID)
	if req.AccountID == "" || req.PetID == "" || req.HatID < 0 {
		return EquipHatResponse{}, ErrInvalidRequest
	}

	if req.HatID > 0 {
		if _, ok := u.Catalog.HatByID(req.HatID); !ok {
			return EquipHatResponse{}, ErrUnknownItem
		}
		account, err := u.Accounts.GetByID(ctx, req.AccountID)
		if err != nil {
			return EquipHatResponse{}, err
		}
		if !account.OwnedHats.Contains(req.HatID) {
			return EquipHatResponse{}, ErrHatNotOwned
		}
	}

	current, err := u.Pets.GetByID(ctx, req.PetID)
	if err != nil {
		return EquipHatResponse{}, err
	}
	if current.AccountID != req.AccountID {
		return EquipHatResponse{}, ErrNotPetOwner
	}
	if !current.Alive {
		return EquipHatResponse{}, ErrPetDead
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	updated := current
	updated.EquippedHat = req.HatID
	updated.Version = current.Version + 1
	updated.UpdatedAt = nowFn().UTC()
	if err := u.Pets.SaveWithVersion(ctx, updated, current.Version); err != nil {
		return EquipHatResponse{}, err
	}
	return EquipHatResponse{Pet: updated}, nil
}
