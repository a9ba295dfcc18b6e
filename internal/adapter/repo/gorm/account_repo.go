package gormrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"quackmate/internal/adapter/repo/gorm/model"
	"quackmate/internal/app/ports"
	"quackmate/internal/domain/economy"
	"quackmate/internal/domain/inventory"

	"gorm.io/gorm"
)

type AccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return AccountRepo{db: db}
}

func (r AccountRepo) GetByID(ctx context.Context, accountID string) (economy.Account, error) {
	var row model.Account
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", accountID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return economy.Account{}, ports.ErrNotFound
		}
		return economy.Account{}, err
	}
	return toDomainAccount(row), nil
}

func (r AccountRepo) GetByUsername(ctx context.Context, username string) (economy.Account, error) {
	var row model.Account
	if err := getDBFromCtx(ctx, r.db).Where("username = ?", username).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return economy.Account{}, ports.ErrNotFound
		}
		return economy.Account{}, err
	}
	return toDomainAccount(row), nil
}

func (r AccountRepo) Create(ctx context.Context, account economy.Account) error {
	row := toAccountRow(account)
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r AccountRepo) Update(ctx context.Context, account economy.Account) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"coins":       int32(account.Coins),
			"experience":  int32(account.Experience),
			"owned_hats":  account.OwnedHats.Encode(),
			"owned_foods": account.OwnedFoods.Encode(),
			"last_login":  account.LastLogin,
			"active":      account.Active,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r AccountRepo) Deactivate(ctx context.Context, accountID string) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]any{"active": false, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func toDomainAccount(row model.Account) economy.Account {
	return economy.Account{
		ID:         row.ID,
		Username:   row.Username,
		PassSalt:   row.PassSalt,
		PassHash:   row.PassHash,
		Coins:      int(row.Coins),
		Experience: int(row.Experience),
		OwnedHats:  inventory.Parse(row.OwnedHats),
		OwnedFoods: inventory.Parse(row.OwnedFoods),
		CreatedAt:  row.CreatedAt,
		LastLogin:  row.LastLogin,
		Active:     row.Active,
	}
}

func toAccountRow(account economy.Account) model.Account {
	return model.Account{
		ID:         account.ID,
		Username:   account.Username,
		PassSalt:   account.PassSalt,
		PassHash:   account.PassHash,
		Coins:      int32(account.Coins),
		Experience: int32(account.Experience),
		OwnedHats:  account.OwnedHats.Encode(),
		OwnedFoods: account.OwnedFoods.Encode(),
		CreatedAt:  account.CreatedAt,
		LastLogin:  account.LastLogin,
		Active:     account.Active,
		UpdatedAt:  time.Now().UTC(),
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
