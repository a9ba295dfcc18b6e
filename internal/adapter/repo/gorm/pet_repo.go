package gormrepo

import (
	"context"
	"errors"
	"time"

	"quackmate/internal/adapter/repo/gorm/model"
	"quackmate/internal/app/ports"
	"quackmate/internal/domain/pet"

	"gorm.io/gorm"
)

type PetRepo struct {
	db *gorm.DB
}

func NewPetRepo(db *gorm.DB) PetRepo {
	return PetRepo{db: db}
}

func (r PetRepo) GetByID(ctx context.Context, petID string) (pet.Pet, error) {
	var row model.Pet
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", petID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pet.Pet{}, ports.ErrNotFound
		}
		return pet.Pet{}, err
	}
	return toDomainPet(row), nil
}

func (r PetRepo) ListByAccountID(ctx context.Context, accountID string) ([]pet.Pet, error) {
	rows := []model.Pet{}
	if err := getDBFromCtx(ctx, r.db).Where("account_id = ?", accountID).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]pet.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainPet(row))
	}
	return out, nil
}

func (r PetRepo) SaveWithVersion(ctx context.Context, p pet.Pet, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		row := toPetRow(p)
		if err := db.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	res := db.Model(&model.Pet{}).
		Where("id = ? AND version = ?", p.ID, expectedVersion).
		Updates(petUpdates(p))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r PetRepo) DeleteByAccountID(ctx context.Context, accountID string) error {
	return getDBFromCtx(ctx, r.db).Where("account_id = ?", accountID).Delete(&model.Pet{}).Error
}

func toDomainPet(row model.Pet) pet.Pet {
	p := pet.Pet{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Name:        row.Name,
		Health:      int(row.Health),
		Hunger:      int(row.Hunger),
		Happiness:   int(row.Happiness),
		Cleanliness: int(row.Cleanliness),
		State:       pet.State(row.State),
		Alive:       row.Alive,
		Sick:        row.Sick,
		EquippedHat: int(row.EquippedHat),
		CreatedAt:   row.CreatedAt,
		LastFed:     row.LastFed,
		LastCleaned: row.LastCleaned,
		LastPlayed:  row.LastPlayed,
		LastDecayAt: row.LastDecayAt,
		Version:     row.Version,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.SleepStartedAt != nil {
		p.SleepStartedAt = *row.SleepStartedAt
	}
	return p
}

func toPetRow(p pet.Pet) model.Pet {
	row := model.Pet{
		ID:          p.ID,
		AccountID:   p.AccountID,
		Name:        p.Name,
		Health:      int32(p.Health),
		Hunger:      int32(p.Hunger),
		Happiness:   int32(p.Happiness),
		Cleanliness: int32(p.Cleanliness),
		State:       string(p.State),
		Alive:       p.Alive,
		Sick:        p.Sick,
		EquippedHat: int32(p.EquippedHat),
		CreatedAt:   p.CreatedAt,
		LastFed:     p.LastFed,
		LastCleaned: p.LastCleaned,
		LastPlayed:  p.LastPlayed,
		LastDecayAt: p.LastDecayAt,
		Version:     p.Version,
		UpdatedAt:   p.UpdatedAt,
	}
	if !p.SleepStartedAt.IsZero() {
		t := p.SleepStartedAt
		row.SleepStartedAt = &t
	}
	return row
}

func petUpdates(p pet.Pet) map[string]any {
	var sleepStartedAt *time.Time
	if !p.SleepStartedAt.IsZero() {
		t := p.SleepStartedAt
		sleepStartedAt = &t
	}
	return map[string]any{
		"name":             p.Name,
		"health":           int32(p.Health),
		"hunger":           int32(p.Hunger),
		"happiness":        int32(p.Happiness),
		"cleanliness":      int32(p.Cleanliness),
		"state":            string(p.State),
		"alive":            p.Alive,
		"sick":             p.Sick,
		"equipped_hat":     int32(p.EquippedHat),
		"last_fed":         p.LastFed,
		"last_cleaned":     p.LastCleaned,
		"last_played":      p.LastPlayed,
		"sleep_started_at": sleepStartedAt,
		"last_decay_at":    p.LastDecayAt,
		"version":          p.Version,
		"updated_at":       p.UpdatedAt,
	}
}
