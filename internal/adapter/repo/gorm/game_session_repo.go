package gormrepo

import (
	"context"

	"quackmate/internal/adapter/repo/gorm/model"
	"quackmate/internal/domain/economy"

	"gorm.io/gorm"
)

type GameSessionRepo struct {
	db *gorm.DB
}

func NewGameSessionRepo(db *gorm.DB) GameSessionRepo {
	return GameSessionRepo{db: db}
}

func (r GameSessionRepo) Append(ctx context.Context, session economy.MiniGameSession) error {
	row := model.GameSession{
		ID:          session.ID,
		AccountID:   session.AccountID,
		PetID:       session.PetID,
		GameType:    session.GameType,
		Score:       int32(session.Score),
		CoinsEarned: int32(session.CoinsEarned),
		ExpEarned:   int32(session.ExpEarned),
		PlayedAt:    session.PlayedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}

func (r GameSessionRepo) ListByAccountID(ctx context.Context, accountID string, limit int) ([]economy.MiniGameSession, error) {
	rows := []model.GameSession{}
	query := getDBFromCtx(ctx, r.db).
		Where("account_id = ?", accountID).
		Order("played_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainSessions(rows), nil
}

func (r GameSessionRepo) ListTopByGameType(ctx context.Context, gameType string, limit int) ([]economy.MiniGameSession, error) {
	rows := []model.GameSession{}
	query := getDBFromCtx(ctx, r.db).
		Where("game_type = ?", gameType).
		Order("score DESC, played_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainSessions(rows), nil
}

func toDomainSessions(rows []model.GameSession) []economy.MiniGameSession {
	out := make([]economy.MiniGameSession, 0, len(rows))
	for _, row := range rows {
		out = append(out, economy.MiniGameSession{
			ID:          row.ID,
			AccountID:   row.AccountID,
			PetID:       row.PetID,
			GameType:    row.GameType,
			Score:       int(row.Score),
			CoinsEarned: int(row.CoinsEarned),
			ExpEarned:   int(row.ExpEarned),
			PlayedAt:    row.PlayedAt,
		})
	}
	return out
}
