package minigame

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/economy"
	"quackmate/internal/domain/pet"
)

const defaultListLimit = 20

var (
	ErrInvalidRequest = errors.New("invalid minigame request")
	ErrNotPetOwner    = errors.New("pet does not belong to account")
)

type FinishUseCase struct {
	TxManager ports.TxManager
	Pets      ports.PetRepository
	Accounts  ports.AccountRepository
	Sessions  ports.GameSessionRepository
	Events    ports.EventRepository
	Metrics   ports.ActionMetrics
	Care      pet.CareService
	Now       func() time.Time
	Roll      func() float64
}

type HistoryUseCase struct {
	Sessions ports.GameSessionRepository
}

type HighScoresUseCase struct {
	Sessions ports.GameSessionRepository
}

func (u FinishUseCase) Execute(ctx context.Context, req FinishRequest) (FinishResponse, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	req.PetID = strings.TrimSpace(req.PetID)
	req.GameType = strings.TrimSpace(req.GameType)
	if req.AccountID == "" || req.PetID == "" || req.GameType == "" {
		return FinishResponse{}, ErrInvalidRequest
	}

	score := req.Score
	if req.Total > 0 {
		score = economy.ScoreForPerformance(req.Correct, req.Total, req.TimeTakenSeconds)
	}
	if score < 0 || score > 100 {
		return FinishResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	var out FinishResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := u.Pets.GetByID(txCtx, req.PetID)
		if err != nil {
			return err
		}
		if current.AccountID != req.AccountID {
			return ErrNotPetOwner
		}

		updated, events := u.Care.Tick(current, now, u.Roll)
		next, result, code := u.Care.ApplyGameResult(updated, score, now)
		updated = next

		var account economy.Account
		var levels int
		if code == pet.DeclineNone {
			account, err = u.Accounts.GetByID(txCtx, req.AccountID)
			if err != nil {
				return err
			}
			account.AddCoins(result.CoinReward)
			levels = account.AddExperience(result.ExpGain)
			if err := u.Accounts.Update(txCtx, account); err != nil {
				return err
			}

			if err := u.Sessions.Append(txCtx, economy.MiniGameSession{
				ID:          uuid.NewString(),
				AccountID:   req.AccountID,
				PetID:       req.PetID,
				GameType:    req.GameType,
				Score:       score,
				CoinsEarned: result.CoinReward,
				ExpEarned:   result.ExpGain,
				PlayedAt:    now,
			}); err != nil {
				return err
			}

			events = append(events, pet.DomainEvent{
				Type:       pet.EventGamePlayed,
				OccurredAt: now,
				Payload: map[string]any{
					"game_type": req.GameType,
					"score":     score,
					"coins":     result.CoinReward,
					"exp":       result.ExpGain,
				},
			})
			if levels > 0 {
				events = append(events, pet.DomainEvent{
					Type:       "level_up",
					OccurredAt: now,
					Payload:    map[string]any{"level": account.Level(), "bonus_coins": levels * economy.LevelUpBonusCoins},
				})
			}
		}

		updated.Version = current.Version + 1
		updated.UpdatedAt = now
		if err := u.Pets.SaveWithVersion(txCtx, updated, current.Version); err != nil {
			return err
		}
		if len(events) > 0 {
			if err := u.Events.Append(txCtx, updated.ID, events); err != nil {
				return err
			}
		}

		out = FinishResponse{
			Pet:         updated,
			Applied:     code == pet.DeclineNone,
			DeclineCode: code,
			Result:      result,
		}
		if code == pet.DeclineNone {
			out.Coins = account.Coins
			out.Experience = account.Experience
			out.Level = account.Level()
			out.LevelsUp = levels
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return FinishResponse{}, err
	}
	if u.Metrics != nil {
		if out.Applied {
			u.Metrics.RecordApplied("minigame")
		} else {
			u.Metrics.RecordDeclined("minigame", out.DeclineCode)
		}
	}
	return out, nil
}

func (u HistoryUseCase) Execute(ctx context.Context, req HistoryRequest) (HistoryResponse, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	if req.AccountID == "" {
		return HistoryResponse{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	sessions, err := u.Sessions.ListByAccountID(ctx, req.AccountID, limit)
	if err != nil {
		return HistoryResponse{}, err
	}
	return HistoryResponse{Sessions: sessions}, nil
}

func (u HighScoresUseCase) Execute(ctx context.Context, req HighScoresRequest) (HighScoresResponse, error) {
	req.GameType = strings.TrimSpace(req.GameType)
	if req.GameType == "" {
		return HighScoresResponse{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	sessions, err := u.Sessions.ListTopByGameType(ctx, req.GameType, limit)
	if err != nil {
		return HighScoresResponse{}, err
	}
	return HighScoresResponse{Sessions: sessions}, nil
}
