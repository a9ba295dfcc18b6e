package memory

import (
	"context"
	"sort"

	"quackmate/internal/domain/economy"
)

type GameSessionRepo struct {
	store *Store
}

func NewGameSessionRepo(store *Store) GameSessionRepo {
	return GameSessionRepo{store: store}
}

func (r GameSessionRepo) Append(_ context.Context, session economy.MiniGameSession) error {
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r GameSessionRepo) ListByAccountID(_ context.Context, accountID string, limit int) ([]economy.MiniGameSession, error) {
	out := []economy.MiniGameSession{}
	for _, s := range r.store.sessions {
		if s.AccountID == accountID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayedAt.After(out[j].PlayedAt) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r GameSessionRepo) ListTopByGameType(_ context.Context, gameType string, limit int) ([]economy.MiniGameSession, error) {
	out := []economy.MiniGameSession{}
	for _, s := range r.store.sessions {
		if s.GameType == gameType {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
