package minigame

import (
	"context"
	"sort"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/economy"
	"quackmate/internal/domain/pet"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubPetRepo struct {
	byID map[string]pet.Pet
}

func (r *stubPetRepo) GetByID(_ context.Context, petID string) (pet.Pet, error) {
	p, ok := r.byID[petID]
	if !ok {
		return pet.Pet{}, ports.ErrNotFound
	}
	return p, nil
}

func (r *stubPetRepo) ListByAccountID(_ context.Context, accountID string) ([]pet.Pet, error) {
	out := []pet.Pet{}
	for _, p := range r.byID {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPetRepo) SaveWithVersion(_ context.Context, p pet.Pet, expectedVersion int64) error {
	current, ok := r.byID[p.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.byID[p.ID] = p
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byID[p.ID] = p
	return nil
}

func (r *stubPetRepo) DeleteByAccountID(_ context.Context, accountID string) error {
	for id, p := range r.byID {
		if p.AccountID == accountID {
			delete(r.byID, id)
		}
	}
	return nil
}

type stubAccountRepo struct {
	byID map[string]economy.Account
}

func (r *stubAccountRepo) GetByID(_ context.Context, accountID string) (economy.Account, error) {
	a, ok := r.byID[accountID]
	if !ok {
		return economy.Account{}, ports.ErrNotFound
	}
	return a, nil
}

func (r *stubAccountRepo) GetByUsername(_ context.Context, username string) (economy.Account, error) {
	for _, a := range r.byID {
		if a.Username == username {
			return a, nil
		}
	}
	return economy.Account{}, ports.ErrNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account economy.Account) error {
	if _, ok := r.byID[account.ID]; ok {
		return ports.ErrConflict
	}
	r.byID[account.ID] = account
	return nil
}

func (r *stubAccountRepo) Update(_ context.Context, account economy.Account) error {
	r.byID[account.ID] = account
	return nil
}

func (r *stubAccountRepo) Deactivate(_ context.Context, accountID string) error {
	a, ok := r.byID[accountID]
	if !ok {
		return ports.ErrNotFound
	}
	a.Active = false
	r.byID[accountID] = a
	return nil
}

type stubSessionRepo struct {
	sessions []economy.MiniGameSession
}

func (r *stubSessionRepo) Append(_ context.Context, session economy.MiniGameSession) error {
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *stubSessionRepo) ListByAccountID(_ context.Context, accountID string, limit int) ([]economy.MiniGameSession, error) {
	out := []economy.MiniGameSession{}
	for _, s := range r.sessions {
		if s.AccountID == accountID {
			out = append(out, s)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubSessionRepo) ListTopByGameType(_ context.Context, gameType string, limit int) ([]economy.MiniGameSession, error) {
	out := []economy.MiniGameSession{}
	for _, s := range r.sessions {
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

type stubEventRepo struct {
	events []pet.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []pet.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByPetID(_ context.Context, _ string, limit int) ([]pet.DomainEvent, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]pet.DomainEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}

type stubActionMetrics struct {
	appliedCalls  int
	declinedCalls int
	conflictCalls int
	failureCalls  int
	lastDecline   pet.Decline
}

func (m *stubActionMetrics) RecordApplied(string) { m.appliedCalls++ }

func (m *stubActionMetrics) RecordDeclined(_ string, code pet.Decline) {
	m.declinedCalls++
	m.lastDecline = code
}

func (m *stubActionMetrics) RecordConflict() { m.conflictCalls++ }

func (m *stubActionMetrics) RecordFailure() { m.failureCalls++ }
