package petcare

import (
	"context"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/catalog"
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

type conflictOnSavePetRepo struct {
	stubPetRepo
}

func (r *conflictOnSavePetRepo) SaveWithVersion(_ context.Context, _ pet.Pet, _ int64) error {
	return ports.ErrConflict
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

type stubCatalog struct {
	foods map[int]catalog.Food
	hats  map[int]catalog.Hat
}

func (c stubCatalog) FoodByID(id int) (catalog.Food, bool) {
	f, ok := c.foods[id]
	return f, ok
}

func (c stubCatalog) HatByID(id int) (catalog.Hat, bool) {
	h, ok := c.hats[id]
	return h, ok
}

func (c stubCatalog) Foods() []catalog.Food {
	out := make([]catalog.Food, 0, len(c.foods))
	for _, f := range c.foods {
		out = append(out, f)
	}
	return out
}

func (c stubCatalog) Hats() []catalog.Hat {
	out := make([]catalog.Hat, 0, len(c.hats))
	for _, h := range c.hats {
		out = append(out, h)
	}
	return out
}

type stubActionMetrics struct {
	appliedCalls  int
	declinedCalls int
	conflictCalls int
	failureCalls  int
	lastAction    string
	lastDecline   pet.Decline
}

func (m *stubActionMetrics) RecordApplied(action string) {
	m.appliedCalls++
	m.lastAction = action
}

func (m *stubActionMetrics) RecordDeclined(action string, code pet.Decline) {
	m.declinedCalls++
	m.lastAction = action
	m.lastDecline = code
}

func (m *stubActionMetrics) RecordConflict() {
	m.conflictCalls++
}

func (m *stubActionMetrics) RecordFailure() {
	m.failureCalls++
}
