package memory

import (
	"context"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/economy"
)

type AccountRepo struct {
	store *Store
}

func NewAccountRepo(store *Store) AccountRepo {
	return AccountRepo{store: store}
}

func (r AccountRepo) GetByID(_ context.Context, accountID string) (economy.Account, error) {
	a, ok := r.store.accounts[accountID]
	if !ok {
		return economy.Account{}, ports.ErrNotFound
	}
	return a, nil
}

func (r AccountRepo) GetByUsername(_ context.Context, username string) (economy.Account, error) {
	for _, a := range r.store.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return economy.Account{}, ports.ErrNotFound
}

func (r AccountRepo) Create(_ context.Context, account economy.Account) error {
	if _, ok := r.store.accounts[account.ID]; ok {
		return ports.ErrConflict
	}
	for _, a := range r.store.accounts {
		if a.Username == account.Username {
			return ports.ErrConflict
		}
	}
	r.store.accounts[account.ID] = account
	return nil
}

func (r AccountRepo) Update(_ context.Context, account economy.Account) error {
	if _, ok := r.store.accounts[account.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.accounts[account.ID] = account
	return nil
}

func (r AccountRepo) Deactivate(_ context.Context, accountID string) error {
	a, ok := r.store.accounts[accountID]
	if !ok {
		return ports.ErrNotFound
	}
	a.Active = false
	r.store.accounts[accountID] = a
	return nil
}
