package memory

import (
	"context"
	"sort"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/pet"
)

type PetRepo struct {
	store *Store
}

func NewPetRepo(store *Store) PetRepo {
	return PetRepo{store: store}
}

func (r PetRepo) GetByID(_ context.Context, petID string) (pet.Pet, error) {
	p, ok := r.store.pets[petID]
	if !ok {
		return pet.Pet{}, ports.ErrNotFound
	}
	return p, nil
}

func (r PetRepo) ListByAccountID(_ context.Context, accountID string) ([]pet.Pet, error) {
	out := []pet.Pet{}
	for _, p := range r.store.pets {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r PetRepo) SaveWithVersion(_ context.Context, p pet.Pet, expectedVersion int64) error {
	current, ok := r.store.pets[p.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.pets[p.ID] = p
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.pets[p.ID] = p
	return nil
}

func (r PetRepo) DeleteByAccountID(_ context.Context, accountID string) error {
	for id, p := range r.store.pets {
		if p.AccountID == accountID {
			delete(r.store.pets, id)
		}
	}
	return nil
}
