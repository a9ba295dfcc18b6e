package memory

import (
	"context"

	"quackmate/internal/domain/pet"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, petID string, events []pet.DomainEvent) error {
	r.store.events[petID] = append(r.store.events[petID], events...)
	return nil
}

func (r EventRepo) ListByPetID(_ context.Context, petID string, limit int) ([]pet.DomainEvent, error) {
	events := r.store.events[petID]
	if limit <= 0 || limit > len(events) {
		limit = len(events)
	}
	out := make([]pet.DomainEvent, limit)
	copy(out, events[:limit])
	return out, nil
}
