package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/pet"
)

var (
	ErrInvalidRequest = errors.New("invalid history request")
	ErrNotPetOwner    = errors.New("pet does not belong to account")
)

type UseCase struct {
	Pets   ports.PetRepository
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	req.PetID = strings.TrimSpace(req.PetID)
	if req.AccountID == "" || req.PetID == "" {
		return Response{}, ErrInvalidRequest
	}

	p, err := u.Pets.GetByID(ctx, req.PetID)
	if err != nil {
		return Response{}, err
	}
	if p.AccountID != req.AccountID {
		return Response{}, ErrNotPetOwner
	}

	events, err := u.Events.ListByPetID(ctx, req.PetID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{Events: events, LatestVitals: reconstruct(events)}, nil
}

func filterByTimeWindow(events []pet.DomainEvent, from, to int64) []pet.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]pet.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct returns the vitals snapshot carried by the most recent event.
// Repositories disagree on ordering, so the timestamp decides, not position.
func reconstruct(events []pet.DomainEvent) Vitals {
	var v Vitals
	var latest time.Time
	for _, evt := range events {
		after, ok := evt.Payload["state_after"].(map[string]any)
		if !ok {
			continue
		}
		if !latest.IsZero() && evt.OccurredAt.Before(latest) {
			continue
		}
		latest = evt.OccurredAt
		v.Health = int(num(after["health"]))
		v.Hunger = int(num(after["hunger"]))
		v.Happiness = int(num(after["happiness"]))
		v.Cleanliness = int(num(after["cleanliness"]))
	}
	return v
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
