package petcare

import (
	"context"
	"errors"
	"strings"
	"time"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/pet"
)

const feedExpReward = 5

var (
	ErrInvalidRequest = errors.New("invalid care request")
	ErrNotPetOwner    = errors.New("pet does not belong to account")
	ErrUnknownFood    = errors.New("unknown food")
	ErrFoodNotOwned   = errors.New("food not in inventory")
)

type UseCase struct {
	TxManager ports.TxManager
	Pets      ports.PetRepository
	Accounts  ports.AccountRepository
	Events    ports.EventRepository
	Catalog   ports.CatalogProvider
	Metrics   ports.ActionMetrics
	Care      pet.CareService
	Now       func() time.Time
	Roll      func() float64
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	req.PetID = strings.TrimSpace(req.PetID)
	req.Action = ActionType(strings.TrimSpace(string(req.Action)))
	if req.AccountID == "" || req.PetID == "" || !isSupportedAction(req.Action) {
		return Response{}, ErrInvalidRequest
	}
	if req.Action == ActionFeed && req.FoodID <= 0 {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := u.Pets.GetByID(txCtx, req.PetID)
		if err != nil {
			return err
		}
		if current.AccountID != req.AccountID {
			return ErrNotPetOwner
		}

		updated, events := u.Care.Tick(current, now, u.Roll)

		applied, expGained, actionEvents, err := u.dispatch(txCtx, &updated, req, now)
		if err != nil {
			return err
		}
		events = append(events, actionEvents...)

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

		out = Response{
			Pet:           updated,
			Applied:       applied == pet.DeclineNone,
			DeclineCode:   applied,
			StatusMessage: updated.StatusMessage(),
			ExpGained:     expGained,
			Events:        events,
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
		return Response{}, err
	}
	if u.Metrics != nil {
		if out.Applied {
			u.Metrics.RecordApplied(string(req.Action))
		} else {
			u.Metrics.RecordDeclined(string(req.Action), out.DeclineCode)
		}
	}
	return out, nil
}

// dispatch applies the requested action to *p in place and reports the
// decline code, feeding experience, and any events it produced.
func (u UseCase) dispatch(ctx context.Context, p *pet.Pet, req Request, now time.Time) (pet.Decline, int, []pet.DomainEvent, error) {
	switch req.Action {
	case ActionFeed:
		return u.feed(ctx, p, req, now)
	case ActionClean:
		next, code := u.Care.Clean(*p, now)
		*p = next
		if code != pet.DeclineNone {
			return code, 0, nil, nil
		}
		return code, 0, []pet.DomainEvent{{
			Type:       pet.EventCleaned,
			OccurredAt: now,
			Payload:    map[string]any{"cleanliness": next.Cleanliness},
		}}, nil
	case ActionPlay:
		next, code := u.Care.Play(*p, now)
		*p = next
		return code, 0, nil, nil
	case ActionSleep:
		next, code := u.Care.Sleep(*p, now)
		*p = next
		return code, 0, nil, nil
	case ActionWake:
		next, code := u.Care.Wake(*p, now)
		*p = next
		if code != pet.DeclineNone {
			return code, 0, nil, nil
		}
		return code, 0, []pet.DomainEvent{{
			Type:       pet.EventWoke,
			OccurredAt: now,
			Payload:    map[string]any{"health": next.Health},
		}}, nil
	case ActionHeal:
		next, code := u.Care.Heal(*p, now)
		*p = next
		if code != pet.DeclineNone {
			return code, 0, nil, nil
		}
		return code, 0, []pet.DomainEvent{{
			Type:       pet.EventHealed,
			OccurredAt: now,
			Payload:    map[string]any{"health": next.Health},
		}}, nil
	default:
		return pet.DeclineNone, 0, nil, ErrInvalidRequest
	}
}

func (u UseCase) feed(ctx context.Context, p *pet.Pet, req Request, now time.Time) (pet.Decline, int, []pet.DomainEvent, error) {
	if code := pet.GuardCanAct(*p); code != pet.DeclineNone {
		return code, 0, nil, nil
	}
	food, ok := u.Catalog.FoodByID(req.FoodID)
	if !ok {
		return pet.DeclineNone, 0, nil, ErrUnknownFood
	}
	account, err := u.Accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return pet.DeclineNone, 0, nil, err
	}
	if !account.OwnedFoods.Contains(food.ID) {
		return pet.DeclineNone, 0, nil, ErrFoodNotOwned
	}

	next, code := u.Care.Feed(*p, food, now)
	*p = next
	if code != pet.DeclineNone {
		return code, 0, nil, nil
	}

	account.OwnedFoods.Remove(food.ID)
	account.AddExperience(feedExpReward)
	if err := u.Accounts.Update(ctx, account); err != nil {
		return pet.DeclineNone, 0, nil, err
	}
	return code, feedExpReward, []pet.DomainEvent{{
		Type:       pet.EventFed,
		OccurredAt: now,
		Payload:    map[string]any{"food_id": food.ID, "food_name": food.Name, "hunger": next.Hunger},
	}}, nil
}

func isSupportedAction(t ActionType) bool {
	switch t {
	case ActionFeed, ActionClean, ActionPlay, ActionSleep, ActionWake, ActionHeal:
		return true
	default:
		return false
	}
}
