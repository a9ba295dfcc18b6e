package flock

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/pet"
)

const maxPetNameLength = 20

var (
	ErrInvalidRequest = errors.New("invalid flock request")
	ErrInvalidPetName = errors.New("pet name must be 1-20 printable characters")
	ErrNotPetOwner    = errors.New("pet does not belong to account")
)

type ListUseCase struct {
	Pets ports.PetRepository
	Care pet.CareService
}

type GetUseCase struct {
	Pets ports.PetRepository
	Care pet.CareService
}

type CreateUseCase struct {
	Pets ports.PetRepository
	Now  func() time.Time
}

func (u ListUseCase) Execute(ctx context.Context, req ListRequest) (ListResponse, error) {
	if strings.TrimSpace(req.AccountID) == "" {
		return ListResponse{}, ErrInvalidRequest
	}
	pets, err := u.Pets.ListByAccountID(ctx, req.AccountID)
	if err != nil {
		return ListResponse{}, err
	}
	views := make([]PetView, 0, len(pets))
	for _, p := range pets {
		views = append(views, PetView{
			Pet:           p,
			StatusMessage: p.StatusMessage(),
			Urgency:       EstimateCareUrgency(u.Care, p),
		})
	}
	return ListResponse{Pets: views}, nil
}

func (u GetUseCase) Execute(ctx context.Context, req GetRequest) (GetResponse, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	req.PetID = strings.TrimSpace(req.PetID)
	if req.AccountID == "" || req.PetID == "" {
		return GetResponse{}, ErrInvalidRequest
	}
	p, err := u.Pets.GetByID(ctx, req.PetID)
	if err != nil {
		return GetResponse{}, err
	}
	if p.AccountID != req.AccountID {
		return GetResponse{}, ErrNotPetOwner
	}
	return GetResponse{Pet: PetView{
		Pet:           p,
		StatusMessage: p.StatusMessage(),
		Urgency:       EstimateCareUrgency(u.Care, p),
	}}, nil
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	req.Name = strings.TrimSpace(req.Name)
	if req.AccountID == "" {
		return CreateResponse{}, ErrInvalidRequest
	}
	if !validPetName(req.Name) {
		return CreateResponse{}, ErrInvalidPetName
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	p := pet.New(uuid.NewString(), req.AccountID, req.Name, nowFn().UTC())
	if err := u.Pets.SaveWithVersion(ctx, p, 0); err != nil {
		return CreateResponse{}, err
	}
	return CreateResponse{Pet: p}, nil
}

func validPetName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > maxPetNameLength {
		return false
	}
	for _, r := range name {
		if r < ' ' {
			return false
		}
	}
	return true
}
