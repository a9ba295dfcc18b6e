package memory

import (
	"sync"

	"quackmate/internal/domain/economy"
	"quackmate/internal/domain/pet"
)

type Store struct {
	mu       sync.RWMutex
	pets     map[string]pet.Pet
	accounts map[string]economy.Account
	sessions []economy.MiniGameSession
	events   map[string][]pet.DomainEvent
}

func NewStore() *Store {
	return &Store{
		pets:     make(map[string]pet.Pet),
		accounts: make(map[string]economy.Account),
		events:   make(map[string][]pet.DomainEvent),
	}
}

func (s *Store) SeedPet(p pet.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets[p.ID] = p
}

func (s *Store) SeedAccount(a economy.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = a
}
