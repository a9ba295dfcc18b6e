package auth

import (
	"context"
	"testing"
	"time"

	"quackmate/internal/adapter/repo/memory"
	"quackmate/internal/app/ports"
	"quackmate/internal/domain/economy"
	"quackmate/internal/domain/pet"
)

func TestRegisterUseCase_CreatesAccountAndFirstPet(t *testing.T) {
	accounts := &fakeAccountRepo{}
	pets := &fakePetRepo{}
	uc := RegisterUseCase{
		Accounts:  accounts,
		Pets:      pets,
		TxManager: fakeTxManager{},
		Now:       func() time.Time { return time.Unix(1700000000, 0).UTC() },
	}

	resp, err := uc.Execute(context.Background(), RegisterRequest{Username: "duck_lover", Password: "quack123"})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if resp.AccountID == "" || resp.PetID == "" {
		t.Fatalf("expected non-empty register response: %+v", resp)
	}
	if resp.PetName != FirstPetName {
		t.Fatalf("expected first pet %q, got %q", FirstPetName, resp.PetName)
	}
	if accounts.last.Username != "duck_lover" {
		t.Fatalf("account username mismatch: %s", accounts.last.Username)
	}
	if len(accounts.last.PassSalt) == 0 || len(accounts.last.PassHash) == 0 {
		t.Fatalf("expected salt/hash stored")
	}
	if accounts.last.Coins != economy.StartingCoins {
		t.Fatalf("expected starting coins %d, got %d", economy.StartingCoins, accounts.last.Coins)
	}
	if pets.last.AccountID != resp.AccountID {
		t.Fatalf("pet owner mismatch: %s != %s", pets.last.AccountID, resp.AccountID)
	}
	if pets.last.Version != 1 {
		t.Fatalf("expected seed version=1, got %d", pets.last.Version)
	}
}

func TestRegisterUseCase_RejectsBadUsernames(t *testing.T) {
	uc := RegisterUseCase{Accounts: &fakeAccountRepo{}, Pets: &fakePetRepo{}, TxManager: fakeTxManager{}}
	for _, name := range []string{"ab", "has space", "way_too_long_username_for_the_limit", "bad!chars"} {
		_, err := uc.Execute(context.Background(), RegisterRequest{Username: name, Password: "quack123"})
		if err != ErrInvalidUsername {
			t.Fatalf("username %q: expected ErrInvalidUsername, got %v", name, err)
		}
	}
}

func TestRegisterUseCase_RejectsWeakPasswords(t *testing.T) {
	uc := RegisterUseCase{Accounts: &fakeAccountRepo{}, Pets: &fakePetRepo{}, TxManager: fakeTxManager{}}
	for _, pass := range []string{"ab1", "onlyletters", "123456"} {
		_, err := uc.Execute(context.Background(), RegisterRequest{Username: "validname", Password: pass})
		if err != ErrInvalidPassword {
			t.Fatalf("password %q: expected ErrInvalidPassword, got %v", pass, err)
		}
	}
}

func TestRegisterUseCase_MapsConflictToUsernameTaken(t *testing.T) {
	accounts := &fakeAccountRepo{createErr: ports.ErrConflict}
	uc := RegisterUseCase{Accounts: accounts, Pets: &fakePetRepo{}, TxManager: fakeTxManager{}}

	_, err := uc.Execute(context.Background(), RegisterRequest{Username: "duck_lover", Password: "quack123"})
	if err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginUseCase_IssuesVerifiableToken(t *testing.T) {
	salt := []byte("salt")
	now := time.Unix(1700000000, 0).UTC()
	accounts := &fakeAccountRepo{
		getResult: economy.Account{
			ID:       "acc-1",
			Username: "duck_lover",
			PassSalt: salt,
			PassHash: passwordHash(salt, "quack123"),
			Active:   true,
		},
	}
	secret := []byte("test-secret")
	uc := LoginUseCase{Accounts: accounts, JWTSecret: secret, Now: func() time.Time { return now }}

	resp, err := uc.Execute(context.Background(), LoginRequest{Username: "duck_lover", Password: "quack123"})
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected token issued")
	}
	if !accounts.last.LastLogin.Equal(now) {
		t.Fatalf("expected last login stamped, got %v", accounts.last.LastLogin)
	}

	verifier := TokenVerifier{JWTSecret: secret, Now: func() time.Time { return now.Add(time.Hour) }}
	accountID, err := verifier.Verify(resp.Token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if accountID != "acc-1" {
		t.Fatalf("expected account acc-1, got %s", accountID)
	}
}

func TestTokenVerifier_RejectsExpiredToken(t *testing.T) {
	salt := []byte("salt")
	now := time.Unix(1700000000, 0).UTC()
	accounts := &fakeAccountRepo{
		getResult: economy.Account{
			ID:       "acc-1",
			Username: "duck_lover",
			PassSalt: salt,
			PassHash: passwordHash(salt, "quack123"),
			Active:   true,
		},
	}
	secret := []byte("test-secret")
	uc := LoginUseCase{Accounts: accounts, JWTSecret: secret, Now: func() time.Time { return now }}

	resp, err := uc.Execute(context.Background(), LoginRequest{Username: "duck_lover", Password: "quack123"})
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	verifier := TokenVerifier{JWTSecret: secret, Now: func() time.Time { return now.Add(tokenLifetime + time.Minute) }}
	if _, err := verifier.Verify(resp.Token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestLoginUseCase_RejectsWrongPassword(t *testing.T) {
	salt := []byte("salt")
	accounts := &fakeAccountRepo{
		getResult: economy.Account{
			ID:       "acc-1",
			Username: "duck_lover",
			PassSalt: salt,
			PassHash: passwordHash(salt, "correct1"),
			Active:   true,
		},
	}
	uc := LoginUseCase{Accounts: accounts, JWTSecret: []byte("test-secret")}

	_, err := uc.Execute(context.Background(), LoginRequest{Username: "duck_lover", Password: "wrong1aa"})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUseCase_RejectsDeactivatedAccount(t *testing.T) {
	salt := []byte("salt")
	accounts := &fakeAccountRepo{
		getResult: economy.Account{
			ID:       "acc-1",
			PassSalt: salt,
			PassHash: passwordHash(salt, "quack123"),
			Active:   false,
		},
	}
	uc := LoginUseCase{Accounts: accounts, JWTSecret: []byte("test-secret")}

	_, err := uc.Execute(context.Background(), LoginRequest{Username: "duck_lover", Password: "quack123"})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenVerifier_RejectsTamperedToken(t *testing.T) {
	salt := []byte("salt")
	accounts := &fakeAccountRepo{
		getResult: economy.Account{
			ID:       "acc-1",
			PassSalt: salt,
			PassHash: passwordHash(salt, "quack123"),
			Active:   true,
		},
	}
	uc := LoginUseCase{Accounts: accounts, JWTSecret: []byte("test-secret")}
	resp, err := uc.Execute(context.Background(), LoginRequest{Username: "duck_lover", Password: "quack123"})
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	if _, err := (TokenVerifier{JWTSecret: []byte("other-secret")}).Verify(resp.Token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := (TokenVerifier{JWTSecret: []byte("test-secret")}).Verify(resp.Token + "x"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestDeactivateUseCase_SoftDeletesAccountAndKeepsPets(t *testing.T) {
	store := memory.NewStore()
	now := time.Unix(1700000000, 0).UTC()
	store.SeedAccount(economy.Account{ID: "acc-1", Username: "duck_lover", Active: true})
	store.SeedPet(pet.New("pet-1", "acc-1", "Quacky", now))

	accounts := memory.NewAccountRepo(store)
	uc := DeactivateUseCase{Accounts: accounts}

	if err := uc.Execute(context.Background(), "acc-1"); err != nil {
		t.Fatalf("deactivate error: %v", err)
	}

	account, err := accounts.GetByID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("account should survive deactivation: %v", err)
	}
	if account.Active {
		t.Fatal("account should be inactive")
	}
	if _, err := memory.NewPetRepo(store).GetByID(context.Background(), "pet-1"); err != nil {
		t.Fatalf("pets must survive deactivation, got %v", err)
	}
}

type fakeAccountRepo struct {
	last        economy.Account
	createErr   error
	getResult   economy.Account
	getErr      error
	deactivated string
}

func (f *fakeAccountRepo) GetByID(_ context.Context, _ string) (economy.Account, error) {
	if f.getErr != nil {
		return economy.Account{}, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeAccountRepo) GetByUsername(_ context.Context, username string) (economy.Account, error) {
	if f.getErr != nil {
		return economy.Account{}, f.getErr
	}
	if f.getResult.ID == "" {
		return economy.Account{}, ports.ErrNotFound
	}
	return f.getResult, nil
}

func (f *fakeAccountRepo) Create(_ context.Context, account economy.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.last = account
	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account economy.Account) error {
	f.last = account
	return nil
}

func (f *fakeAccountRepo) Deactivate(_ context.Context, accountID string) error {
	f.deactivated = accountID
	return nil
}

type fakePetRepo struct {
	last           pet.Pet
	saveErr        error
	deletedAccount string
}

func (f *fakePetRepo) GetByID(_ context.Context, _ string) (pet.Pet, error) {
	return f.last, nil
}

func (f *fakePetRepo) ListByAccountID(_ context.Context, _ string) ([]pet.Pet, error) {
	return []pet.Pet{f.last}, nil
}

func (f *fakePetRepo) SaveWithVersion(_ context.Context, p pet.Pet, _ int64) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.last = p
	return nil
}

func (f *fakePetRepo) DeleteByAccountID(_ context.Context, accountID string) error {
	f.deletedAccount = accountID
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
