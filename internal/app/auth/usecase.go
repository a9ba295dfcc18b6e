package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"quackmate/internal/app/ports"
	"quackmate/internal/domain/economy"
	"quackmate/internal/domain/pet"
)

const (
	FirstPetName  = "Quacky"
	tokenLifetime = 24 * time.Hour
)

var (
	ErrInvalidRequest     = errors.New("invalid auth request")
	ErrInvalidUsername    = errors.New("username must be 4-28 letters, digits or underscores")
	ErrInvalidPassword    = errors.New("password must be at least 6 characters with a letter and a digit")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{4,28}$`)

type RegisterRequest struct {
	Username string
	Password string
}

type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	PetID     string `json:"pet_id"`
	PetName   string `json:"pet_name"`
	CreatedAt string `json:"created_at"`
}

type LoginRequest struct {
	Username string
	Password string
}

type LoginResponse struct {
	AccountID string `json:"account_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type RegisterUseCase struct {
	Accounts  ports.AccountRepository
	Pets      ports.PetRepository
	TxManager ports.TxManager
	Now       func() time.Time
}

type LoginUseCase struct {
	Accounts  ports.AccountRepository
	JWTSecret []byte
	Now       func() time.Time
}

type TokenVerifier struct {
	JWTSecret []byte
	// Now drives expiry checks; nil means the real clock.
	Now func() time.Time
}

type DeactivateUseCase struct {
	Accounts ports.AccountRepository
}

func (u RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	if u.Accounts == nil || u.Pets == nil || u.TxManager == nil {
		return RegisterResponse{}, ErrInvalidRequest
	}
	req.Username = strings.TrimSpace(req.Username)
	if !usernamePattern.MatchString(req.Username) {
		return RegisterResponse{}, ErrInvalidUsername
	}
	if !validPassword(req.Password) {
		return RegisterResponse{}, ErrInvalidPassword
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	salt, err := randomBytes(16)
	if err != nil {
		return RegisterResponse{}, err
	}
	account := economy.NewAccount(uuid.NewString(), req.Username, salt, passwordHash(salt, req.Password), now)
	firstPet := pet.New(uuid.NewString(), account.ID, FirstPetName, now)

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Accounts.Create(txCtx, account); err != nil {
			return err
		}
		return u.Pets.SaveWithVersion(txCtx, firstPet, 0)
	})
	if errors.Is(err, ports.ErrConflict) {
		return RegisterResponse{}, ErrUsernameTaken
	}
	if err != nil {
		return RegisterResponse{}, err
	}

	return RegisterResponse{
		AccountID: account.ID,
		Username:  account.Username,
		PetID:     firstPet.ID,
		PetName:   firstPet.Name,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

func (u LoginUseCase) Execute(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || u.Accounts == nil || len(u.JWTSecret) == 0 {
		return LoginResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	account, err := u.Accounts.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return LoginResponse{}, ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}
	if !account.Active {
		return LoginResponse{}, ErrInvalidCredentials
	}
	got := passwordHash(account.PassSalt, req.Password)
	if subtle.ConstantTimeCompare(got, account.PassHash) != 1 {
		return LoginResponse{}, ErrInvalidCredentials
	}

	account.LastLogin = now
	if err := u.Accounts.Update(ctx, account); err != nil {
		return LoginResponse{}, err
	}

	expiresAt := now.Add(tokenLifetime)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   account.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(u.JWTSecret)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccountID: account.ID,
		Token:     signed,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

// Verify returns the account ID carried by a signed session token.
func (v TokenVerifier) Verify(tokenString string) (string, error) {
	if len(v.JWTSecret) == 0 || strings.TrimSpace(tokenString) == "" {
		return "", ErrInvalidToken
	}
	opts := []jwt.ParserOption{}
	if v.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(v.Now))
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.JWTSecret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Execute soft-deletes the account. Pets stay untouched: hard removal of an
// account and its pets lives at the repository level only.
func (u DeactivateUseCase) Execute(ctx context.Context, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" || u.Accounts == nil {
		return ErrInvalidRequest
	}
	return u.Accounts.Deactivate(ctx, accountID)
}

func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func passwordHash(salt []byte, password string) []byte {
	b := make([]byte, 0, len(salt)+len(password))
	b = append(b, salt...)
	b = append(b, password...)
	sum := sha256.Sum256(b)
	return sum[:]
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
