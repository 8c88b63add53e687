package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned when the account/password pair does not
// match an active account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Store is the subset of the repository the service needs.
type Store interface {
	GetByAccount(ctx context.Context, account string) (*Account, error)
}

// Service contains the business logic for account authentication. The JWT
// signing secret is injected at construction, never read from ambient state.
type Service struct {
	store     Store
	jwtSecret string
}

// NewService creates a new account Service.
func NewService(store Store, jwtSecret string) *Service {
	return &Service{store: store, jwtSecret: jwtSecret}
}

// Login verifies the credentials and returns a signed bearer token.
func (s *Service) Login(ctx context.Context, account, password string) (string, error) {
	a, err := s.store.GetByAccount(ctx, account)
	if errors.Is(err, ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("look up account: %w", err)
	}

	if !a.IsActive {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(a.Account)
}

// issueToken creates a signed JWT for the given account name.
func (s *Service) issueToken(account string) (string, error) {
	claims := jwt.MapClaims{
		"account": account,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
