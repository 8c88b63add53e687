package account

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStore struct {
	accounts map[string]*Account
}

func (f *fakeStore) GetByAccount(_ context.Context, account string) (*Account, error) {
	a, ok := f.accounts[account]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func newFakeStore(t *testing.T, account, password string, active bool) *fakeStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeStore{accounts: map[string]*Account{
		account: {
			ID:           "a1",
			Account:      account,
			PasswordHash: string(hash),
			IsActive:     active,
		},
	}}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	const secret = "login-test-secret"
	svc := NewService(newFakeStore(t, "inspector01", "P@ssw0rd!", true), secret)

	tokenStr, err := svc.Login(context.Background(), "inspector01", "P@ssw0rd!")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "inspector01", claims["account"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newFakeStore(t, "inspector01", "P@ssw0rd!", true), "s")

	_, err := svc.Login(context.Background(), "inspector01", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	svc := NewService(newFakeStore(t, "inspector01", "P@ssw0rd!", true), "s")

	_, err := svc.Login(context.Background(), "ghost", "P@ssw0rd!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc := NewService(newFakeStore(t, "inspector01", "P@ssw0rd!", false), "s")

	_, err := svc.Login(context.Background(), "inspector01", "P@ssw0rd!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
