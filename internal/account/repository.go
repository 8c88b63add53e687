// Package account manages operator accounts and login token issuance.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Account represents an operator login account.
type Account struct {
	ID           string
	Account      string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// ErrNotFound is returned when an account does not exist.
var ErrNotFound = errors.New("account not found")

// Repository handles all account database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetByAccount fetches an account by its login name.
func (r *Repository) GetByAccount(ctx context.Context, account string) (*Account, error) {
	a := &Account{}
	err := r.db.QueryRow(ctx,
		`SELECT id, account, password_hash, is_active, created_at
		 FROM account_info WHERE account = $1`,
		account,
	).Scan(&a.ID, &a.Account, &a.PasswordHash, &a.IsActive, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}
