package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	"github.com/finledger/finance-ledger/internal/models"
)

type PgxUserRepository struct {
	BaseRepository
}

// NewUserRepository creates a new repository for API users.
func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, username, password_hash, active_status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, user.UserID, user.Username, user.PasswordHash, user.ActiveStatus, user.CreatedAt, user.LastUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, user.Username)
		}
		return fmt.Errorf("failed to save user %s: %w", user.Username, err)
	}
	return nil
}

// FindUserByUsername retrieves a user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, active_status, created_at, last_updated_at
		FROM users
		WHERE username = $1;
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(&m.UserID, &m.Username, &m.PasswordHash, &m.ActiveStatus, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", username, err)
	}
	u := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		ActiveStatus: m.ActiveStatus,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	return &u, nil
}
