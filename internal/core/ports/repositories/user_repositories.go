package repositories

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
)

// UserRepository defines storage for API users.
type UserRepository interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate on a
	// username collision.
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
