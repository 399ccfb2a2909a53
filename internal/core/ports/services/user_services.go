package services

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/finledger/finance-ledger/internal/dto"
)

// UserSvc owns API user registration and credential verification.
type UserSvc interface {
	RegisterUser(ctx context.Context, req dto.RegisterRequest) domain.ServiceResult[domain.User]
	Authenticate(ctx context.Context, username, password string) domain.ServiceResult[domain.User]
}
