package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
	"github.com/finledger/finance-ledger/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates the API user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvc {
	return &userService{userRepo: userRepo}
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) domain.ServiceResult[domain.User] {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return domain.SystemErr[domain.User](err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		ActiveStatus: true,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to register user", "username", req.Username)
		return domain.Classify[domain.User](err)
	}

	s.LogInfo(ctx, "user registered", "user_id", user.UserID)
	return domain.OK(user)
}

// Authenticate verifies credentials. A missing user and a wrong password are
// indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, username, password string) domain.ServiceResult[domain.User] {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.BusinessErr[domain.User]("invalid username or password", "invalid_credentials")
		}
		return domain.Classify[domain.User](err)
	}
	if !user.ActiveStatus || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return domain.BusinessErr[domain.User]("invalid username or password", "invalid_credentials")
	}
	return domain.OK(*user)
}
