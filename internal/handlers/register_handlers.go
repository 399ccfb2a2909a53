package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finledger/finance-ledger/internal/core/services"
	"github.com/finledger/finance-ledger/internal/middleware"
	"github.com/finledger/finance-ledger/internal/platform/config"
)

// accountNamePattern is the owner-qualified account name format, e.g.
// "chase_brian": a lowercase alphanumeric account name joined to a lowercase
// owner suffix by an underscore.
var accountNamePattern = regexp.MustCompile(`^[a-z0-9-]+_[a-z0-9]+$`)

// RegisterValidators installs the custom binding validators. Call once before
// routes are registered.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accountname", func(fl validator.FieldLevel) bool {
			return accountNamePattern.MatchString(fl.Field().String())
		})
	}
}

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, container *services.Container, pool *pgxpool.Pool) {
	registerHealthRoutes(r, pool)
	registerAuthRoutes(r, cfg, container.User)

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	registerAccountRoutes(v1, container.Account)
	registerTransactionRoutes(v1, container.Transaction)
	registerCategoryRoutes(v1, container.Category)
	registerValidationAmountRoutes(v1, container.ValidationAmount)
	registerPaymentRoutes(v1, container.Payment)
	registerTransferRoutes(v1, container.Transfer)
}
