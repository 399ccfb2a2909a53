package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finledger/finance-ledger/internal/core/domain"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
	"github.com/finledger/finance-ledger/internal/platform/config"
	"github.com/finledger/finance-ledger/internal/utils"
)

// authHandler handles registration and token issuance.
type authHandler struct {
	userService portssvc.UserSvc
	cfg         *config.Config
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvc) {
	h := &authHandler{userService: userService, cfg: cfg}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.userService.RegisterUser(c.Request.Context(), req)
	respond(c, res, http.StatusCreated, func(user domain.User) dto.UserResponse {
		return dto.UserResponse{UserID: user.UserID, Username: user.Username}
	})
}

func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	// Failed credential checks come back as a business error; the HTTP
	// contract for login is 401, not 409.
	if res.Kind() == domain.ResultBusinessError {
		c.JSON(http.StatusUnauthorized, gin.H{"error": res.Message()})
		return
	}
	if !res.IsSuccess() {
		respond(c, res, http.StatusOK, func(domain.User) any { return nil })
		return
	}

	token, err := utils.GenerateJWT(res.Data().UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.cfg.JWTExpiryDuration.Seconds()),
	})
}
