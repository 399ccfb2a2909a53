package dto

// LoginRequest carries user credentials for token issuance.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries the data for creating an API user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
