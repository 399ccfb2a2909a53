package middleware

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context values set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context. It returns the default logger when none was injected, so callers
// outside an HTTP request (schedulers, tests) still log.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromCtx retrieves the authenticated user ID set by AuthMiddleware.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
