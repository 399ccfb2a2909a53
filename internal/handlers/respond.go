package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/finledger/finance-ledger/internal/middleware"
)

// respond writes a ServiceResult to the HTTP response, mapping each variant to
// its status code. successStatus is used for the Success variant; mapFn
// projects the domain payload to its response DTO. This is the only place the
// variant-to-status mapping lives, so every endpoint handles all five variants
// the same way.
func respond[T any, R any](c *gin.Context, res domain.ServiceResult[T], successStatus int, mapFn func(T) R) {
	switch res.Kind() {
	case domain.ResultSuccess:
		if successStatus == http.StatusNoContent {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(successStatus, mapFn(res.Data()))
	case domain.ResultNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case domain.ResultValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": res.FieldErrors()})
	case domain.ResultBusinessError:
		c.JSON(http.StatusConflict, gin.H{"error": res.Message(), "code": res.Code()})
	case domain.ResultSystemError:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("request failed",
			slog.String("error", res.Err().Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindError writes the standard response for a request that failed binding.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
}
