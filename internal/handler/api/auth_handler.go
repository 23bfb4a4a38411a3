package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TokenRefresher re-authenticates against the gateway on demand.
type TokenRefresher interface {
	Refresh(ctx context.Context) (string, error)
}

// AuthHandler serves GET /api/auth.
type AuthHandler struct {
	tokens TokenRefresher
	logger *zap.Logger
}

func NewAuthHandler(tokens TokenRefresher, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, logger: logger}
}

// Handle forces a token refresh and returns the new token. Kept as an
// explicit endpoint so operators can verify gateway credentials without
// placing an order.
func (h *AuthHandler) Handle(c echo.Context) error {
	token, err := h.tokens.Refresh(c.Request().Context())
	if err != nil {
		h.logger.Error("Auth refresh failed", zap.Error(err))
		return serverError(c, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Token received successfully",
		"token":   token,
	})
}
