package middleware

import (
	"net/http"
	"strings"

	"lendlink-backend/internal/auth"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// TokenParser is satisfied by auth.TokenManager.
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// RequireAuth decodes the bearer credential and stashes the identity in
// the request context. Runs before any role check.
func RequireAuth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			claims, err := tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// Identity returns the authenticated caller, or nil outside RequireAuth.
func Identity(c echo.Context) *auth.Claims {
	claims, _ := c.Get(identityKey).(*auth.Claims)
	return claims
}
