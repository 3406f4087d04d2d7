package middleware

import (
	"net/http"

	"lendlink-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// Policy is the single operation→role table. Keys are "METHOD /route"
// using the registered echo route pattern; every gated route must appear
// here exactly once.
type Policy map[string]user.Role

// RoleGate enforces the policy table before any handler runs. Routes
// missing from the table fail closed.
func RoleGate(policy Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := Identity(c)
			if ident == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			required, ok := policy[c.Request().Method+" "+c.Path()]
			if !ok || user.Role(ident.Role) != required {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
