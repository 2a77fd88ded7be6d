package middleware

import (
	"net/http"
	"strings"

	"kpisuite-backend/internal/auth"
	"kpisuite-backend/internal/workflow"

	"github.com/labstack/echo/v4"
)

const (
	identityKey = "auth.identity"
	claimsKey   = "auth.claims"
)

// Auth validates the bearer token and stores the caller's identity in the
// request context. Capability checks happen later, per submission, in the
// use cases.
func Auth(tm *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := tm.Parse(strings.TrimSpace(header[len(prefix):]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(identityKey, claims.Identity())
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// SetIdentity places an identity directly into the context, bypassing token
// parsing. Handler tests use it in place of Auth.
func SetIdentity(c echo.Context, id workflow.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the authenticated identity placed by Auth.
func IdentityFrom(c echo.Context) (workflow.Identity, bool) {
	id, ok := c.Get(identityKey).(workflow.Identity)
	return id, ok
}

// ClaimsFrom returns the full token claims placed by Auth.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	return claims, ok
}
