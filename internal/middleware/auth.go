package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushkamni/desi-premium/internal/models"
	"github.com/ayushkamni/desi-premium/internal/token"
	"github.com/ayushkamni/desi-premium/internal/utils"
)

const claimsKey = "claims"

// RequireAuth verifies the bearer token and stores the claims in request
// locals. It keeps no state, so one instance serves all requests.
func RequireAuth(tm *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return utils.JSONError(c, fiber.StatusUnauthorized, "missing authorization")
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.JSONError(c, fiber.StatusUnauthorized, "invalid authorization")
		}
		claims, err := tm.Verify(parts[1])
		if err != nil {
			return utils.JSONError(c, fiber.StatusUnauthorized, "invalid token")
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			return utils.JSONError(c, fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

func ClaimsFromCtx(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(claimsKey).(*token.Claims)
	return claims
}
