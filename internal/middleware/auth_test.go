package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushkamni/desi-premium/internal/models"
	"github.com/ayushkamni/desi-premium/internal/token"
)

func testApp(t *testing.T) (*fiber.App, *token.Manager) {
	t.Helper()
	tm, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/member", RequireAuth(tm), func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		return c.SendString(claims.UserID)
	})
	app.Get("/admin", RequireAuth(tm), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, tm
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/member", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app, tm := testApp(t)
	tok, err := tm.Issue("u1", models.RoleMember, "Alice")
	require.NoError(t, err)

	for _, header := range []string{"Token " + tok, tok, "Bearer"} {
		req := httptest.NewRequest("GET", "/member", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest("GET", "/member", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthPassesClaims(t *testing.T) {
	app, tm := testApp(t)
	tok, err := tm.Issue("u1", models.RoleMember, "Alice")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/member", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdminRejectsMember(t *testing.T) {
	app, tm := testApp(t)
	tok, err := tm.Issue("u1", models.RoleMember, "Alice")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	app, tm := testApp(t)
	tok, err := tm.Issue("u1", models.RoleAdmin, "Root")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
