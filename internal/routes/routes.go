package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayushkamni/desi-premium/internal/handlers"
	"github.com/ayushkamni/desi-premium/internal/middleware"
	"github.com/ayushkamni/desi-premium/internal/token"
)

// Setup wires the route table. Capability checks are composed explicitly per
// group: public, authenticated, authenticated+admin.
func Setup(app *fiber.App, h *handlers.Handler, tm *token.Manager) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	videos := api.Group("/videos", middleware.RequireAuth(tm))
	videos.Get("/", h.ListMedia)
	videos.Post("/:id/view", h.ViewMedia)

	admin := api.Group("/admin", middleware.RequireAuth(tm), middleware.RequireAdmin())
	admin.Get("/users", h.ListUsers)
	admin.Get("/stats", h.Stats)
	admin.Put("/approve/:id", h.ApproveUser)
	admin.Put("/promote/:id", h.PromoteUser)
	admin.Put("/reset-password/:id", h.ResetPassword)
	admin.Delete("/users/:id", h.DeleteUser)
	admin.Post("/videos", h.CreateMedia)
	admin.Put("/videos/:id", h.UpdateMedia)
	admin.Delete("/videos/:id", h.DeleteMedia)
}
