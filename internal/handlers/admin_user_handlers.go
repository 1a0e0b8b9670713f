package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayushkamni/desi-premium/internal/middleware"
	"github.com/ayushkamni/desi-premium/internal/utils"
)

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, users)
}

func (h *Handler) Stats(c *fiber.Ctx) error {
	stats, err := h.users.Stats(c.Context())
	if err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, stats)
}

func (h *Handler) ApproveUser(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if err := h.users.Approve(c.Context(), c.Params("id"), claims.UserID); err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "user approved"})
}

func (h *Handler) PromoteUser(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if err := h.users.Promote(c.Context(), c.Params("id"), claims.UserID); err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "user promoted to admin"})
}

type resetPasswordReq struct {
	Password string `json:"password"`
}

func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := h.users.ResetPassword(c.Context(), c.Params("id"), req.Password); err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}

func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if err := h.users.Delete(c.Context(), c.Params("id"), claims.UserID); err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "user removed"})
}
