package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayushkamni/desi-premium/internal/utils"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "name, email and password are required")
	}
	user, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusCreated, fiber.Map{
		"message": "registration successful, waiting for admin approval",
		"user":    user.Public(),
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	tok, user, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{
		"token": tok,
		"user":  user.Public(),
	})
}
