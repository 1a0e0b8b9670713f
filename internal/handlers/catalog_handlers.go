package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayushkamni/desi-premium/internal/middleware"
	"github.com/ayushkamni/desi-premium/internal/services"
	"github.com/ayushkamni/desi-premium/internal/utils"
)

// ListMedia returns the whole catalog, premium included: approval is the
// paywall, the category field is a client-side filter hint.
func (h *Handler) ListMedia(c *fiber.Ctx) error {
	items, err := h.catalog.List(c.Context())
	if err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, items)
}

func (h *Handler) ViewMedia(c *fiber.Ctx) error {
	if err := h.catalog.View(c.Context(), c.Params("id")); err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "view counted"})
}

// CreateMedia accepts multipart form data. Each media field may be a file
// (videoFile/thumbnailFile) or a URL (videoUrl/thumbnailUrl); a file wins
// when both are sent.
func (h *Handler) CreateMedia(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	videoFile, err := h.stage(c, "videoFile")
	if err != nil {
		return h.respondErr(c, err)
	}
	thumbFile, err := h.stage(c, "thumbnailFile")
	if err != nil {
		removeStaged(videoFile)
		return h.respondErr(c, err)
	}

	in := services.CreateMediaInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Type:        c.FormValue("type"),
		Tags:        splitTags(c.FormValue("tags")),
		Media:       sourceFor(videoFile, c.FormValue("videoUrl")),
		Thumb:       sourceFor(thumbFile, c.FormValue("thumbnailUrl")),
		Actor:       claims.UserID,
	}
	item, err := h.catalog.Create(c.Context(), in)
	if err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusCreated, item)
}

// UpdateMedia applies a partial edit: only fields present in the form
// change.
func (h *Handler) UpdateMedia(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	form, formErr := c.MultipartForm()
	supplied := func(key string) *string {
		if formErr != nil || form == nil {
			return nil
		}
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			v := vs[0]
			return &v
		}
		return nil
	}

	videoFile, err := h.stage(c, "videoFile")
	if err != nil {
		return h.respondErr(c, err)
	}
	thumbFile, err := h.stage(c, "thumbnailFile")
	if err != nil {
		removeStaged(videoFile)
		return h.respondErr(c, err)
	}

	in := services.UpdateMediaInput{
		Title:       supplied("title"),
		Description: supplied("description"),
		Category:    supplied("category"),
		Type:        supplied("type"),
		Media:       sourceFor(videoFile, c.FormValue("videoUrl")),
		Thumb:       sourceFor(thumbFile, c.FormValue("thumbnailUrl")),
		Actor:       claims.UserID,
	}
	if raw := supplied("tags"); raw != nil {
		tags := splitTags(*raw)
		in.Tags = &tags
	}

	item, err := h.catalog.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, item)
}

func (h *Handler) DeleteMedia(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if err := h.catalog.Delete(c.Context(), c.Params("id"), claims.UserID); err != nil {
		return h.respondErr(c, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "media removed"})
}
