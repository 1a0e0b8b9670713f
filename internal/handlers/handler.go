package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayushkamni/desi-premium/internal/services"
	"github.com/ayushkamni/desi-premium/internal/utils"
)

type Handler struct {
	auth      *services.AuthService
	users     *services.UserService
	catalog   *services.CatalogService
	stageDir  string
	maxUpload int64
	log       *zap.SugaredLogger
}

func NewHandler(auth *services.AuthService, users *services.UserService, catalog *services.CatalogService, stageDir string, maxUpload int64, log *zap.SugaredLogger) *Handler {
	if stageDir == "" {
		stageDir = os.TempDir()
	}
	return &Handler{auth: auth, users: users, catalog: catalog, stageDir: stageDir, maxUpload: maxUpload, log: log}
}

// respondErr maps service sentinels onto HTTP statuses. Anything unmapped is
// a 500 with a generic message; the cause goes to the log, not the client.
func (h *Handler) respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		return utils.JSONError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.JSONError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrPendingApproval):
		return utils.JSONError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.JSONError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrSelfDeletion),
		errors.Is(err, services.ErrMissingTitle),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidMediaType),
		errors.Is(err, services.ErrMissingMedia):
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrFileTooLarge):
		return utils.JSONError(c, fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, services.ErrUnsupportedType):
		return utils.JSONError(c, fiber.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, services.ErrUploadFailed):
		return utils.JSONError(c, fiber.StatusBadGateway, err.Error())
	default:
		h.log.Errorw("request failed", "path", c.Path(), "err", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "server error")
	}
}

// stage copies a multipart file field into the local stage directory. A
// missing field is not an error, it returns (nil, nil). Validation runs
// before any bytes land on disk.
func (h *Handler) stage(c *fiber.Ctx, field string) (*services.StagedFile, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, nil
	}
	ct := fh.Header.Get("Content-Type")
	if err := services.ValidateFile(fh.Filename, ct, fh.Size, h.maxUpload); err != nil {
		return nil, err
	}
	path := filepath.Join(h.stageDir, "stage-"+uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	if err := c.SaveFile(fh, path); err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	return &services.StagedFile{Path: path, Name: fh.Filename, Size: fh.Size, ContentType: ct}, nil
}

// removeStaged cleans up stage files when a request dies before reaching the
// pipeline (which otherwise owns their removal).
func removeStaged(files ...*services.StagedFile) {
	for _, f := range files {
		if f != nil {
			_ = os.Remove(f.Path)
		}
	}
}

// splitTags keeps order and duplicates; only blank entries are dropped.
func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func sourceFor(f *services.StagedFile, url string) services.MediaSource {
	if f != nil {
		return services.FileSource(f)
	}
	return services.URLSource(url)
}
