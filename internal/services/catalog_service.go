package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayushkamni/desi-premium/internal/events"
	"github.com/ayushkamni/desi-premium/internal/models"
	"github.com/ayushkamni/desi-premium/internal/repository"
)

// Destination folders on the media host.
const (
	folderVideos = "media/videos"
	folderImages = "media/images"
	folderThumbs = "media/thumbnails"
)

// MediaHost is the external hosting service. It owns asset bytes; the
// catalog stores only the URLs it returns.
type MediaHost interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL reports whether the URL points at this host and, if so,
	// the object key behind it.
	KeyFromURL(rawURL string) (string, bool)
}

type CatalogService struct {
	media       repository.MediaRepository
	host        MediaHost
	hostTimeout time.Duration
	maxUpload   int64
	events      *events.Publisher
	log         *zap.SugaredLogger
}

func NewCatalogService(media repository.MediaRepository, host MediaHost, hostTimeout time.Duration, maxUpload int64, ev *events.Publisher, log *zap.SugaredLogger) *CatalogService {
	return &CatalogService{media: media, host: host, hostTimeout: hostTimeout, maxUpload: maxUpload, events: ev, log: log}
}

type CreateMediaInput struct {
	Title       string
	Description string
	Category    string
	Type        string
	Tags        []string
	Media       MediaSource
	Thumb       MediaSource
	Actor       string
}

// UpdateMediaInput is a partial update: nil pointer fields and omitted
// sources leave the stored values untouched.
type UpdateMediaInput struct {
	Title       *string
	Description *string
	Category    *string
	Type        *string
	Tags        *[]string
	Media       MediaSource
	Thumb       MediaSource
	Actor       string
}

// Create runs the upload pipeline and persists the catalog record. If the
// media host rejects the upload no record is written; staged files are
// removed on every path.
func (s *CatalogService) Create(ctx context.Context, in CreateMediaInput) (*models.MediaItem, error) {
	defer s.discard(in.Media)
	defer s.discard(in.Thumb)

	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrMissingTitle
	}
	if !models.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	if in.Type != "" && !models.ValidMediaType(in.Type) {
		return nil, ErrInvalidMediaType
	}
	if in.Media.Omitted() {
		return nil, ErrMissingMedia
	}

	mediaURL, fileKind, err := s.resolvePrimary(ctx, in.Media)
	if err != nil {
		return nil, err
	}
	thumbURL, err := s.resolveThumb(ctx, in.Thumb)
	if err != nil {
		return nil, err
	}
	if thumbURL == "" && fileKind == models.MediaTypeImage {
		thumbURL = s.autoThumbnail(ctx, in.Media.file)
	}

	itemType := in.Type
	if itemType == "" {
		itemType = fileKind
	}
	if itemType == "" {
		itemType = models.MediaTypeVideo
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	item := &models.MediaItem{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		MediaURL:     mediaURL,
		ThumbnailURL: thumbURL,
		Category:     in.Category,
		Type:         itemType,
		Tags:         tags,
	}
	if err := s.media.Insert(ctx, item); err != nil {
		// The uploaded asset may be orphaned on the host here; the store
		// owns the record, the host owns the bytes.
		return nil, fmt.Errorf("insert media: %w", err)
	}
	s.events.Publish(ctx, events.MediaCreated, item.ID.Hex(), in.Actor, map[string]string{"title": item.Title})
	s.log.Infow("media created", "id", item.ID.Hex(), "type", item.Type, "category", item.Category)
	return item, nil
}

// Update applies a partial edit. Only supplied fields change; a supplied
// file or URL replaces that field through the same pipeline as Create.
func (s *CatalogService) Update(ctx context.Context, id string, in UpdateMediaInput) (*models.MediaItem, error) {
	defer s.discard(in.Media)
	defer s.discard(in.Thumb)

	existing, err := s.media.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, ErrMissingTitle
	}
	if in.Category != nil && !models.ValidCategory(*in.Category) {
		return nil, ErrInvalidCategory
	}
	if in.Type != nil && !models.ValidMediaType(*in.Type) {
		return nil, ErrInvalidMediaType
	}

	upd := repository.MediaUpdate{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Type:        in.Type,
		Tags:        in.Tags,
	}
	if !in.Media.Omitted() {
		mediaURL, _, err := s.resolvePrimary(ctx, in.Media)
		if err != nil {
			return nil, err
		}
		upd.MediaURL = &mediaURL
	}
	if !in.Thumb.Omitted() {
		thumbURL, err := s.resolveThumb(ctx, in.Thumb)
		if err != nil {
			return nil, err
		}
		upd.ThumbnailURL = &thumbURL
	}
	if upd.Empty() {
		return existing, nil
	}

	item, err := s.media.Update(ctx, id, upd)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	s.events.Publish(ctx, events.MediaUpdated, id, in.Actor, nil)
	return item, nil
}

// Delete removes the record and best-effort deletes the hosted assets.
// Remote cleanup failure never blocks record deletion; it is logged and
// audited instead.
func (s *CatalogService) Delete(ctx context.Context, id, actor string) error {
	item, err := s.media.FindByID(ctx, id)
	if err != nil {
		return translateRepoErr(err)
	}

	for _, u := range []string{item.MediaURL, item.ThumbnailURL} {
		key, ok := s.host.KeyFromURL(u)
		if !ok {
			continue
		}
		hctx, cancel := context.WithTimeout(ctx, s.hostTimeout)
		err := s.host.Delete(hctx, key)
		cancel()
		if err != nil {
			s.log.Errorw("remote asset cleanup failed", "id", id, "key", key, "err", err)
			s.events.Publish(ctx, events.MediaCleanupFailed, id, actor, map[string]string{"key": key})
		}
	}

	if err := s.media.Delete(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	s.events.Publish(ctx, events.MediaDeleted, id, actor, map[string]string{"title": item.Title})
	return nil
}

func (s *CatalogService) List(ctx context.Context) ([]models.MediaItem, error) {
	return s.media.List(ctx)
}

func (s *CatalogService) View(ctx context.Context, id string) error {
	if err := s.media.IncrementViews(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	return nil
}

// resolvePrimary turns the primary media source into a URL. For files it
// also reports the classified kind (video/image); URL sources report "".
func (s *CatalogService) resolvePrimary(ctx context.Context, src MediaSource) (string, string, error) {
	switch src.kind {
	case sourceURL:
		return src.url, "", nil
	case sourceFile:
		f := src.file
		if err := ValidateFile(f.Name, f.ContentType, f.Size, s.maxUpload); err != nil {
			return "", "", err
		}
		kind := Classify(f.Name, f.ContentType)
		folder := folderImages
		if kind == models.MediaTypeVideo {
			folder = folderVideos
		}
		url, err := s.uploadStaged(ctx, f, folder)
		if err != nil {
			return "", "", err
		}
		return url, kind, nil
	}
	return "", "", ErrMissingMedia
}

func (s *CatalogService) resolveThumb(ctx context.Context, src MediaSource) (string, error) {
	switch src.kind {
	case sourceURL:
		return src.url, nil
	case sourceFile:
		f := src.file
		if err := ValidateFile(f.Name, f.ContentType, f.Size, s.maxUpload); err != nil {
			return "", err
		}
		return s.uploadStaged(ctx, f, folderThumbs)
	}
	return "", nil
}

func (s *CatalogService) uploadStaged(ctx context.Context, f *StagedFile, folder string) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("%w: read stage: %v", ErrUploadFailed, err)
	}
	key := folder + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(f.Name))
	hctx, cancel := context.WithTimeout(ctx, s.hostTimeout)
	defer cancel()
	url, err := s.host.Upload(hctx, key, f.ContentType, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, nil
}

// autoThumbnail renders a 320px JPEG from an uploaded image when no
// thumbnail was supplied. Best-effort: any failure just means no thumbnail.
func (s *CatalogService) autoThumbnail(ctx context.Context, f *StagedFile) string {
	if f == nil {
		return ""
	}
	img, err := imaging.Open(f.Path)
	if err != nil {
		s.log.Debugw("thumbnail decode skipped", "file", f.Name, "err", err)
		return ""
	}
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return ""
	}
	key := folderThumbs + "/" + uuid.NewString() + "_thumb.jpg"
	hctx, cancel := context.WithTimeout(ctx, s.hostTimeout)
	defer cancel()
	url, err := s.host.Upload(hctx, key, "image/jpeg", buf.Bytes())
	if err != nil {
		s.log.Warnw("thumbnail upload failed", "err", err)
		return ""
	}
	return url
}

// discard removes a staged file. Local disk is never a durable store, so
// this runs on success and failure alike.
func (s *CatalogService) discard(src MediaSource) {
	if !src.isFile() || src.file == nil {
		return
	}
	if err := os.Remove(src.file.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warnw("stage file removal failed", "path", src.file.Path, "err", err)
	}
}
