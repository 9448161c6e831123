package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelcms/internal/config"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/storage"
	"travelcms/pkg/utils"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadedFile is an image received from a multipart form.
type UploadedFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

type MediaServiceInterface interface {
	// Store checks and uploads an image under <folder>/<parentID>/<uuid><ext>.
	Store(ctx context.Context, folder string, parentID uuid.UUID, file UploadedFile, caption string) (dbm.StoredImage, error)
	// Discard removes blobs whose rows are gone. Failures are only logged.
	Discard(ctx context.Context, paths ...string)
}

type MediaService struct {
	store    storage.ObjectStore
	maxBytes int64
	logger   *zap.Logger
}

func NewMediaService(store storage.ObjectStore, cfg *config.Config, logger *zap.Logger) MediaServiceInterface {
	return &MediaService{
		store:    store,
		maxBytes: int64(cfg.Storage.MaxUploadMB) << 20,
		logger:   logger,
	}
}

func (m *MediaService) Store(ctx context.Context, folder string, parentID uuid.UUID, file UploadedFile, caption string) (dbm.StoredImage, error) {
	if file.Reader == nil {
		return dbm.StoredImage{}, utils.NewValidationError("file", "is required")
	}
	if file.Size > m.maxBytes {
		return dbm.StoredImage{}, fmt.Errorf("%w: %d bytes exceeds %d", utils.ErrFileTooLarge, file.Size, m.maxBytes)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file.Reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return dbm.StoredImage{}, fmt.Errorf("%w: read upload: %v", utils.ErrStorageError, err)
	}
	head = head[:n]
	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return dbm.StoredImage{}, fmt.Errorf("%w: %s", utils.ErrUnsupportedMedia, contentType)
	}

	// The declared size comes from the client, so cap what is actually read.
	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), file.Reader), m.maxBytes+1)
	counted := &countingReader{r: body}

	objectPath := path.Join(folder, parentID.String(), uuid.NewString()+ext)
	if err := m.store.Upload(ctx, objectPath, counted, contentType); err != nil {
		return dbm.StoredImage{}, fmt.Errorf("%w: upload %s: %v", utils.ErrStorageError, objectPath, err)
	}
	if counted.n > m.maxBytes {
		m.Discard(ctx, objectPath)
		return dbm.StoredImage{}, fmt.Errorf("%w: body exceeds %d bytes", utils.ErrFileTooLarge, m.maxBytes)
	}

	return dbm.StoredImage{
		StoragePath: objectPath,
		ImageURL:    m.store.PublicURL(objectPath),
		Caption:     caption,
	}, nil
}

func (m *MediaService) Discard(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}
	if err := m.store.Remove(context.WithoutCancel(ctx), paths...); err != nil {
		m.logger.Warn("failed to remove stored objects",
			zap.Strings("paths", paths),
			zap.Error(err))
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
