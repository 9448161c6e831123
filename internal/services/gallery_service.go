package services

import (
	"context"

	"github.com/google/uuid"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/request_models"
	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/pkg/utils"
)

const galleryFolder = "trip-gallery"

type GalleryServiceInterface interface {
	ListGallery(ctx context.Context, tripID uuid.UUID, includeInactive bool, page, pageSize int) ([]response_models.ImageResponse, int64, error)
	AddImage(ctx context.Context, tripID uuid.UUID, form request_models.UploadImageForm, file UploadedFile) (*response_models.ImageResponse, error)
	UpdateImage(ctx context.Context, id uuid.UUID, req request_models.UpdateImageRequest) (*response_models.ImageResponse, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type GalleryService struct {
	galleryRepo repositories.GalleryRepository
	tripRepo    repositories.TripRepository
	media       MediaServiceInterface
}

func NewGalleryService(galleryRepo repositories.GalleryRepository, tripRepo repositories.TripRepository, media MediaServiceInterface) GalleryServiceInterface {
	return &GalleryService{
		galleryRepo: galleryRepo,
		tripRepo:    tripRepo,
		media:       media,
	}
}

func (s *GalleryService) ListGallery(ctx context.Context, tripID uuid.UUID, includeInactive bool, page, pageSize int) ([]response_models.ImageResponse, int64, error) {
	if page < 1 {
		return nil, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > utils.MaxPageSize {
		return nil, 0, utils.ErrInvalidPageSize
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, 0, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, 0, utils.ErrTripNotFound
	}

	images, total, err := s.galleryRepo.ListByTrip(ctx, tripID, includeInactive, page, pageSize)
	if err != nil {
		return nil, 0, repoErr("list gallery", err)
	}

	out := make([]response_models.ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, toImageResponse(img.ID, img.TripID, img.Orderable, img.StoredImage))
	}
	return out, total, nil
}

func (s *GalleryService) AddImage(ctx context.Context, tripID uuid.UUID, form request_models.UploadImageForm, file UploadedFile) (*response_models.ImageResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	stored, err := s.media.Store(ctx, galleryFolder, tripID, file, form.Caption)
	if err != nil {
		return nil, err
	}
	image := &dbm.GalleryImage{
		Orderable:   dbm.Orderable{OrderIndex: orderIndexOrDefault(form.OrderIndex), IsActive: true},
		StoredImage: stored,
		TripID:      tripID,
	}
	if err := s.galleryRepo.Create(ctx, image); err != nil {
		s.media.Discard(ctx, stored.StoragePath)
		return nil, repoErr("create gallery image", err)
	}
	resp := toImageResponse(image.ID, tripID, image.Orderable, image.StoredImage)
	return &resp, nil
}

func (s *GalleryService) UpdateImage(ctx context.Context, id uuid.UUID, req request_models.UpdateImageRequest) (*response_models.ImageResponse, error) {
	if err := s.galleryRepo.Update(ctx, id, imagePatch(req)); err != nil {
		return nil, repoErr("update gallery image", err)
	}
	image, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("get gallery image", err)
	}
	if image == nil {
		return nil, utils.ErrRecordNotFound
	}
	resp := toImageResponse(image.ID, image.TripID, image.Orderable, image.StoredImage)
	return &resp, nil
}

func (s *GalleryService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	image, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return repoErr("get gallery image", err)
	}
	if image == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return repoErr("delete gallery image", err)
	}
	s.media.Discard(ctx, image.StoragePath)
	return nil
}
