package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type GalleryRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID, includeInactive bool, page, pageSize int) ([]dbm.GalleryImage, int64, error)
	Create(ctx context.Context, image *dbm.GalleryImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.GalleryImage, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) ListByTrip(ctx context.Context, tripID uuid.UUID, includeInactive bool, page, pageSize int) ([]dbm.GalleryImage, int64, error) {
	base := r.db.WithContext(ctx).Model(&dbm.GalleryImage{}).Where("trip_id = ?", tripID)
	if !includeInactive {
		base = base.Where("is_active = ?", true)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []dbm.GalleryImage
	err := base.
		Order("order_index ASC").
		Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&images).Error
	if err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

func (r *galleryRepository) Create(ctx context.Context, image *dbm.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.GalleryImage, error) {
	return findByID[dbm.GalleryImage](ctx, r.db, id)
}

func (r *galleryRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.GalleryImage](ctx, r.db, id, patch)
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[dbm.GalleryImage](ctx, r.db, id)
}
