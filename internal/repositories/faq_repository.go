package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type FaqRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID, includeInactive bool) ([]dbm.Faq, error)
	ListImagesByFaqs(ctx context.Context, faqIDs []uuid.UUID, includeInactive bool) ([]dbm.FaqImage, error)

	Create(ctx context.Context, faq *dbm.Faq) error
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Faq, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	// Delete removes the FAQ and its images, returning their storage paths.
	Delete(ctx context.Context, id uuid.UUID) ([]string, error)

	CreateImage(ctx context.Context, image *dbm.FaqImage) error
	GetImage(ctx context.Context, id uuid.UUID) (*dbm.FaqImage, error)
	UpdateImage(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type faqRepository struct {
	db *gorm.DB
}

func NewFaqRepository(db *gorm.DB) FaqRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) ListByTrip(ctx context.Context, tripID uuid.UUID, includeInactive bool) ([]dbm.Faq, error) {
	var faqs []dbm.Faq
	err := orderedActive(r.db.WithContext(ctx).Where("trip_id = ?", tripID), includeInactive).
		Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) ListImagesByFaqs(ctx context.Context, faqIDs []uuid.UUID, includeInactive bool) ([]dbm.FaqImage, error) {
	if len(faqIDs) == 0 {
		return []dbm.FaqImage{}, nil
	}
	var images []dbm.FaqImage
	err := orderedActive(r.db.WithContext(ctx).Where("faq_id IN ?", faqIDs), includeInactive).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *faqRepository) Create(ctx context.Context, faq *dbm.Faq) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r *faqRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Faq, error) {
	return findByID[dbm.Faq](ctx, r.db, id)
}

func (r *faqRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.Faq](ctx, r.db, id, patch)
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbm.FaqImage{}).Where("faq_id = ?", id).Pluck("storage_path", &paths).Error; err != nil {
			return err
		}
		if err := tx.Where("faq_id = ?", id).Delete(&dbm.FaqImage{}).Error; err != nil {
			return err
		}
		return deleteByID[dbm.Faq](ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *faqRepository) CreateImage(ctx context.Context, image *dbm.FaqImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *faqRepository) GetImage(ctx context.Context, id uuid.UUID) (*dbm.FaqImage, error) {
	return findByID[dbm.FaqImage](ctx, r.db, id)
}

func (r *faqRepository) UpdateImage(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.FaqImage](ctx, r.db, id, patch)
}

func (r *faqRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return deleteByID[dbm.FaqImage](ctx, r.db, id)
}
