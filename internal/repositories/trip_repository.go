package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type TripFilter struct {
	CountryID *uuid.UUID
	Search    string
	Active    *bool
	Sort      string
	Page      int
	PageSize  int
}

type TripRepository interface {
	List(ctx context.Context, filter TripFilter) ([]dbm.Trip, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Trip, error)
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, trip *dbm.Trip) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	// Delete removes the trip and every child row in one transaction and
	// returns the storage paths of all removed images.
	Delete(ctx context.Context, id uuid.UUID) ([]string, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

var tripSorts = map[string]string{
	"created_desc": "created_at DESC",
	"created_asc":  "created_at ASC",
	"title_asc":    "title ASC",
	"price_asc":    "price_minor ASC",
	"price_desc":   "price_minor DESC",
}

func (r *tripRepository) List(ctx context.Context, filter TripFilter) ([]dbm.Trip, int64, error) {
	query := r.db.WithContext(ctx).Model(&dbm.Trip{})
	if filter.CountryID != nil {
		query = query.Where("country_id = ?", *filter.CountryID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := tripSorts[filter.Sort]
	if !ok {
		order = tripSorts["created_desc"]
	}

	var trips []dbm.Trip
	err := query.
		Preload("Country").
		Order(order).
		Order("id ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (r *tripRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Country").
		First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&dbm.Trip{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.Trip](ctx, r.db, id, patch)
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dayIDs := tx.Model(&dbm.ItineraryDay{}).Select("id").Where("trip_id = ?", id)
		faqIDs := tx.Model(&dbm.Faq{}).Select("id").Where("trip_id = ?", id)

		var dayPaths, galleryPaths, faqPaths []string
		if err := tx.Model(&dbm.DayImage{}).Where("itinerary_day_id IN (?)", dayIDs).Pluck("storage_path", &dayPaths).Error; err != nil {
			return err
		}
		if err := tx.Model(&dbm.GalleryImage{}).Where("trip_id = ?", id).Pluck("storage_path", &galleryPaths).Error; err != nil {
			return err
		}
		if err := tx.Model(&dbm.FaqImage{}).Where("faq_id IN (?)", faqIDs).Pluck("storage_path", &faqPaths).Error; err != nil {
			return err
		}

		if err := tx.Where("itinerary_day_id IN (?)", dayIDs).Delete(&dbm.DayImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_day_id IN (?)", dayIDs).Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("faq_id IN (?)", faqIDs).Delete(&dbm.FaqImage{}).Error; err != nil {
			return err
		}
		for _, model := range []interface{}{&dbm.ItineraryDay{}, &dbm.Faq{}, &dbm.GalleryImage{}, &dbm.TripSchedule{}} {
			if err := tx.Where("trip_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := deleteByID[dbm.Trip](ctx, tx, id); err != nil {
			return err
		}

		paths = append(append(dayPaths, galleryPaths...), faqPaths...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
