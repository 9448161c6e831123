package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type ItineraryRepository interface {
	ListDaysByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.ItineraryDay, error)
	ListActivitiesByDays(ctx context.Context, dayIDs []uuid.UUID) ([]dbm.Activity, error)
	ListImagesByDays(ctx context.Context, dayIDs []uuid.UUID) ([]dbm.DayImage, error)

	CreateDay(ctx context.Context, day *dbm.ItineraryDay) error
	GetDay(ctx context.Context, id uuid.UUID) (*dbm.ItineraryDay, error)
	UpdateDay(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	// DeleteDay removes the day with its activities and images and returns
	// the storage paths of the removed images.
	DeleteDay(ctx context.Context, id uuid.UUID) ([]string, error)

	CreateActivity(ctx context.Context, activity *dbm.Activity) error
	GetActivity(ctx context.Context, id uuid.UUID) (*dbm.Activity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	CreateDayImage(ctx context.Context, image *dbm.DayImage) error
	GetDayImage(ctx context.Context, id uuid.UUID) (*dbm.DayImage, error)
	UpdateDayImage(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	DeleteDayImage(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) ListDaysByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.ItineraryDay, error) {
	var days []dbm.ItineraryDay
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND is_active = ?", tripID, true).
		Order("order_index ASC").
		Order("day_number ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *itineraryRepository) ListActivitiesByDays(ctx context.Context, dayIDs []uuid.UUID) ([]dbm.Activity, error) {
	if len(dayIDs) == 0 {
		return []dbm.Activity{}, nil
	}
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("itinerary_day_id IN ? AND is_active = ?", dayIDs, true).
		Order("order_index ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *itineraryRepository) ListImagesByDays(ctx context.Context, dayIDs []uuid.UUID) ([]dbm.DayImage, error) {
	if len(dayIDs) == 0 {
		return []dbm.DayImage{}, nil
	}
	var images []dbm.DayImage
	err := orderedActive(r.db.WithContext(ctx).Where("itinerary_day_id IN ?", dayIDs), false).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *itineraryRepository) CreateDay(ctx context.Context, day *dbm.ItineraryDay) error {
	return r.db.WithContext(ctx).Create(day).Error
}

func (r *itineraryRepository) GetDay(ctx context.Context, id uuid.UUID) (*dbm.ItineraryDay, error) {
	return findByID[dbm.ItineraryDay](ctx, r.db, id)
}

func (r *itineraryRepository) UpdateDay(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.ItineraryDay](ctx, r.db, id, patch)
}

func (r *itineraryRepository) DeleteDay(ctx context.Context, id uuid.UUID) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbm.DayImage{}).
			Where("itinerary_day_id = ?", id).
			Pluck("storage_path", &paths).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_day_id = ?", id).Delete(&dbm.DayImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_day_id = ?", id).Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}
		return deleteByID[dbm.ItineraryDay](ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *itineraryRepository) CreateActivity(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *itineraryRepository) GetActivity(ctx context.Context, id uuid.UUID) (*dbm.Activity, error) {
	return findByID[dbm.Activity](ctx, r.db, id)
}

func (r *itineraryRepository) UpdateActivity(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.Activity](ctx, r.db, id, patch)
}

func (r *itineraryRepository) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return deleteByID[dbm.Activity](ctx, r.db, id)
}

func (r *itineraryRepository) CreateDayImage(ctx context.Context, image *dbm.DayImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *itineraryRepository) GetDayImage(ctx context.Context, id uuid.UUID) (*dbm.DayImage, error) {
	return findByID[dbm.DayImage](ctx, r.db, id)
}

func (r *itineraryRepository) UpdateDayImage(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.DayImage](ctx, r.db, id, patch)
}

func (r *itineraryRepository) DeleteDayImage(ctx context.Context, id uuid.UUID) error {
	return deleteByID[dbm.DayImage](ctx, r.db, id)
}
