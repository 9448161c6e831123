package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type ScheduleRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripSchedule, error)
	ListUpcomingByTrip(ctx context.Context, tripID uuid.UUID, from time.Time) ([]dbm.TripSchedule, error)
	Create(ctx context.Context, schedule *dbm.TripSchedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.TripSchedule, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripSchedule, error) {
	var schedules []dbm.TripSchedule
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("start_date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) ListUpcomingByTrip(ctx context.Context, tripID uuid.UUID, from time.Time) ([]dbm.TripSchedule, error) {
	var schedules []dbm.TripSchedule
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND is_active = ? AND start_date >= ?", tripID, true, from).
		Order("start_date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *dbm.TripSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.TripSchedule, error) {
	return findByID[dbm.TripSchedule](ctx, r.db, id)
}

func (r *scheduleRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.TripSchedule](ctx, r.db, id, patch)
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[dbm.TripSchedule](ctx, r.db, id)
}
