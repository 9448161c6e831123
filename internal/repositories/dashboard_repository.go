package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type DashboardRepository interface {
	CountTrips(ctx context.Context) (total int64, active int64, err error)
	CountUpcomingSchedules(ctx context.Context, from time.Time) (int64, error)
	SumSeatsAvailable(ctx context.Context, from time.Time) (int64, error)
	CountPublishedArticles(ctx context.Context) (int64, error)
	CountGalleryImages(ctx context.Context) (int64, error)

	// TripsPerCountry counts active trips grouped by country, busiest first.
	TripsPerCountry(ctx context.Context, limit int) ([]CountryCountRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type CountryCountRow struct {
	Code  string `gorm:"column:code"`
	Name  string `gorm:"column:name"`
	Count int64  `gorm:"column:count"`
}

func (r *dashboardRepository) CountTrips(ctx context.Context) (int64, int64, error) {
	var total, active int64
	if err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *dashboardRepository) upcoming(ctx context.Context, from time.Time) *gorm.DB {
	return r.db.WithContext(ctx).Model(&dbm.TripSchedule{}).
		Where("is_active = ? AND start_date >= ?", true, from)
}

func (r *dashboardRepository) CountUpcomingSchedules(ctx context.Context, from time.Time) (int64, error) {
	var n int64
	err := r.upcoming(ctx, from).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumSeatsAvailable(ctx context.Context, from time.Time) (int64, error) {
	var sum int64
	err := r.upcoming(ctx, from).Select("COALESCE(SUM(seats_available), 0)").Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) CountPublishedArticles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Article{}).Where("is_published = ?", true).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountGalleryImages(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.GalleryImage{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) TripsPerCountry(ctx context.Context, limit int) ([]CountryCountRow, error) {
	var rows []CountryCountRow
	err := r.db.WithContext(ctx).
		Table("trips t").
		Select("c.code AS code, c.name AS name, COUNT(t.id) AS count").
		Joins("JOIN countries c ON c.id = t.country_id").
		Where("t.is_active = ?", true).
		Group("c.code, c.name").
		Order("count DESC, c.name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
