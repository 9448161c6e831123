package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type CountryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]dbm.Country, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Country, error)
	GetByCode(ctx context.Context, code string) (*dbm.Country, error)
	Create(ctx context.Context, country *dbm.Country) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	// Delete detaches trips from the country before removing it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type countryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) List(ctx context.Context, activeOnly bool) ([]dbm.Country, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var countries []dbm.Country
	if err := query.Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Country, error) {
	return findByID[dbm.Country](ctx, r.db, id)
}

func (r *countryRepository) GetByCode(ctx context.Context, code string) (*dbm.Country, error) {
	var country dbm.Country
	err := r.db.WithContext(ctx).First(&country, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) Create(ctx context.Context, country *dbm.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *countryRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	return updateByID[dbm.Country](ctx, r.db, id, patch)
}

func (r *countryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbm.Trip{}).Where("country_id = ?", id).Update("country_id", nil).Error; err != nil {
			return err
		}
		return deleteByID[dbm.Country](ctx, tx, id)
	})
}
