package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *dbm.Account) error
	FindByEmail(ctx context.Context, email string) (*dbm.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	var account dbm.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) Insert(ctx context.Context, account *dbm.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}
