package db_fx

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelcms/internal/config"
	"travelcms/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideSiteReader)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			return nil, err
		}
		logger.Info("database migrated")
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}

func provideSiteReader(lc fx.Lifecycle, cfg *config.Config) (*sqlx.DB, error) {
	db, err := infra.InitSiteReader(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}
