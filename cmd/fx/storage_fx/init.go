package storage_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelcms/internal/config"
	"travelcms/internal/services"
	"travelcms/internal/storage"
)

var Module = fx.Provide(
	storage.New, provideMediaService)

func provideMediaService(store storage.ObjectStore, cfg *config.Config, logger *zap.Logger) services.MediaServiceInterface {
	return services.NewMediaService(store, cfg, logger)
}
