package account_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelcms/internal/config"
	"travelcms/internal/repositories"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

var Module = fx.Provide(
	provideJWTManager, provideAccountRepo, provideAccountService)

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.Security.JWTSecret, time.Duration(cfg.Security.JWTTTLMinutes)*time.Minute)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwt, logger)
}
