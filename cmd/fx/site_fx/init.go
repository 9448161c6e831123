package site_fx

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"travelcms/internal/repositories"
	"travelcms/internal/services"
)

var Module = fx.Provide(
	provideSiteRepo, services.NewSiteService)

func provideSiteRepo(db *sqlx.DB) repositories.SiteRepository {
	return repositories.NewSiteRepository(db)
}
