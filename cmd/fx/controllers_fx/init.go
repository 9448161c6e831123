package controllers_fx

import (
	"go.uber.org/fx"
	"travelcms/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCountryController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewGalleryController),
	fx.Provide(controllers.NewFaqController),
	fx.Provide(controllers.NewReorderController),
	fx.Provide(controllers.NewSiteController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewHealthController))
