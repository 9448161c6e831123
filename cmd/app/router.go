package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/api/controllers"
	"travelcms/internal/config"
	dbm "travelcms/internal/models/db_models"
	"travelcms/pkg/middleware"
	"travelcms/pkg/utils"
)

type routeControllers struct {
	account   *controllers.AccountController
	country   *controllers.CountryController
	trip      *controllers.TripController
	itinerary *controllers.ItineraryController
	gallery   *controllers.GalleryController
	faq       *controllers.FaqController
	reorder   *controllers.ReorderController
	site      *controllers.SiteController
	dashboard *controllers.DashboardController
	health    *controllers.HealthController
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwt *utils.JWTManager,
	accountController *controllers.AccountController,
	countryController *controllers.CountryController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	galleryController *controllers.GalleryController,
	faqController *controllers.FaqController,
	reorderController *controllers.ReorderController,
	siteController *controllers.SiteController,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController,
) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.Security.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg.Security.RateLimitPerMinute, cfg.Security.RateLimitBurst, logger))

	// Multipart bodies beyond this spill to temp files.
	r.MaxMultipartMemory = int64(cfg.Storage.MaxUploadMB) << 20
	if cfg.Storage.Driver == "local" {
		r.Static("/uploads", cfg.Storage.LocalDir)
	}

	RegisterRoutes(r, jwt, routeControllers{
		account:   accountController,
		country:   countryController,
		trip:      tripController,
		itinerary: itineraryController,
		gallery:   galleryController,
		faq:       faqController,
		reorder:   reorderController,
		site:      siteController,
		dashboard: dashboardController,
		health:    healthController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, jwt *utils.JWTManager, rc routeControllers) {
	r.GET("/healthz", rc.health.Health)

	r.GET("/sitemap.xml", rc.site.Sitemap)
	r.GET("/trips/:slug", rc.site.GetTripPage)
	r.GET("/articles", rc.site.ListArticles)
	r.GET("/articles/:slug", rc.site.GetArticle)

	r.POST("/admin/auth/login", rc.account.Login)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(jwt), middleware.RoleMiddleware(dbm.RoleAdmin))

	admin.GET("/dashboard", rc.dashboard.GetDashboard)
	admin.POST("/reorder", rc.reorder.Reorder)

	countries := admin.Group("/countries")
	countries.GET("", rc.country.ListCountries)
	countries.POST("", rc.country.CreateCountry)
	countries.PUT("/:id", rc.country.UpdateCountry)
	countries.DELETE("/:id", rc.country.DeleteCountry)

	trips := admin.Group("/trips")
	trips.GET("", rc.trip.ListTrips)
	trips.POST("", rc.trip.CreateTrip)
	trips.GET("/:tripId", rc.trip.GetTrip)
	trips.PUT("/:tripId", rc.trip.UpdateTrip)
	trips.DELETE("/:tripId", rc.trip.DeleteTrip)
	trips.GET("/:tripId/schedules", rc.trip.ListSchedules)
	trips.POST("/:tripId/schedules", rc.trip.CreateSchedule)
	trips.GET("/:tripId/itinerary", rc.itinerary.GetItinerary)
	trips.POST("/:tripId/days", rc.itinerary.CreateDay)
	trips.GET("/:tripId/gallery", rc.gallery.ListGallery)
	trips.POST("/:tripId/gallery", rc.gallery.UploadGalleryImage)
	trips.GET("/:tripId/faqs", rc.faq.ListFaqs)
	trips.POST("/:tripId/faqs", rc.faq.CreateFaq)

	admin.PUT("/schedules/:id", rc.trip.UpdateSchedule)
	admin.DELETE("/schedules/:id", rc.trip.DeleteSchedule)

	admin.PUT("/days/:id", rc.itinerary.UpdateDay)
	admin.DELETE("/days/:id", rc.itinerary.DeleteDay)
	admin.POST("/days/:id/activities", rc.itinerary.CreateActivity)
	admin.POST("/days/:id/images", rc.itinerary.UploadDayImage)
	admin.PUT("/activities/:id", rc.itinerary.UpdateActivity)
	admin.DELETE("/activities/:id", rc.itinerary.DeleteActivity)
	admin.PUT("/day-images/:id", rc.itinerary.UpdateDayImage)
	admin.DELETE("/day-images/:id", rc.itinerary.DeleteDayImage)

	admin.PUT("/gallery/:id", rc.gallery.UpdateGalleryImage)
	admin.DELETE("/gallery/:id", rc.gallery.DeleteGalleryImage)

	admin.PUT("/faqs/:id", rc.faq.UpdateFaq)
	admin.DELETE("/faqs/:id", rc.faq.DeleteFaq)
	admin.POST("/faqs/:id/images", rc.faq.UploadFaqImage)
	admin.DELETE("/faq-images/:id", rc.faq.DeleteFaqImage)
}
