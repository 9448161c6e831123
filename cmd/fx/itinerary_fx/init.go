package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcms/internal/repositories"
	"travelcms/internal/services"
)

// Module carries everything that holds an order_index, plus the reorder
// batch that rewrites it.
var Module = fx.Provide(
	provideItineraryRepo, provideGalleryRepo, provideFaqRepo, provideOrderRepo,
	services.NewItineraryService,
	services.NewGalleryService,
	services.NewFaqService,
	services.NewReorderService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideGalleryRepo(db *gorm.DB) repositories.GalleryRepository {
	return repositories.NewGalleryRepository(db)
}

func provideFaqRepo(db *gorm.DB) repositories.FaqRepository {
	return repositories.NewFaqRepository(db)
}

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}
