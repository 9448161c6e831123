package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcms/internal/repositories"
	"travelcms/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideCountryRepo, provideScheduleRepo,
	services.NewTripService, provideCountryService, provideScheduleService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideCountryRepo(db *gorm.DB) repositories.CountryRepository {
	return repositories.NewCountryRepository(db)
}

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideCountryService(countryRepo repositories.CountryRepository) services.CountryServiceInterface {
	return services.NewCountryService(countryRepo)
}

func provideScheduleService(scheduleRepo repositories.ScheduleRepository, tripRepo repositories.TripRepository) services.ScheduleServiceInterface {
	return services.NewScheduleService(scheduleRepo, tripRepo)
}
