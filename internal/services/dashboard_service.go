package services

import (
	"context"
	"time"

	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/pkg/utils"
)

const (
	defaultTopCountries = 5
	maxTopCountries     = 50
)

type DashboardService interface {
	// BuildDashboard summarises catalogue content. Schedules count as upcoming
	// from the start of the current UTC day.
	BuildDashboard(ctx context.Context, topCountries int) (*response_models.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, topCountries int) (*response_models.DashboardReport, error) {
	if topCountries <= 0 {
		topCountries = defaultTopCountries
	}
	if topCountries > maxTopCountries {
		topCountries = maxTopCountries
	}
	today := truncateDay(s.now())

	var kpis response_models.DashboardKPIs
	var err error
	if kpis.TotalTrips, kpis.ActiveTrips, err = s.repo.CountTrips(ctx); err != nil {
		return nil, repoErr("count trips", err)
	}
	if kpis.UpcomingSchedules, err = s.repo.CountUpcomingSchedules(ctx, today); err != nil {
		return nil, repoErr("count schedules", err)
	}
	if kpis.SeatsAvailable, err = s.repo.SumSeatsAvailable(ctx, today); err != nil {
		return nil, repoErr("sum seats", err)
	}
	if kpis.PublishedArticles, err = s.repo.CountPublishedArticles(ctx); err != nil {
		return nil, repoErr("count articles", err)
	}
	if kpis.GalleryImages, err = s.repo.CountGalleryImages(ctx); err != nil {
		return nil, repoErr("count gallery images", err)
	}

	rows, err := s.repo.TripsPerCountry(ctx, topCountries)
	if err != nil {
		return nil, repoErr("trips per country", err)
	}
	countries := make([]response_models.CountryTripCount, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, response_models.CountryTripCount{Code: row.Code, Name: row.Name, Trips: row.Count})
	}

	return &response_models.DashboardReport{
		AsOf:         utils.FormatDate(today),
		KPIs:         kpis,
		TopCountries: countries,
	}, nil
}
