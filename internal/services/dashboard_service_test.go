package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/internal/testutil"
)

func TestBuildDashboard(t *testing.T) {
	db := testutil.NewDB(t)
	japan := testutil.CreateCountry(t, db, "JP", "Japan")
	peru := testutil.CreateCountry(t, db, "PE", "Peru")

	for _, slug := range []string{"kyoto", "hokkaido", "okinawa"} {
		trip := testutil.CreateTrip(t, db, slug)
		require.NoError(t, db.Model(trip).Update("country_id", japan.ID).Error)
	}
	inca := testutil.CreateTrip(t, db, "inca-trail")
	require.NoError(t, db.Model(inca).Update("country_id", peru.ID).Error)
	hidden := testutil.CreateTrip(t, db, "hidden")
	require.NoError(t, db.Model(hidden).Updates(map[string]interface{}{"country_id": peru.ID, "is_active": false}).Error)

	schedules := []dbm.TripSchedule{
		{TripID: inca.ID, StartDate: date("2030-06-15"), EndDate: date("2030-06-20"), SeatsTotal: 10, SeatsAvailable: 4, IsActive: true},
		{TripID: inca.ID, StartDate: date("2030-07-01"), EndDate: date("2030-07-05"), SeatsTotal: 10, SeatsAvailable: 6, IsActive: true},
		{TripID: inca.ID, StartDate: date("2030-06-14"), EndDate: date("2030-06-20"), SeatsTotal: 10, SeatsAvailable: 9, IsActive: true},
		{TripID: inca.ID, StartDate: date("2030-08-01"), EndDate: date("2030-08-05"), SeatsTotal: 10, SeatsAvailable: 10, IsActive: false},
	}
	require.NoError(t, db.Create(&schedules).Error)

	testutil.CreateGalleryImage(t, db, inca.ID, 0)
	require.NoError(t, db.Create(&dbm.Article{Title: "Draft", Slug: "draft"}).Error)
	require.NoError(t, db.Create(&dbm.Article{Title: "Live", Slug: "live", IsPublished: true}).Error)

	svc := NewDashboardService(repositories.NewDashboardRepository(db))
	svc.(*dashboardService).now = func() time.Time { return time.Date(2030, 6, 15, 18, 30, 0, 0, time.UTC) }

	report, err := svc.BuildDashboard(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, "2030-06-15", report.AsOf)
	assert.Equal(t, response_models.DashboardKPIs{
		TotalTrips:        5,
		ActiveTrips:       4,
		UpcomingSchedules: 2,
		SeatsAvailable:    10,
		PublishedArticles: 1,
		GalleryImages:     1,
	}, report.KPIs)
	assert.Equal(t, []response_models.CountryTripCount{
		{Code: "JP", Name: "Japan", Trips: 3},
		{Code: "PE", Name: "Peru", Trips: 1},
	}, report.TopCountries)

	top, err := svc.BuildDashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, top.TopCountries, 1)
	assert.Equal(t, "JP", top.TopCountries[0].Code)
}

func TestBuildDashboardEmptyCatalogue(t *testing.T) {
	svc := NewDashboardService(repositories.NewDashboardRepository(testutil.NewDB(t)))

	report, err := svc.BuildDashboard(context.Background(), 500)
	require.NoError(t, err)
	assert.Zero(t, report.KPIs)
	assert.Empty(t, report.TopCountries)
}
