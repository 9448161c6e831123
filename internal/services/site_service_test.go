package services

import (
	"context"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"travelcms/internal/config"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/internal/testutil"
	"travelcms/pkg/utils"
)

func newSiteService(t *testing.T, db *gorm.DB) *SiteService {
	cfg := &config.Config{Site: config.SiteConfig{BaseURL: "https://travel.example"}}
	svc := NewSiteService(
		repositories.NewSiteRepository(testutil.SiteDB(t, db)),
		repositories.NewItineraryRepository(db),
		repositories.NewFaqRepository(db),
		repositories.NewGalleryRepository(db),
		repositories.NewScheduleRepository(db),
		cfg,
	).(*SiteService)
	svc.now = func() time.Time { return date("2030-06-15") }
	return svc
}

func createArticle(t *testing.T, db *gorm.DB, slug string, published bool, at time.Time) {
	t.Helper()
	article := &dbm.Article{Title: slug, Slug: slug, Excerpt: "x", Body: "body of " + slug, IsPublished: published}
	if published {
		article.PublishedAt = &at
	}
	require.NoError(t, db.Create(article).Error)
}

func TestSitemapListsPublicPages(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateTrip(t, db, "kyoto")
	hidden := testutil.CreateTrip(t, db, "draft-trip")
	require.NoError(t, db.Model(&dbm.Trip{}).Where("id = ?", hidden.ID).Update("is_active", false).Error)
	createArticle(t, db, "packing-list", true, date("2030-01-01"))
	createArticle(t, db, "unfinished", false, time.Time{})

	body, err := newSiteService(t, db).Sitemap(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(body), xml.Header)

	var set response_models.URLSet
	require.NoError(t, xml.Unmarshal(body, &set))
	var locs []string
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Equal(t, []string{
		"https://travel.example/",
		"https://travel.example/trips/kyoto",
		"https://travel.example/articles/packing-list",
	}, locs)
	assert.NotEmpty(t, set.URLs[1].LastMod)
}

func TestTripPageAssemblesOrderedContent(t *testing.T) {
	db := testutil.NewDB(t)
	country := &dbm.Country{Name: "Peru", Code: "PE", IsActive: true}
	require.NoError(t, db.Create(country).Error)
	trip := &dbm.Trip{Title: "Inca Trail", Slug: "inca-trail", CountryID: &country.ID, Currency: "USD", IsActive: true}
	require.NoError(t, db.Create(trip).Error)

	day2 := testutil.CreateDay(t, db, trip.ID, 2, 1)
	day1 := testutil.CreateDay(t, db, trip.ID, 1, 1)
	testutil.CreateActivity(t, db, day1.ID, "9:00", 0)
	testutil.CreateActivity(t, db, day1.ID, "10:00", 0)
	img := testutil.CreateGalleryImage(t, db, trip.ID, 0)

	past := &dbm.TripSchedule{TripID: trip.ID, StartDate: date("2030-01-01"), EndDate: date("2030-01-05"), IsActive: true}
	upcoming := &dbm.TripSchedule{TripID: trip.ID, StartDate: date("2030-07-01"), EndDate: date("2030-07-05"), IsActive: true}
	require.NoError(t, db.Create(past).Error)
	require.NoError(t, db.Create(upcoming).Error)

	page, err := newSiteService(t, db).GetTripPage(context.Background(), "inca-trail")
	require.NoError(t, err)

	assert.Equal(t, "Peru", page.CountryName)
	require.Len(t, page.Itinerary, 2)
	assert.Equal(t, day1.ID, page.Itinerary[0].ID)
	assert.Equal(t, day2.ID, page.Itinerary[1].ID)
	assert.Equal(t, []string{"10:00", "9:00"}, activityTimes(page.Itinerary[0].Activities))
	require.Len(t, page.Gallery, 1)
	assert.Equal(t, img.ID, page.Gallery[0].ID)
	require.Len(t, page.Schedules, 1)
	assert.Equal(t, upcoming.ID, page.Schedules[0].ID)
	assert.Empty(t, page.Faqs)
}

func TestTripPageUnknownOrInactive(t *testing.T) {
	db := testutil.NewDB(t)
	hidden := testutil.CreateTrip(t, db, "hidden")
	require.NoError(t, db.Model(&dbm.Trip{}).Where("id = ?", hidden.ID).Update("is_active", false).Error)
	svc := newSiteService(t, db)

	_, err := svc.GetTripPage(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	_, err = svc.GetTripPage(context.Background(), "hidden")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestArticles(t *testing.T) {
	db := testutil.NewDB(t)
	createArticle(t, db, "older", true, date("2030-01-01"))
	createArticle(t, db, "newer", true, date("2030-02-01"))
	createArticle(t, db, "draft", false, time.Time{})
	svc := newSiteService(t, db)
	ctx := context.Background()

	list, err := svc.ListArticles(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Slug)
	assert.Equal(t, "older", list[1].Slug)
	assert.Equal(t, "2030-02-01T00:00:00Z", list[0].PublishedAt)

	article, err := svc.GetArticle(ctx, "older")
	require.NoError(t, err)
	assert.Equal(t, "body of older", article.Body)

	_, err = svc.GetArticle(ctx, "draft")
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}
