package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/request_models"
	"travelcms/internal/repositories"
	"travelcms/internal/testutil"
	"travelcms/pkg/utils"
)

func newTripService(t *testing.T, db *gorm.DB) (TripServiceInterface, string) {
	media, dir := newTestMedia(t)
	return NewTripService(repositories.NewTripRepository(db), repositories.NewCountryRepository(db), media), dir
}

func TestNormalizeSlug(t *testing.T) {
	tests := map[string]string{
		"Kyoto":              "kyoto",
		"  Kyoto & Nara!  ":  "kyoto-nara",
		"10-day--Peru trek":  "10-day-peru-trek",
		"---":                "",
		"Ölands Kust":        "lands-kust",
		"already-normalized": "already-normalized",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeSlug(in), in)
	}
}

func TestCreateTripSlugAndCountry(t *testing.T) {
	db := testutil.NewDB(t)
	svc, _ := newTripService(t, db)
	ctx := context.Background()

	country := &dbm.Country{Name: "Japan", Code: "JP", IsActive: true}
	require.NoError(t, db.Create(country).Error)
	countryID := country.ID.String()

	trip, err := svc.CreateTrip(ctx, request_models.CreateTripRequest{
		Title:      " Cherry Blossom Tour ",
		Slug:       "Cherry Blossom Tour",
		CountryID:  &countryID,
		PriceMinor: 249900,
		Currency:   "jpy",
	})
	require.NoError(t, err)
	assert.Equal(t, "cherry-blossom-tour", trip.Slug)
	assert.Equal(t, "Cherry Blossom Tour", trip.Title)
	assert.Equal(t, "JPY", trip.Currency)
	assert.True(t, trip.IsActive)
	require.NotNil(t, trip.Country)
	assert.Equal(t, "JP", trip.Country.Code)

	_, err = svc.CreateTrip(ctx, request_models.CreateTripRequest{Title: "Dup", Slug: "cherry blossom tour"})
	assert.ErrorIs(t, err, utils.ErrSlugTaken)

	missing := uuid.NewString()
	_, err = svc.CreateTrip(ctx, request_models.CreateTripRequest{Title: "X", Slug: "x", CountryID: &missing})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "country_id", verr.Fields[0].Field)
}

func TestUpdateTripPatchesOnlyGivenFields(t *testing.T) {
	db := testutil.NewDB(t)
	svc, _ := newTripService(t, db)
	ctx := context.Background()

	trip, err := svc.CreateTrip(ctx, request_models.CreateTripRequest{Title: "Norway", Slug: "norway", Summary: "Fjords", PriceMinor: 100})
	require.NoError(t, err)
	other, err := svc.CreateTrip(ctx, request_models.CreateTripRequest{Title: "Sweden", Slug: "sweden"})
	require.NoError(t, err)

	zero := int64(0)
	updated, err := svc.UpdateTrip(ctx, trip.ID, request_models.UpdateTripRequest{PriceMinor: &zero, IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Price)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Fjords", updated.Summary)

	// Keeping its own slug is fine, taking another trip's is not.
	_, err = svc.UpdateTrip(ctx, trip.ID, request_models.UpdateTripRequest{Slug: strPtr("norway")})
	require.NoError(t, err)
	_, err = svc.UpdateTrip(ctx, trip.ID, request_models.UpdateTripRequest{Slug: strPtr(other.Slug)})
	assert.ErrorIs(t, err, utils.ErrSlugTaken)

	_, err = svc.UpdateTrip(ctx, uuid.New(), request_models.UpdateTripRequest{Title: strPtr("ghost")})
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestListTripsFiltersAndCounts(t *testing.T) {
	db := testutil.NewDB(t)
	svc, _ := newTripService(t, db)
	ctx := context.Background()

	for _, slug := range []string{"lisbon-walk", "porto-wine", "lisbon-food", "madrid"} {
		_, err := svc.CreateTrip(ctx, request_models.CreateTripRequest{Title: slug, Slug: slug})
		require.NoError(t, err)
	}

	trips, total, err := svc.ListTrips(ctx, request_models.ListTripsQuery{Page: 1, PageSize: 1, Search: "LISBON", Sort: "title_asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, trips, 1)
	assert.Equal(t, "lisbon-food", trips[0].Slug)
	assert.Empty(t, trips[0].Description)

	_, _, err = svc.ListTrips(ctx, request_models.ListTripsQuery{Page: 1, PageSize: 10, CountryID: "bad"})
	var verr *utils.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, _, err = svc.ListTrips(ctx, request_models.ListTripsQuery{Page: 0, PageSize: 10})
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}

func TestDeleteTripCascadesAndRemovesBlobs(t *testing.T) {
	db := testutil.NewDB(t)
	svc, dir := newTripService(t, db)
	ctx := context.Background()
	// Share the trip service's store so blob removal is observable.
	media := svc.(*TripService).media
	gallery := NewGalleryService(repositories.NewGalleryRepository(db), repositories.NewTripRepository(db), media)
	itinerary := NewItineraryService(repositories.NewItineraryRepository(db), repositories.NewTripRepository(db), media)
	faqs := NewFaqService(repositories.NewFaqRepository(db), repositories.NewTripRepository(db), media)

	trip := testutil.CreateTrip(t, db, "greece")
	keep := testutil.CreateTrip(t, db, "turkey")
	day := testutil.CreateDay(t, db, trip.ID, 1, 0)
	testutil.CreateActivity(t, db, day.ID, "09:00", 0)
	testutil.CreateGalleryImage(t, db, keep.ID, 0)

	_, err := gallery.AddImage(ctx, trip.ID, request_models.UploadImageForm{}, pngUpload())
	require.NoError(t, err)
	_, err = itinerary.AddDayImage(ctx, day.ID, request_models.UploadImageForm{}, pngUpload())
	require.NoError(t, err)
	faq, err := faqs.CreateFaq(ctx, trip.ID, request_models.CreateFaqRequest{Question: "Visa?", Answer: "No"})
	require.NoError(t, err)
	_, err = faqs.AddImage(ctx, faq.ID, request_models.UploadImageForm{}, pngUpload())
	require.NoError(t, err)
	_, err = NewScheduleService(repositories.NewScheduleRepository(db), repositories.NewTripRepository(db)).
		CreateSchedule(ctx, trip.ID, request_models.CreateScheduleRequest{
			StartDate: time.Now().AddDate(0, 1, 0), EndDate: time.Now().AddDate(0, 1, 7), SeatsTotal: 10,
		})
	require.NoError(t, err)
	require.Equal(t, 3, countFiles(t, dir))

	require.NoError(t, svc.DeleteTrip(ctx, trip.ID))
	assert.Zero(t, countFiles(t, dir))

	for _, model := range []interface{}{&dbm.ItineraryDay{}, &dbm.Activity{}, &dbm.DayImage{}, &dbm.Faq{}, &dbm.FaqImage{}, &dbm.TripSchedule{}} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Zero(t, n, "%T rows left", model)
	}
	var galleryRows int64
	require.NoError(t, db.Model(&dbm.GalleryImage{}).Count(&galleryRows).Error)
	assert.Equal(t, int64(1), galleryRows, "other trip's gallery must survive")

	assert.ErrorIs(t, svc.DeleteTrip(ctx, trip.ID), utils.ErrRecordNotFound)
}
