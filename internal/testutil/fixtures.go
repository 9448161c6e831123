package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	dbm "travelcms/internal/models/db_models"
)

func CreateTrip(t testing.TB, db *gorm.DB, slug string) *dbm.Trip {
	t.Helper()
	trip := &dbm.Trip{Title: "Trip " + slug, Slug: slug, Currency: "USD", IsActive: true}
	require.NoError(t, db.Create(trip).Error)
	return trip
}

func CreateDay(t testing.TB, db *gorm.DB, tripID uuid.UUID, dayNumber, orderIndex int) *dbm.ItineraryDay {
	t.Helper()
	day := &dbm.ItineraryDay{
		Orderable: dbm.Orderable{OrderIndex: orderIndex, IsActive: true},
		TripID:    tripID,
		DayNumber: dayNumber,
		DayTitle:  "Day",
	}
	require.NoError(t, db.Create(day).Error)
	return day
}

func CreateActivity(t testing.TB, db *gorm.DB, dayID uuid.UUID, activityTime string, orderIndex int) *dbm.Activity {
	t.Helper()
	activity := &dbm.Activity{
		Orderable:           dbm.Orderable{OrderIndex: orderIndex, IsActive: true},
		ItineraryDayID:      dayID,
		ActivityTime:        activityTime,
		ActivityDescription: "activity at " + activityTime,
	}
	require.NoError(t, db.Create(activity).Error)
	return activity
}

func CreateGalleryImage(t testing.TB, db *gorm.DB, tripID uuid.UUID, orderIndex int) *dbm.GalleryImage {
	t.Helper()
	path := "trip-gallery/" + tripID.String() + "/" + uuid.NewString() + ".jpg"
	image := &dbm.GalleryImage{
		Orderable:   dbm.Orderable{OrderIndex: orderIndex, IsActive: true},
		StoredImage: dbm.StoredImage{StoragePath: path, ImageURL: "http://cdn.test/" + path},
		TripID:      tripID,
	}
	require.NoError(t, db.Create(image).Error)
	return image
}

func CreateCountry(t testing.TB, db *gorm.DB, code, name string) *dbm.Country {
	t.Helper()
	country := &dbm.Country{Code: code, Name: name, IsActive: true}
	require.NoError(t, db.Create(country).Error)
	return country
}
