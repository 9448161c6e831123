package services

import (
	"context"
	"errors"
	"testing"

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

func newReorderService(t *testing.T, db *gorm.DB) ReorderServiceInterface {
	return NewReorderService(repositories.NewOrderRepository(db))
}

func galleryIndex(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var img dbm.GalleryImage
	require.NoError(t, db.First(&img, "id = ?", id).Error)
	return img.OrderIndex
}

func item(id uuid.UUID, idx int) request_models.ReorderItem {
	return request_models.ReorderItem{ID: id.String(), OrderIndex: intPtr(idx)}
}

func TestReorderAppliesEveryItem(t *testing.T) {
	db := testutil.NewDB(t)
	trip := testutil.CreateTrip(t, db, "alps")
	a := testutil.CreateGalleryImage(t, db, trip.ID, 0)
	b := testutil.CreateGalleryImage(t, db, trip.ID, 0)
	c := testutil.CreateGalleryImage(t, db, trip.ID, 0)

	err := newReorderService(t, db).Reorder(context.Background(), request_models.ReorderRequest{
		EntityType: "gallery-image",
		Items:      []request_models.ReorderItem{item(a.ID, 3), item(b.ID, 1), item(c.ID, 2)},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, galleryIndex(t, db, a.ID))
	assert.Equal(t, 1, galleryIndex(t, db, b.ID))
	assert.Equal(t, 2, galleryIndex(t, db, c.ID))

	images, _, err := repositories.NewGalleryRepository(db).ListByTrip(context.Background(), trip.ID, false, 1, 10)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, []uuid.UUID{b.ID, c.ID, a.ID}, []uuid.UUID{images[0].ID, images[1].ID, images[2].ID})
}

func TestReorderAcceptsNegativeAndSparseIndexes(t *testing.T) {
	db := testutil.NewDB(t)
	trip := testutil.CreateTrip(t, db, "coast")
	day := testutil.CreateDay(t, db, trip.ID, 1, 0)
	first := testutil.CreateActivity(t, db, day.ID, "", 0)
	second := testutil.CreateActivity(t, db, day.ID, "", 0)

	err := newReorderService(t, db).Reorder(context.Background(), request_models.ReorderRequest{
		EntityType: "activity",
		Items:      []request_models.ReorderItem{item(first.ID, 100), item(second.ID, -5)},
	})
	require.NoError(t, err)

	var moved, pushed dbm.Activity
	require.NoError(t, db.First(&moved, "id = ?", second.ID).Error)
	assert.Equal(t, -5, moved.OrderIndex)
	require.NoError(t, db.First(&pushed, "id = ?", first.ID).Error)
	assert.Equal(t, 100, pushed.OrderIndex)
}

func TestReorderPartialFailureKeepsAppliedUpdates(t *testing.T) {
	db := testutil.NewDB(t)
	trip := testutil.CreateTrip(t, db, "fjords")
	first := testutil.CreateGalleryImage(t, db, trip.ID, 0)
	last := testutil.CreateGalleryImage(t, db, trip.ID, 0)

	err := newReorderService(t, db).Reorder(context.Background(), request_models.ReorderRequest{
		EntityType: "gallery-image",
		Items:      []request_models.ReorderItem{item(first.ID, 1), item(uuid.New(), 2), item(last.ID, 3)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrReorderFailed))

	// No rollback: the two valid rows were written.
	assert.Equal(t, 1, galleryIndex(t, db, first.ID))
	assert.Equal(t, 3, galleryIndex(t, db, last.ID))
}

func TestReorderEntityTypeSelectsTable(t *testing.T) {
	db := testutil.NewDB(t)
	trip := testutil.CreateTrip(t, db, "desert")
	img := testutil.CreateGalleryImage(t, db, trip.ID, 0)

	// A gallery id sent as a day does not match any day row.
	err := newReorderService(t, db).Reorder(context.Background(), request_models.ReorderRequest{
		EntityType: "day",
		Items:      []request_models.ReorderItem{item(img.ID, 9)},
	})
	assert.ErrorIs(t, err, utils.ErrReorderFailed)
	assert.Equal(t, 0, galleryIndex(t, db, img.ID))
}

func TestReorderDoesNotTouchOtherScopes(t *testing.T) {
	db := testutil.NewDB(t)
	tripA := testutil.CreateTrip(t, db, "a")
	tripB := testutil.CreateTrip(t, db, "b")
	dayA := testutil.CreateDay(t, db, tripA.ID, 1, 4)
	dayB := testutil.CreateDay(t, db, tripB.ID, 1, 4)

	err := newReorderService(t, db).Reorder(context.Background(), request_models.ReorderRequest{
		EntityType: "day",
		Items:      []request_models.ReorderItem{item(dayA.ID, 0)},
	})
	require.NoError(t, err)

	var untouched dbm.ItineraryDay
	require.NoError(t, db.First(&untouched, "id = ?", dayB.ID).Error)
	assert.Equal(t, 4, untouched.OrderIndex)
}

func TestReorderValidationRejectsBeforeWriting(t *testing.T) {
	db := testutil.NewDB(t)
	trip := testutil.CreateTrip(t, db, "lakes")
	img := testutil.CreateGalleryImage(t, db, trip.ID, 7)
	svc := newReorderService(t, db)

	tests := []struct {
		name  string
		req   request_models.ReorderRequest
		field string
	}{
		{
			name:  "unknown entity type",
			req:   request_models.ReorderRequest{EntityType: "trip", Items: []request_models.ReorderItem{item(img.ID, 1)}},
			field: "entityType",
		},
		{
			name:  "empty items",
			req:   request_models.ReorderRequest{EntityType: "gallery-image"},
			field: "items",
		},
		{
			name: "malformed id after a valid one",
			req: request_models.ReorderRequest{EntityType: "gallery-image", Items: []request_models.ReorderItem{
				item(img.ID, 1),
				{ID: "not-a-uuid", OrderIndex: intPtr(2)},
			}},
			field: "items[1].id",
		},
		{
			name: "missing order index",
			req: request_models.ReorderRequest{EntityType: "gallery-image", Items: []request_models.ReorderItem{
				item(img.ID, 1),
				{ID: uuid.NewString()},
			}},
			field: "items[1].order_index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Reorder(context.Background(), tt.req)
			var verr *utils.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
			require.NotEmpty(t, verr.Fields)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, 7, galleryIndex(t, db, img.ID))
		})
	}
}

type failingOrderRepo struct {
	fail map[uuid.UUID]bool
}

func (f *failingOrderRepo) SetOrderIndex(ctx context.Context, entity dbm.EntityType, id uuid.UUID, orderIndex int) error {
	if f.fail[id] {
		return errors.New("connection reset")
	}
	return nil
}

func TestReorderReportsBackendFailure(t *testing.T) {
	broken := uuid.New()
	svc := NewReorderService(&failingOrderRepo{fail: map[uuid.UUID]bool{broken: true}})

	err := svc.Reorder(context.Background(), request_models.ReorderRequest{
		EntityType: "faq",
		Items:      []request_models.ReorderItem{item(uuid.New(), 0), item(broken, 1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrReorderFailed)
	assert.Contains(t, err.Error(), "faq: 1 of 2 updates failed")
	assert.Contains(t, err.Error(), "connection reset")
}
