package services

import (
	"context"

	"github.com/google/uuid"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/request_models"
	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/pkg/ordering"
	"travelcms/pkg/utils"
)

const dayImageFolder = "itinerary-days"

type ItineraryServiceInterface interface {
	// GetItinerary returns the active days of a trip in display order, each
	// with its active activities and images in display order.
	GetItinerary(ctx context.Context, tripID uuid.UUID) ([]response_models.ItineraryDayResponse, error)

	CreateDay(ctx context.Context, tripID uuid.UUID, req request_models.CreateDayRequest) (*response_models.ItineraryDayResponse, error)
	UpdateDay(ctx context.Context, id uuid.UUID, req request_models.UpdateDayRequest) (*response_models.ItineraryDayResponse, error)
	DeleteDay(ctx context.Context, id uuid.UUID) error

	CreateActivity(ctx context.Context, dayID uuid.UUID, req request_models.CreateActivityRequest) (*response_models.ActivityResponse, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, req request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	AddDayImage(ctx context.Context, dayID uuid.UUID, form request_models.UploadImageForm, file UploadedFile) (*response_models.ImageResponse, error)
	UpdateDayImage(ctx context.Context, id uuid.UUID, req request_models.UpdateImageRequest) (*response_models.ImageResponse, error)
	DeleteDayImage(ctx context.Context, id uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	tripRepo      repositories.TripRepository
	media         MediaServiceInterface
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
	media MediaServiceInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		tripRepo:      tripRepo,
		media:         media,
	}
}

func (s *ItineraryService) GetItinerary(ctx context.Context, tripID uuid.UUID) ([]response_models.ItineraryDayResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return loadItinerary(ctx, s.itineraryRepo, tripID)
}

// loadItinerary runs the three bulk queries. Any failure fails the read.
func loadItinerary(ctx context.Context, repo repositories.ItineraryRepository, tripID uuid.UUID) ([]response_models.ItineraryDayResponse, error) {
	days, err := repo.ListDaysByTrip(ctx, tripID)
	if err != nil {
		return nil, repoErr("list itinerary days", err)
	}
	dayIDs := make([]uuid.UUID, 0, len(days))
	for _, d := range days {
		dayIDs = append(dayIDs, d.ID)
	}
	activities, err := repo.ListActivitiesByDays(ctx, dayIDs)
	if err != nil {
		return nil, repoErr("list activities", err)
	}
	images, err := repo.ListImagesByDays(ctx, dayIDs)
	if err != nil {
		return nil, repoErr("list day images", err)
	}
	return AssembleItinerary(days, activities, images), nil
}

// AssembleItinerary groups children under their day and applies display
// order at every level. Children of days not in the list are dropped.
func AssembleItinerary(days []dbm.ItineraryDay, activities []dbm.Activity, images []dbm.DayImage) []response_models.ItineraryDayResponse {
	ordering.Sort(days, ordering.ByInt(func(d dbm.ItineraryDay) int { return d.DayNumber }))
	ordering.Sort(activities, ordering.ByClockString(func(a dbm.Activity) string { return a.ActivityTime }))
	ordering.Sort(images)

	activitiesByDay := make(map[uuid.UUID][]response_models.ActivityResponse, len(days))
	for _, a := range activities {
		activitiesByDay[a.ItineraryDayID] = append(activitiesByDay[a.ItineraryDayID], toActivityResponse(a))
	}
	imagesByDay := make(map[uuid.UUID][]response_models.ImageResponse, len(days))
	for _, img := range images {
		imagesByDay[img.ItineraryDayID] = append(imagesByDay[img.ItineraryDayID], toImageResponse(img.ID, img.ItineraryDayID, img.Orderable, img.StoredImage))
	}

	out := make([]response_models.ItineraryDayResponse, 0, len(days))
	for _, d := range days {
		resp := toDayResponse(d)
		if acts, ok := activitiesByDay[d.ID]; ok {
			resp.Activities = acts
		}
		if imgs, ok := imagesByDay[d.ID]; ok {
			resp.Images = imgs
		}
		out = append(out, resp)
	}
	return out
}

func (s *ItineraryService) CreateDay(ctx context.Context, tripID uuid.UUID, req request_models.CreateDayRequest) (*response_models.ItineraryDayResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	day := &dbm.ItineraryDay{
		Orderable:      dbm.Orderable{OrderIndex: orderIndexOrDefault(req.OrderIndex), IsActive: true},
		TripID:         tripID,
		DayNumber:      req.DayNumber,
		DayTitle:       req.DayTitle,
		DayDescription: req.DayDescription,
	}
	if err := s.itineraryRepo.CreateDay(ctx, day); err != nil {
		return nil, repoErr("create day", err)
	}
	resp := toDayResponse(*day)
	return &resp, nil
}

func (s *ItineraryService) UpdateDay(ctx context.Context, id uuid.UUID, req request_models.UpdateDayRequest) (*response_models.ItineraryDayResponse, error) {
	patch := map[string]interface{}{}
	setIf(patch, "day_number", req.DayNumber)
	setIf(patch, "day_title", req.DayTitle)
	setIf(patch, "day_description", req.DayDescription)
	setIf(patch, "order_index", req.OrderIndex)
	setIf(patch, "is_active", req.IsActive)

	if err := s.itineraryRepo.UpdateDay(ctx, id, patch); err != nil {
		return nil, repoErr("update day", err)
	}
	day, err := s.itineraryRepo.GetDay(ctx, id)
	if err != nil {
		return nil, repoErr("get day", err)
	}
	if day == nil {
		return nil, utils.ErrRecordNotFound
	}
	resp := toDayResponse(*day)
	return &resp, nil
}

func (s *ItineraryService) DeleteDay(ctx context.Context, id uuid.UUID) error {
	paths, err := s.itineraryRepo.DeleteDay(ctx, id)
	if err != nil {
		return repoErr("delete day", err)
	}
	s.media.Discard(ctx, paths...)
	return nil
}

func (s *ItineraryService) CreateActivity(ctx context.Context, dayID uuid.UUID, req request_models.CreateActivityRequest) (*response_models.ActivityResponse, error) {
	if err := s.requireDay(ctx, dayID); err != nil {
		return nil, err
	}
	activity := &dbm.Activity{
		Orderable:           dbm.Orderable{OrderIndex: orderIndexOrDefault(req.OrderIndex), IsActive: true},
		ItineraryDayID:      dayID,
		ActivityTime:        req.ActivityTime,
		ActivityDescription: req.ActivityDescription,
	}
	if err := s.itineraryRepo.CreateActivity(ctx, activity); err != nil {
		return nil, repoErr("create activity", err)
	}
	resp := toActivityResponse(*activity)
	return &resp, nil
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, id uuid.UUID, req request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error) {
	patch := map[string]interface{}{}
	setIf(patch, "activity_time", req.ActivityTime)
	setIf(patch, "activity_description", req.ActivityDescription)
	setIf(patch, "order_index", req.OrderIndex)
	setIf(patch, "is_active", req.IsActive)

	if err := s.itineraryRepo.UpdateActivity(ctx, id, patch); err != nil {
		return nil, repoErr("update activity", err)
	}
	activity, err := s.itineraryRepo.GetActivity(ctx, id)
	if err != nil {
		return nil, repoErr("get activity", err)
	}
	if activity == nil {
		return nil, utils.ErrRecordNotFound
	}
	resp := toActivityResponse(*activity)
	return &resp, nil
}

func (s *ItineraryService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if err := s.itineraryRepo.DeleteActivity(ctx, id); err != nil {
		return repoErr("delete activity", err)
	}
	return nil
}

func (s *ItineraryService) AddDayImage(ctx context.Context, dayID uuid.UUID, form request_models.UploadImageForm, file UploadedFile) (*response_models.ImageResponse, error) {
	if err := s.requireDay(ctx, dayID); err != nil {
		return nil, err
	}
	stored, err := s.media.Store(ctx, dayImageFolder, dayID, file, form.Caption)
	if err != nil {
		return nil, err
	}
	image := &dbm.DayImage{
		Orderable:      dbm.Orderable{OrderIndex: orderIndexOrDefault(form.OrderIndex), IsActive: true},
		StoredImage:    stored,
		ItineraryDayID: dayID,
	}
	if err := s.itineraryRepo.CreateDayImage(ctx, image); err != nil {
		s.media.Discard(ctx, stored.StoragePath)
		return nil, repoErr("create day image", err)
	}
	resp := toImageResponse(image.ID, dayID, image.Orderable, image.StoredImage)
	return &resp, nil
}

func (s *ItineraryService) UpdateDayImage(ctx context.Context, id uuid.UUID, req request_models.UpdateImageRequest) (*response_models.ImageResponse, error) {
	if err := s.itineraryRepo.UpdateDayImage(ctx, id, imagePatch(req)); err != nil {
		return nil, repoErr("update day image", err)
	}
	image, err := s.itineraryRepo.GetDayImage(ctx, id)
	if err != nil {
		return nil, repoErr("get day image", err)
	}
	if image == nil {
		return nil, utils.ErrRecordNotFound
	}
	resp := toImageResponse(image.ID, image.ItineraryDayID, image.Orderable, image.StoredImage)
	return &resp, nil
}

func (s *ItineraryService) DeleteDayImage(ctx context.Context, id uuid.UUID) error {
	image, err := s.itineraryRepo.GetDayImage(ctx, id)
	if err != nil {
		return repoErr("get day image", err)
	}
	if image == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.itineraryRepo.DeleteDayImage(ctx, id); err != nil {
		return repoErr("delete day image", err)
	}
	s.media.Discard(ctx, image.StoragePath)
	return nil
}

func (s *ItineraryService) requireDay(ctx context.Context, dayID uuid.UUID) error {
	day, err := s.itineraryRepo.GetDay(ctx, dayID)
	if err != nil {
		return repoErr("get day", err)
	}
	if day == nil {
		return utils.ErrRecordNotFound
	}
	return nil
}

func imagePatch(req request_models.UpdateImageRequest) map[string]interface{} {
	patch := map[string]interface{}{}
	setIf(patch, "caption", req.Caption)
	setIf(patch, "order_index", req.OrderIndex)
	setIf(patch, "is_active", req.IsActive)
	return patch
}

func toDayResponse(d dbm.ItineraryDay) response_models.ItineraryDayResponse {
	return response_models.ItineraryDayResponse{
		ID:             d.ID,
		TripID:         d.TripID,
		DayNumber:      d.DayNumber,
		OrderIndex:     d.OrderIndex,
		DayTitle:       d.DayTitle,
		DayDescription: d.DayDescription,
		Activities:     []response_models.ActivityResponse{},
		Images:         []response_models.ImageResponse{},
	}
}

func toActivityResponse(a dbm.Activity) response_models.ActivityResponse {
	return response_models.ActivityResponse{
		ID:                  a.ID,
		ItineraryDayID:      a.ItineraryDayID,
		ActivityTime:        a.ActivityTime,
		ActivityDescription: a.ActivityDescription,
		OrderIndex:          a.OrderIndex,
		IsActive:            a.IsActive,
	}
}

func toImageResponse(id, parentID uuid.UUID, o dbm.Orderable, img dbm.StoredImage) response_models.ImageResponse {
	return response_models.ImageResponse{
		ID:         id,
		ParentID:   parentID,
		ImageURL:   img.ImageURL,
		Caption:    img.Caption,
		OrderIndex: o.OrderIndex,
		IsActive:   o.IsActive,
	}
}
