package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/request_models"
	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/pkg/utils"
)

type ScheduleServiceInterface interface {
	ListSchedules(ctx context.Context, tripID uuid.UUID) ([]response_models.ScheduleResponse, error)
	CreateSchedule(ctx context.Context, tripID uuid.UUID, req request_models.CreateScheduleRequest) (*response_models.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, id uuid.UUID, req request_models.UpdateScheduleRequest) (*response_models.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
}

type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	tripRepo     repositories.TripRepository
}

func NewScheduleService(scheduleRepo repositories.ScheduleRepository, tripRepo repositories.TripRepository) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		tripRepo:     tripRepo,
	}
}

func (s *ScheduleService) ListSchedules(ctx context.Context, tripID uuid.UUID) ([]response_models.ScheduleResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	schedules, err := s.scheduleRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, repoErr("list schedules", err)
	}
	return toScheduleResponses(schedules), nil
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, tripID uuid.UUID, req request_models.CreateScheduleRequest) (*response_models.ScheduleResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	seatsAvailable := req.SeatsTotal
	if req.SeatsAvailable != nil {
		seatsAvailable = *req.SeatsAvailable
	}
	if err := checkSchedule(req.StartDate, req.EndDate, req.SeatsTotal, seatsAvailable); err != nil {
		return nil, err
	}

	schedule := &dbm.TripSchedule{
		TripID:         tripID,
		StartDate:      truncateDay(req.StartDate),
		EndDate:        truncateDay(req.EndDate),
		PriceMinor:     req.PriceMinor,
		SeatsTotal:     req.SeatsTotal,
		SeatsAvailable: seatsAvailable,
		IsActive:       activeOrDefault(req.IsActive),
	}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, repoErr("create schedule", err)
	}
	resp := toScheduleResponse(*schedule)
	return &resp, nil
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, id uuid.UUID, req request_models.UpdateScheduleRequest) (*response_models.ScheduleResponse, error) {
	current, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("get schedule", err)
	}
	if current == nil {
		return nil, utils.ErrRecordNotFound
	}

	// Cross-field rules are checked against the merged result.
	merged := *current
	if req.StartDate != nil {
		merged.StartDate = truncateDay(*req.StartDate)
	}
	if req.EndDate != nil {
		merged.EndDate = truncateDay(*req.EndDate)
	}
	if req.SeatsTotal != nil {
		merged.SeatsTotal = *req.SeatsTotal
	}
	if req.SeatsAvailable != nil {
		merged.SeatsAvailable = *req.SeatsAvailable
	}
	if err := checkSchedule(merged.StartDate, merged.EndDate, merged.SeatsTotal, merged.SeatsAvailable); err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.StartDate != nil {
		patch["start_date"] = merged.StartDate
	}
	if req.EndDate != nil {
		patch["end_date"] = merged.EndDate
	}
	setIf(patch, "price_minor", req.PriceMinor)
	setIf(patch, "seats_total", req.SeatsTotal)
	setIf(patch, "seats_available", req.SeatsAvailable)
	setIf(patch, "is_active", req.IsActive)

	if err := s.scheduleRepo.Update(ctx, id, patch); err != nil {
		return nil, repoErr("update schedule", err)
	}
	updated, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("get schedule", err)
	}
	if updated == nil {
		return nil, utils.ErrRecordNotFound
	}
	resp := toScheduleResponse(*updated)
	return &resp, nil
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return repoErr("delete schedule", err)
	}
	return nil
}

func checkSchedule(start, end time.Time, seatsTotal, seatsAvailable int) error {
	verr := &utils.ValidationError{}
	if truncateDay(end).Before(truncateDay(start)) {
		verr.Fields = append(verr.Fields, utils.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	if seatsAvailable > seatsTotal {
		verr.Fields = append(verr.Fields, utils.FieldError{Field: "seats_available", Message: "must not exceed seats_total"})
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toScheduleResponse(s dbm.TripSchedule) response_models.ScheduleResponse {
	return response_models.ScheduleResponse{
		ID:             s.ID,
		TripID:         s.TripID,
		StartDate:      utils.FormatDate(s.StartDate),
		EndDate:        utils.FormatDate(s.EndDate),
		Price:          s.PriceMinor,
		SeatsTotal:     s.SeatsTotal,
		SeatsAvailable: s.SeatsAvailable,
		IsActive:       s.IsActive,
	}
}

func toScheduleResponses(schedules []dbm.TripSchedule) []response_models.ScheduleResponse {
	out := make([]response_models.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, toScheduleResponse(s))
	}
	return out
}
