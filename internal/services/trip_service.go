package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/request_models"
	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/pkg/utils"
)

const defaultCurrency = "USD"

type TripServiceInterface interface {
	ListTrips(ctx context.Context, query request_models.ListTripsQuery) ([]response_models.TripResponse, int64, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*response_models.TripResponse, error)
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	// DeleteTrip removes the trip with every child row and their blobs.
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

type TripService struct {
	tripRepo    repositories.TripRepository
	countryRepo repositories.CountryRepository
	media       MediaServiceInterface
}

func NewTripService(tripRepo repositories.TripRepository, countryRepo repositories.CountryRepository, media MediaServiceInterface) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		countryRepo: countryRepo,
		media:       media,
	}
}

func (s *TripService) ListTrips(ctx context.Context, query request_models.ListTripsQuery) ([]response_models.TripResponse, int64, error) {
	if query.Page < 1 {
		return nil, 0, utils.ErrInvalidPage
	}
	if query.PageSize < 1 || query.PageSize > utils.MaxPageSize {
		return nil, 0, utils.ErrInvalidPageSize
	}

	filter := repositories.TripFilter{
		Search:   query.Search,
		Active:   query.Active,
		Sort:     query.Sort,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.CountryID != "" {
		id, err := parseID("countryId", query.CountryID)
		if err != nil {
			return nil, 0, err
		}
		filter.CountryID = &id
	}

	trips, total, err := s.tripRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, repoErr("list trips", err)
	}
	out := make([]response_models.TripResponse, 0, len(trips))
	for _, t := range trips {
		resp := toTripResponse(t)
		// List rows stay light.
		resp.Description = ""
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *TripService) GetTrip(ctx context.Context, id uuid.UUID) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	resp := toTripResponse(*trip)
	return &resp, nil
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	slug := normalizeSlug(req.Slug)
	if slug == "" {
		return nil, utils.NewValidationError("slug", "must contain letters or digits")
	}
	if err := s.ensureSlugFree(ctx, slug, nil); err != nil {
		return nil, err
	}

	trip := &dbm.Trip{
		Title:         strings.TrimSpace(req.Title),
		Slug:          slug,
		Summary:       req.Summary,
		Description:   req.Description,
		DurationDays:  req.DurationDays,
		PriceMinor:    req.PriceMinor,
		Currency:      strings.ToUpper(req.Currency),
		CoverImageURL: req.CoverImageURL,
		IsActive:      activeOrDefault(req.IsActive),
	}
	if trip.Currency == "" {
		trip.Currency = defaultCurrency
	}
	if req.CountryID != nil {
		countryID, err := s.resolveCountry(ctx, *req.CountryID)
		if err != nil {
			return nil, err
		}
		trip.CountryID = &countryID
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, repoErr("create trip", err)
	}
	return s.GetTrip(ctx, trip.ID)
}

func (s *TripService) UpdateTrip(ctx context.Context, id uuid.UUID, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	patch := map[string]interface{}{}
	if req.Title != nil {
		patch["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil {
		slug := normalizeSlug(*req.Slug)
		if slug == "" {
			return nil, utils.NewValidationError("slug", "must contain letters or digits")
		}
		if err := s.ensureSlugFree(ctx, slug, &id); err != nil {
			return nil, err
		}
		patch["slug"] = slug
	}
	if req.CountryID != nil {
		if *req.CountryID == "" {
			patch["country_id"] = nil
		} else {
			countryID, err := s.resolveCountry(ctx, *req.CountryID)
			if err != nil {
				return nil, err
			}
			patch["country_id"] = countryID
		}
	}
	if req.Currency != nil {
		patch["currency"] = strings.ToUpper(*req.Currency)
	}
	setIf(patch, "summary", req.Summary)
	setIf(patch, "description", req.Description)
	setIf(patch, "duration_days", req.DurationDays)
	setIf(patch, "price_minor", req.PriceMinor)
	setIf(patch, "cover_image_url", req.CoverImageURL)
	setIf(patch, "is_active", req.IsActive)

	if err := s.tripRepo.Update(ctx, id, patch); err != nil {
		return nil, repoErr("update trip", err)
	}
	return s.GetTrip(ctx, id)
}

func (s *TripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	paths, err := s.tripRepo.Delete(ctx, id)
	if err != nil {
		return repoErr("delete trip", err)
	}
	s.media.Discard(ctx, paths...)
	return nil
}

func (s *TripService) ensureSlugFree(ctx context.Context, slug string, excludeID *uuid.UUID) error {
	taken, err := s.tripRepo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return repoErr("check slug", err)
	}
	if taken {
		return utils.ErrSlugTaken
	}
	return nil
}

func (s *TripService) resolveCountry(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := parseID("country_id", raw)
	if err != nil {
		return uuid.Nil, err
	}
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, repoErr("get country", err)
	}
	if country == nil {
		return uuid.Nil, utils.NewValidationError("country_id", "does not reference a country")
	}
	return id, nil
}

// normalizeSlug lowercases and collapses every run of non-alphanumerics to a
// single hyphen: "  Kyoto & Nara!" -> "kyoto-nara".
func normalizeSlug(raw string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}

func toTripResponse(t dbm.Trip) response_models.TripResponse {
	resp := response_models.TripResponse{
		ID:            t.ID,
		Title:         t.Title,
		Slug:          t.Slug,
		Summary:       t.Summary,
		Description:   t.Description,
		DurationDays:  t.DurationDays,
		Price:         t.PriceMinor,
		Currency:      t.Currency,
		CoverImageURL: t.CoverImageURL,
		IsActive:      t.IsActive,
		CreatedAt:     utils.FormatRFC3339(utils.FromUnixSeconds(t.CreatedAt)),
		UpdatedAt:     utils.FormatRFC3339(utils.FromUnixSeconds(t.UpdatedAt)),
	}
	if t.Country != nil {
		c := toCountryResponse(*t.Country)
		resp.Country = &c
	}
	return resp
}
