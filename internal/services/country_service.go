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

type CountryServiceInterface interface {
	ListCountries(ctx context.Context, activeOnly bool) ([]response_models.CountryResponse, error)
	CreateCountry(ctx context.Context, req request_models.CreateCountryRequest) (*response_models.CountryResponse, error)
	UpdateCountry(ctx context.Context, id uuid.UUID, req request_models.UpdateCountryRequest) (*response_models.CountryResponse, error)
	// DeleteCountry detaches the country from its trips before removing it.
	DeleteCountry(ctx context.Context, id uuid.UUID) error
}

type CountryService struct {
	countryRepo repositories.CountryRepository
}

func NewCountryService(countryRepo repositories.CountryRepository) CountryServiceInterface {
	return &CountryService{countryRepo: countryRepo}
}

func (s *CountryService) ListCountries(ctx context.Context, activeOnly bool) ([]response_models.CountryResponse, error) {
	countries, err := s.countryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, repoErr("list countries", err)
	}
	out := make([]response_models.CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, toCountryResponse(c))
	}
	return out, nil
}

func (s *CountryService) CreateCountry(ctx context.Context, req request_models.CreateCountryRequest) (*response_models.CountryResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if err := s.ensureCodeFree(ctx, code, uuid.Nil); err != nil {
		return nil, err
	}
	country := &dbm.Country{
		Name:     strings.TrimSpace(req.Name),
		Code:     code,
		IsActive: activeOrDefault(req.IsActive),
	}
	if err := s.countryRepo.Create(ctx, country); err != nil {
		return nil, repoErr("create country", err)
	}
	resp := toCountryResponse(*country)
	return &resp, nil
}

func (s *CountryService) UpdateCountry(ctx context.Context, id uuid.UUID, req request_models.UpdateCountryRequest) (*response_models.CountryResponse, error) {
	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.Code))
		if err := s.ensureCodeFree(ctx, code, id); err != nil {
			return nil, err
		}
		patch["code"] = code
	}
	setIf(patch, "is_active", req.IsActive)

	if err := s.countryRepo.Update(ctx, id, patch); err != nil {
		return nil, repoErr("update country", err)
	}
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("get country", err)
	}
	if country == nil {
		return nil, utils.ErrRecordNotFound
	}
	resp := toCountryResponse(*country)
	return &resp, nil
}

func (s *CountryService) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	if err := s.countryRepo.Delete(ctx, id); err != nil {
		return repoErr("delete country", err)
	}
	return nil
}

func (s *CountryService) ensureCodeFree(ctx context.Context, code string, self uuid.UUID) error {
	existing, err := s.countryRepo.GetByCode(ctx, code)
	if err != nil {
		return repoErr("get country by code", err)
	}
	if existing != nil && existing.ID != self {
		return utils.ErrCountryCodeTaken
	}
	return nil
}

func toCountryResponse(c dbm.Country) response_models.CountryResponse {
	return response_models.CountryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Code:     c.Code,
		IsActive: c.IsActive,
	}
}
