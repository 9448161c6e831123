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

const faqImageFolder = "faqs"

type FaqServiceInterface interface {
	// ListFaqs returns a trip's FAQs by order_index, each with its images
	// by order_index.
	ListFaqs(ctx context.Context, tripID uuid.UUID, includeInactive bool) ([]response_models.FaqResponse, error)
	CreateFaq(ctx context.Context, tripID uuid.UUID, req request_models.CreateFaqRequest) (*response_models.FaqResponse, error)
	UpdateFaq(ctx context.Context, id uuid.UUID, req request_models.UpdateFaqRequest) (*response_models.FaqResponse, error)
	DeleteFaq(ctx context.Context, id uuid.UUID) error

	AddImage(ctx context.Context, faqID uuid.UUID, form request_models.UploadImageForm, file UploadedFile) (*response_models.ImageResponse, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type FaqService struct {
	faqRepo  repositories.FaqRepository
	tripRepo repositories.TripRepository
	media    MediaServiceInterface
}

func NewFaqService(faqRepo repositories.FaqRepository, tripRepo repositories.TripRepository, media MediaServiceInterface) FaqServiceInterface {
	return &FaqService{
		faqRepo:  faqRepo,
		tripRepo: tripRepo,
		media:    media,
	}
}

func (s *FaqService) ListFaqs(ctx context.Context, tripID uuid.UUID, includeInactive bool) ([]response_models.FaqResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return loadFaqs(ctx, s.faqRepo, tripID, includeInactive)
}

func loadFaqs(ctx context.Context, repo repositories.FaqRepository, tripID uuid.UUID, includeInactive bool) ([]response_models.FaqResponse, error) {
	faqs, err := repo.ListByTrip(ctx, tripID, includeInactive)
	if err != nil {
		return nil, repoErr("list faqs", err)
	}
	ids := make([]uuid.UUID, 0, len(faqs))
	for _, f := range faqs {
		ids = append(ids, f.ID)
	}
	images, err := repo.ListImagesByFaqs(ctx, ids, includeInactive)
	if err != nil {
		return nil, repoErr("list faq images", err)
	}
	return assembleFaqs(faqs, images), nil
}

func assembleFaqs(faqs []dbm.Faq, images []dbm.FaqImage) []response_models.FaqResponse {
	ordering.Sort(faqs)
	ordering.Sort(images)

	byFaq := make(map[uuid.UUID][]response_models.ImageResponse, len(faqs))
	for _, img := range images {
		byFaq[img.FaqID] = append(byFaq[img.FaqID], toImageResponse(img.ID, img.FaqID, img.Orderable, img.StoredImage))
	}
	out := make([]response_models.FaqResponse, 0, len(faqs))
	for _, f := range faqs {
		resp := toFaqResponse(f)
		if imgs, ok := byFaq[f.ID]; ok {
			resp.Images = imgs
		}
		out = append(out, resp)
	}
	return out
}

func (s *FaqService) CreateFaq(ctx context.Context, tripID uuid.UUID, req request_models.CreateFaqRequest) (*response_models.FaqResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, repoErr("get trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	faq := &dbm.Faq{
		Orderable: dbm.Orderable{OrderIndex: orderIndexOrDefault(req.OrderIndex), IsActive: true},
		TripID:    tripID,
		Question:  req.Question,
		Answer:    req.Answer,
	}
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, repoErr("create faq", err)
	}
	resp := toFaqResponse(*faq)
	return &resp, nil
}

func (s *FaqService) UpdateFaq(ctx context.Context, id uuid.UUID, req request_models.UpdateFaqRequest) (*response_models.FaqResponse, error) {
	patch := map[string]interface{}{}
	setIf(patch, "question", req.Question)
	setIf(patch, "answer", req.Answer)
	setIf(patch, "order_index", req.OrderIndex)
	setIf(patch, "is_active", req.IsActive)

	if err := s.faqRepo.Update(ctx, id, patch); err != nil {
		return nil, repoErr("update faq", err)
	}
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("get faq", err)
	}
	if faq == nil {
		return nil, utils.ErrRecordNotFound
	}
	resp := toFaqResponse(*faq)
	return &resp, nil
}

func (s *FaqService) DeleteFaq(ctx context.Context, id uuid.UUID) error {
	paths, err := s.faqRepo.Delete(ctx, id)
	if err != nil {
		return repoErr("delete faq", err)
	}
	s.media.Discard(ctx, paths...)
	return nil
}

func (s *FaqService) AddImage(ctx context.Context, faqID uuid.UUID, form request_models.UploadImageForm, file UploadedFile) (*response_models.ImageResponse, error) {
	faq, err := s.faqRepo.GetByID(ctx, faqID)
	if err != nil {
		return nil, repoErr("get faq", err)
	}
	if faq == nil {
		return nil, utils.ErrRecordNotFound
	}

	stored, err := s.media.Store(ctx, faqImageFolder, faqID, file, form.Caption)
	if err != nil {
		return nil, err
	}
	image := &dbm.FaqImage{
		Orderable:   dbm.Orderable{OrderIndex: orderIndexOrDefault(form.OrderIndex), IsActive: true},
		StoredImage: stored,
		FaqID:       faqID,
	}
	if err := s.faqRepo.CreateImage(ctx, image); err != nil {
		s.media.Discard(ctx, stored.StoragePath)
		return nil, repoErr("create faq image", err)
	}
	resp := toImageResponse(image.ID, faqID, image.Orderable, image.StoredImage)
	return &resp, nil
}

func (s *FaqService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	image, err := s.faqRepo.GetImage(ctx, id)
	if err != nil {
		return repoErr("get faq image", err)
	}
	if image == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.faqRepo.DeleteImage(ctx, id); err != nil {
		return repoErr("delete faq image", err)
	}
	s.media.Discard(ctx, image.StoragePath)
	return nil
}

func toFaqResponse(f dbm.Faq) response_models.FaqResponse {
	return response_models.FaqResponse{
		ID:         f.ID,
		TripID:     f.TripID,
		Question:   f.Question,
		Answer:     f.Answer,
		OrderIndex: f.OrderIndex,
		IsActive:   f.IsActive,
		Images:     []response_models.ImageResponse{},
	}
}
