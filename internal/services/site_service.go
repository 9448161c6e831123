package services

import (
	"context"
	"encoding/xml"
	"time"

	"travelcms/internal/config"
	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/pkg/utils"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SiteServiceInterface interface {
	// Sitemap renders the urlset document, XML header included.
	Sitemap(ctx context.Context) ([]byte, error)
	GetTripPage(ctx context.Context, slug string) (*response_models.PublicTripResponse, error)
	ListArticles(ctx context.Context, page, pageSize int) ([]response_models.ArticleSummary, error)
	GetArticle(ctx context.Context, slug string) (*response_models.ArticleResponse, error)
}

type SiteService struct {
	siteRepo      repositories.SiteRepository
	itineraryRepo repositories.ItineraryRepository
	faqRepo       repositories.FaqRepository
	galleryRepo   repositories.GalleryRepository
	scheduleRepo  repositories.ScheduleRepository
	baseURL       string
	now           func() time.Time
}

func NewSiteService(
	siteRepo repositories.SiteRepository,
	itineraryRepo repositories.ItineraryRepository,
	faqRepo repositories.FaqRepository,
	galleryRepo repositories.GalleryRepository,
	scheduleRepo repositories.ScheduleRepository,
	cfg *config.Config,
) SiteServiceInterface {
	return &SiteService{
		siteRepo:      siteRepo,
		itineraryRepo: itineraryRepo,
		faqRepo:       faqRepo,
		galleryRepo:   galleryRepo,
		scheduleRepo:  scheduleRepo,
		baseURL:       cfg.Site.BaseURL,
		now:           time.Now,
	}
}

func (s *SiteService) Sitemap(ctx context.Context) ([]byte, error) {
	trips, err := s.siteRepo.ListTripSlugs(ctx)
	if err != nil {
		return nil, repoErr("list trip slugs", err)
	}
	articles, err := s.siteRepo.ListArticleSlugs(ctx)
	if err != nil {
		return nil, repoErr("list article slugs", err)
	}

	set := response_models.URLSet{
		Xmlns: sitemapNamespace,
		URLs:  make([]response_models.SitemapURL, 0, 1+len(trips)+len(articles)),
	}
	set.URLs = append(set.URLs, response_models.SitemapURL{Loc: s.baseURL + "/"})
	for _, t := range trips {
		set.URLs = append(set.URLs, s.sitemapURL("/trips/", t))
	}
	for _, a := range articles {
		set.URLs = append(set.URLs, s.sitemapURL("/articles/", a))
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func (s *SiteService) sitemapURL(prefix string, e repositories.SitemapEntry) response_models.SitemapURL {
	return response_models.SitemapURL{
		Loc:     s.baseURL + prefix + e.Slug,
		LastMod: utils.FormatDate(utils.FromUnixSeconds(e.UpdatedAt)),
	}
}

func (s *SiteService) GetTripPage(ctx context.Context, slug string) (*response_models.PublicTripResponse, error) {
	page, err := s.siteRepo.GetTripPage(ctx, slug)
	if err != nil {
		return nil, repoErr("get trip page", err)
	}
	if page == nil {
		return nil, utils.ErrTripNotFound
	}

	itinerary, err := loadItinerary(ctx, s.itineraryRepo, page.ID)
	if err != nil {
		return nil, err
	}
	faqs, err := loadFaqs(ctx, s.faqRepo, page.ID, false)
	if err != nil {
		return nil, err
	}
	images, _, err := s.galleryRepo.ListByTrip(ctx, page.ID, false, 1, utils.MaxPageSize)
	if err != nil {
		return nil, repoErr("list gallery", err)
	}
	schedules, err := s.scheduleRepo.ListUpcomingByTrip(ctx, page.ID, truncateDay(s.now()))
	if err != nil {
		return nil, repoErr("list schedules", err)
	}

	gallery := make([]response_models.ImageResponse, 0, len(images))
	for _, img := range images {
		gallery = append(gallery, toImageResponse(img.ID, img.TripID, img.Orderable, img.StoredImage))
	}

	return &response_models.PublicTripResponse{
		Slug:          page.Slug,
		Title:         page.Title,
		Summary:       page.Summary,
		Description:   page.Description,
		CountryName:   page.CountryName,
		DurationDays:  page.DurationDays,
		Price:         page.PriceMinor,
		Currency:      page.Currency,
		CoverImageURL: page.CoverImageURL,
		Itinerary:     itinerary,
		Faqs:          faqs,
		Gallery:       gallery,
		Schedules:     toScheduleResponses(schedules),
	}, nil
}

func (s *SiteService) ListArticles(ctx context.Context, page, pageSize int) ([]response_models.ArticleSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > utils.MaxPageSize {
		return nil, utils.ErrInvalidPageSize
	}
	rows, err := s.siteRepo.ListArticles(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, repoErr("list articles", err)
	}
	out := make([]response_models.ArticleSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, toArticleSummary(r))
	}
	return out, nil
}

func (s *SiteService) GetArticle(ctx context.Context, slug string) (*response_models.ArticleResponse, error) {
	row, err := s.siteRepo.GetArticle(ctx, slug)
	if err != nil {
		return nil, repoErr("get article", err)
	}
	if row == nil {
		return nil, utils.ErrRecordNotFound
	}
	return &response_models.ArticleResponse{
		ArticleSummary: toArticleSummary(*row),
		Body:           row.Body,
	}, nil
}

func toArticleSummary(r repositories.ArticleRow) response_models.ArticleSummary {
	summary := response_models.ArticleSummary{
		Slug:          r.Slug,
		Title:         r.Title,
		Excerpt:       r.Excerpt,
		CoverImageURL: r.CoverImageURL,
	}
	if r.PublishedAt != nil {
		summary.PublishedAt = utils.FormatRFC3339(*r.PublishedAt)
	}
	return summary
}
