package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SitemapEntry is one public URL source: a trip or article slug.
type SitemapEntry struct {
	Slug      string `db:"slug"`
	UpdatedAt int64  `db:"updated_at"`
}

type TripPage struct {
	ID            uuid.UUID `db:"id"`
	Slug          string    `db:"slug"`
	Title         string    `db:"title"`
	Summary       string    `db:"summary"`
	Description   string    `db:"description"`
	DurationDays  int       `db:"duration_days"`
	PriceMinor    int64     `db:"price_minor"`
	Currency      string    `db:"currency"`
	CoverImageURL string    `db:"cover_image_url"`
	CountryName   string    `db:"country_name"`
}

type ArticleRow struct {
	Slug          string     `db:"slug"`
	Title         string     `db:"title"`
	Excerpt       string     `db:"excerpt"`
	Body          string     `db:"body"`
	CoverImageURL string     `db:"cover_image_url"`
	PublishedAt   *time.Time `db:"published_at"`
}

// SiteRepository serves the public pages with plain SQL over a read pool.
type SiteRepository interface {
	ListTripSlugs(ctx context.Context) ([]SitemapEntry, error)
	ListArticleSlugs(ctx context.Context) ([]SitemapEntry, error)
	GetTripPage(ctx context.Context, slug string) (*TripPage, error)
	ListArticles(ctx context.Context, limit, offset int) ([]ArticleRow, error)
	GetArticle(ctx context.Context, slug string) (*ArticleRow, error)
}

type siteRepository struct {
	db *sqlx.DB
}

func NewSiteRepository(db *sqlx.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) ListTripSlugs(ctx context.Context) ([]SitemapEntry, error) {
	entries := []SitemapEntry{}
	query := r.db.Rebind(`SELECT slug, updated_at FROM trips WHERE is_active = ? ORDER BY slug`)
	if err := r.db.SelectContext(ctx, &entries, query, true); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *siteRepository) ListArticleSlugs(ctx context.Context) ([]SitemapEntry, error) {
	entries := []SitemapEntry{}
	query := r.db.Rebind(`SELECT slug, updated_at FROM articles WHERE is_published = ? ORDER BY slug`)
	if err := r.db.SelectContext(ctx, &entries, query, true); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *siteRepository) GetTripPage(ctx context.Context, slug string) (*TripPage, error) {
	var page TripPage
	query := r.db.Rebind(`
		SELECT t.id, t.slug, t.title, t.summary, t.description, t.duration_days,
		       t.price_minor, t.currency, t.cover_image_url,
		       COALESCE(c.name, '') AS country_name
		FROM trips t
		LEFT JOIN countries c ON c.id = t.country_id
		WHERE t.slug = ? AND t.is_active = ?`)
	if err := r.db.GetContext(ctx, &page, query, slug, true); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (r *siteRepository) ListArticles(ctx context.Context, limit, offset int) ([]ArticleRow, error) {
	rows := []ArticleRow{}
	query := r.db.Rebind(`
		SELECT slug, title, excerpt, body, cover_image_url, published_at
		FROM articles
		WHERE is_published = ?
		ORDER BY published_at DESC, slug ASC
		LIMIT ? OFFSET ?`)
	if err := r.db.SelectContext(ctx, &rows, query, true, limit, offset); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *siteRepository) GetArticle(ctx context.Context, slug string) (*ArticleRow, error) {
	var row ArticleRow
	query := r.db.Rebind(`
		SELECT slug, title, excerpt, body, cover_image_url, published_at
		FROM articles
		WHERE slug = ? AND is_published = ?`)
	if err := r.db.GetContext(ctx, &row, query, slug, true); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
