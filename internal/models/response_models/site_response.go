package response_models

import "encoding/xml"

// Public trip page payload.
type PublicTripResponse struct {
	Slug          string                 `json:"slug"`
	Title         string                 `json:"title"`
	Summary       string                 `json:"summary"`
	Description   string                 `json:"description"`
	CountryName   string                 `json:"country_name,omitempty"`
	DurationDays  int                    `json:"duration_days"`
	Price         int64                  `json:"price"`
	Currency      string                 `json:"currency"`
	CoverImageURL string                 `json:"cover_image_url,omitempty"`
	Itinerary     []ItineraryDayResponse `json:"itinerary"`
	Faqs          []FaqResponse          `json:"faqs"`
	Gallery       []ImageResponse        `json:"gallery"`
	Schedules     []ScheduleResponse     `json:"schedules"`
}

type ArticleSummary struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	PublishedAt   string `json:"published_at,omitempty"`
}

type ArticleResponse struct {
	ArticleSummary
	Body string `json:"body"`
}

type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}
