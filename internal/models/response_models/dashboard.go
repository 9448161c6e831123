package response_models

type DashboardKPIs struct {
	TotalTrips        int64 `json:"total_trips"`
	ActiveTrips       int64 `json:"active_trips"`
	UpcomingSchedules int64 `json:"upcoming_schedules"`
	SeatsAvailable    int64 `json:"seats_available"`
	PublishedArticles int64 `json:"published_articles"`
	GalleryImages     int64 `json:"gallery_images"`
}

type CountryTripCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Trips int64  `json:"trips"`
}

type DashboardReport struct {
	AsOf         string             `json:"as_of"`
	KPIs         DashboardKPIs      `json:"kpis"`
	TopCountries []CountryTripCount `json:"top_countries"`
}
