package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

// SiteController serves the public, unauthenticated pages.
type SiteController struct {
	siteService services.SiteServiceInterface
	logger      *zap.Logger
}

func NewSiteController(siteService services.SiteServiceInterface, logger *zap.Logger) *SiteController {
	return &SiteController{
		siteService: siteService,
		logger:      logger,
	}
}

// Sitemap godoc
// @Summary XML sitemap of the public site
// @Tags Site
// @Produce xml
// @Success 200 {string} string
// @Router /sitemap.xml [get]
func (sc *SiteController) Sitemap(c *gin.Context) {
	body, err := sc.siteService.Sitemap(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, sc.logger, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// GetTripPage godoc
// @Summary Public trip page
// @Tags Site
// @Produce json
// @Param slug path string true "Trip slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{slug} [get]
func (sc *SiteController) GetTripPage(c *gin.Context) {
	page, err := sc.siteService.GetTripPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, sc.logger, err)
		return
	}
	utils.RespondSuccess(c, page, "")
}

func (sc *SiteController) ListArticles(c *gin.Context) {
	page, pageSize, ok := pageParams(c, 10)
	if !ok {
		return
	}
	articles, err := sc.siteService.ListArticles(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, sc.logger, err)
		return
	}
	utils.RespondSuccess(c, articles, "")
}

func (sc *SiteController) GetArticle(c *gin.Context) {
	article, err := sc.siteService.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, sc.logger, err)
		return
	}
	utils.RespondSuccess(c, article, "")
}
