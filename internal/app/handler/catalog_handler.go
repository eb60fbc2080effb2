package handler

import (
	"context"
	"net/http"
	"strconv"

	"portal/internal/app/catalog"
	"portal/internal/app/dto"
	"portal/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetBranding godoc
// @Summary Portal branding
// @Description Operator name, tagline and a logo URL
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.BrandingResponse
// @Router /api/branding [get]
func (h *Handler) GetBranding(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BrandingResponse{
		Name:    h.Branding.Name,
		Tagline: h.Branding.Tagline,
		LogoURL: h.logoURL(c.Request.Context()),
	})
}

// logoURL presigns the uploaded logo, or falls back to the bundled one when
// storage is off or the object was never uploaded.
func (h *Handler) logoURL(ctx context.Context) string {
	if h.Assets == nil || h.Branding.LogoObject == "" {
		return h.Branding.LogoFallback
	}

	log := logrus.WithField("object", h.Branding.LogoObject)
	ok, err := h.Assets.Exists(ctx, h.Branding.LogoObject)
	if err != nil {
		log.WithError(err).Warn("logo lookup failed, using fallback")
		return h.Branding.LogoFallback
	}
	if !ok {
		log.Debug("logo not uploaded, using fallback")
		return h.Branding.LogoFallback
	}

	url, err := h.Assets.URL(ctx, h.Branding.LogoObject, h.Branding.LogoURLTTL)
	if err != nil {
		log.WithError(err).Warn("logo url unavailable, using fallback")
		return h.Branding.LogoFallback
	}
	return url
}

// GetPackages godoc
// @Summary List packages
// @Description Packages for a tier filter. Without expanded=true at most four are returned.
// @Tags Catalog
// @Produce json
// @Param filter query string false "All, Limited or Unlimited" Enums(All, Limited, Unlimited)
// @Param expanded query bool false "Return the whole filtered list"
// @Success 200 {object} dto.CatalogViewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/packages [get]
func (h *Handler) GetPackages(c *gin.Context) {
	var query dto.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid query: "+err.Error())
		return
	}

	filter := catalog.FilterAll
	if query.Filter != "" {
		filter = catalog.Filter(query.Filter)
	}

	view := h.Catalog.View(filter, query.Expanded)
	c.JSON(http.StatusOK, catalogViewResponse(middleware.GetLanguage(c), view))
}

// GetPackage godoc
// @Summary Get one package
// @Tags Catalog
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} dto.PackageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/packages/{id} [get]
func (h *Handler) GetPackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid package id")
		return
	}

	pkg, err := h.Catalog.Get(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, packageResponse(pkg))
}
