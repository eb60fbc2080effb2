package handler

import (
	"net/http"

	"portal/internal/app/dto"
	"portal/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// CreatePurchase godoc
// @Summary Buy a package in one call
// @Description Sends the STK push for package_id without a session. An empty phone cancels silently.
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body dto.PurchaseRequest true "Package and phone"
// @Success 200 {object} dto.PurchaseOutcomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/purchases [post]
func (h *Handler) CreatePurchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid data: "+err.Error())
		return
	}

	pkg, err := h.Catalog.Get(req.PackageID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	outcome, err := h.Initiator.Initiate(c.Request.Context(), pkg, req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcomeResponse(middleware.GetLanguage(c), outcome))
}
