package handler

import (
	"errors"
	"io"
	"net/http"

	"portal/internal/app/catalog"
	"portal/internal/app/dto"
	"portal/internal/app/middleware"
	"portal/internal/app/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) respondSession(c *gin.Context, statusCode int, st session.State, token string) {
	response := sessionResponse(middleware.GetLanguage(c), h.Sessions.View(st))
	response.Token = token
	c.JSON(statusCode, response)
}

// CreateSession godoc
// @Summary Open a browsing session
// @Description Starts with filter All, collapsed, nothing selected. The token goes into the Authorization header of /api/session calls.
// @Tags Session
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	st, err := h.Sessions.Create(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.Tokens.IssueToken(st.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondSession(c, http.StatusCreated, st, token)
}

// GetSession godoc
// @Summary Current session view
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/session [get]
func (h *Handler) GetSession(c *gin.Context) {
	st, err := h.Sessions.Get(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, st, "")
}

// CloseSession godoc
// @Summary Close the session
// @Description Drops the session state; its token stops working
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/session [delete]
func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.Sessions.Close(c.Request.Context(), h.sessionID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "session closed", nil)
}

// UpdateFilter godoc
// @Summary Change the tier filter
// @Description Always collapses the listing
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateFilterRequest true "Filter"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/session/filter [put]
func (h *Handler) UpdateFilter(c *gin.Context) {
	var req dto.UpdateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid data: "+err.Error())
		return
	}

	st, err := h.Sessions.SetFilter(c.Request.Context(), h.sessionID(c), catalog.Filter(req.Filter))
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, st, "")
}

// UpdateExpanded godoc
// @Summary Show more or fewer packages
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateExpandedRequest true "Expansion"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/session/expanded [put]
func (h *Handler) UpdateExpanded(c *gin.Context) {
	var req dto.UpdateExpandedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid data: "+err.Error())
		return
	}

	st, err := h.Sessions.SetExpanded(c.Request.Context(), h.sessionID(c), *req.Expanded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, st, "")
}

// SelectPackage godoc
// @Summary Select a package for confirmation
// @Description The response carries the confirmation prompt
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SelectPackageRequest true "Package"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/session/selection [put]
func (h *Handler) SelectPackage(c *gin.Context) {
	var req dto.SelectPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid data: "+err.Error())
		return
	}

	st, err := h.Sessions.Select(c.Request.Context(), h.sessionID(c), req.PackageID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, st, "")
}

// CancelSelection godoc
// @Summary Dismiss the confirmation prompt
// @Description Filter and expansion are kept
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/session/selection [delete]
func (h *Handler) CancelSelection(c *gin.Context) {
	st, err := h.Sessions.Cancel(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, st, "")
}

// ConfirmPurchase godoc
// @Summary Confirm the selected package and send the STK push
// @Description An empty phone cancels silently. Each call is one independent attempt.
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConfirmRequest false "Phone"
// @Success 200 {object} dto.PurchaseOutcomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/session/confirm [post]
func (h *Handler) ConfirmPurchase(c *gin.Context) {
	var req dto.ConfirmRequest
	// no body is the same as an empty phone
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.errorResponse(c, http.StatusBadRequest, "invalid data: "+err.Error())
		return
	}

	outcome, err := h.Sessions.Confirm(c.Request.Context(), h.sessionID(c), req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcomeResponse(middleware.GetLanguage(c), outcome))
}
