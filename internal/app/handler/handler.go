package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"portal/internal/app/catalog"
	"portal/internal/app/config"
	"portal/internal/app/dto"
	"portal/internal/app/middleware"
	"portal/internal/app/session"
	"portal/resources"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LogoStore resolves the branding logo in object storage.
type LogoStore interface {
	Exists(ctx context.Context, objectName string) (bool, error)
	URL(ctx context.Context, objectName string, ttl time.Duration) (string, error)
}

type Handler struct {
	Catalog   *catalog.Catalog
	Sessions  *session.Service
	Initiator session.Initiator
	Tokens    *middleware.SessionMiddleware
	Assets    LogoStore // nil when MinIO is not configured
	Branding  config.BrandingConfig
}

func NewHandler(
	cat *catalog.Catalog,
	sessions *session.Service,
	initiator session.Initiator,
	tokens *middleware.SessionMiddleware,
	assets LogoStore,
	branding config.BrandingConfig,
) *Handler {
	return &Handler{
		Catalog:   cat,
		Sessions:  sessions,
		Initiator: initiator,
		Tokens:    tokens,
		Assets:    assets,
		Branding:  branding,
	}
}

// Static assets such as the fallback logo, bundled into the binary
func (h *Handler) RegisterStatic(router *gin.Engine) {
	router.StaticFS("/static", http.FS(resources.FS))
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ping", h.Ping)

	api := router.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/branding", h.GetBranding)
		api.GET("/packages", h.GetPackages)
		api.GET("/packages/:id", h.GetPackage)
		api.POST("/purchases", h.CreatePurchase)
		api.POST("/sessions", h.CreateSession)
	}

	// Everything below needs the token returned by POST /api/sessions
	sess := api.Group("/session")
	sess.Use(h.Tokens.WithSession())
	{
		sess.GET("", h.GetSession)
		sess.DELETE("", h.CloseSession)
		sess.PUT("/filter", h.UpdateFilter)
		sess.PUT("/expanded", h.UpdateExpanded)
		sess.PUT("/selection", h.SelectPackage)
		sess.DELETE("/selection", h.CancelSelection)
		sess.POST("/confirm", h.ConfirmPurchase)
	}
}

// Ping godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	h.successResponse(c, http.StatusOK, "pong", nil)
}

// Logs the cause and reports it to Sentry; the client only sees a generic message
func (h *Handler) errorHandler(c *gin.Context, errorStatusCode int, err error) {
	logrus.WithField("path", c.FullPath()).Error(err.Error())
	sentry.CaptureException(err)
	h.errorResponse(c, errorStatusCode, http.StatusText(errorStatusCode))
}

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// Maps domain errors to HTTP statuses
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, "session not found or expired")
	case errors.Is(err, catalog.ErrPackageNotFound):
		h.errorResponse(c, http.StatusNotFound, "package not found")
	case errors.Is(err, session.ErrNoCandidate):
		h.errorResponse(c, http.StatusConflict, "no package selected")
	default:
		h.errorHandler(c, http.StatusInternalServerError, err)
	}
}

func (h *Handler) sessionID(c *gin.Context) string {
	id, _ := middleware.GetSessionID(c)
	return id
}
