package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portal/docs"
	"portal/internal/app/config"
	"portal/internal/app/handler"
	"portal/internal/app/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// Setup installs middleware and every route. It is separate from RunApp so
// the full router can be exercised in tests.
func (a *Application) Setup() error {
	if err := handler.RegisterValidators(); err != nil {
		return err
	}

	a.Router.Use(metrics.GinMiddleware())
	a.Router.Use(cors.New(corsConfig(a.Config.CORS)))

	a.Handler.RegisterStatic(a.Router)
	a.Handler.RegisterRoutes(a.Router)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return nil
}

func corsConfig(c config.CORSConfig) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "Accept-Language")
	if len(c.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.AllowOrigins
	}
	return cfg
}

// RunApp serves until ctx is cancelled and then drains in-flight requests.
func (a *Application) RunApp(ctx context.Context) error {
	logrus.Info("Server start up")

	if err := a.Setup(); err != nil {
		return err
	}

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	srv := &http.Server{
		Addr:    serverAddress,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on %s", serverAddress)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	logrus.Info("Server down")
	return nil
}
