package api

import (
	"context"
	"crypto/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portal/internal/app/config"
	"portal/internal/app/handler"
	"portal/internal/app/middleware"
	"portal/internal/app/mpesa"
	"portal/internal/app/purchase"
	"portal/internal/app/redis"
	"portal/internal/app/session"
	"portal/internal/app/storage"
	"portal/internal/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	SetupLogger(cfg.Log)

	if cfg.Secrets.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Secrets.SentryDSN,
			AttachStacktrace: true,
		}); err != nil {
			logrus.Warnf("failed to sentry init: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := LoadCatalog(cfg)
	if err != nil {
		logrus.Fatalf("catalog: %v", err)
	}
	logrus.Infof("catalog loaded: %d packages", cat.Len())

	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		logrus.Fatalf("session store: %v", err)
	}
	defer closeStore()

	initiator := purchase.NewInitiator(mpesa.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout))
	sessions := session.NewService(store, cat, initiator)
	tokens := middleware.NewSessionMiddleware(sessionSecret(cfg.Secrets), cfg.Session.TTL)

	var assets handler.LogoStore
	if cfg.MinIO.Enabled() {
		store, err := storage.NewAssetStore(ctx, cfg.MinIO)
		if err != nil {
			logrus.Warnf("asset store unavailable, serving the fallback logo: %v", err)
		} else {
			assets = store
		}
	}

	h := handler.NewHandler(cat, sessions, initiator, tokens, assets, cfg.Branding)
	application := pkg.NewApp(cfg, gin.Default(), h)
	if err := application.RunApp(ctx); err != nil {
		logrus.Errorf("server: %v", err)
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		return session.NewMemoryStore(cfg.Session.Capacity, cfg.Session.TTL), func() {}, nil
	}

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logrus.Warnf("redis close: %v", err)
		}
	}
	return session.NewRedisStore(client, cfg.Session.TTL), closeFn, nil
}

// Without SESSION_SECRET tokens are signed with a random key and do not
// survive a restart.
func sessionSecret(s config.SecretsConfig) []byte {
	if s.SessionSecret != "" {
		return []byte(s.SessionSecret)
	}
	logrus.Warn("SESSION_SECRET is not set, using a random key")
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		logrus.Fatalf("session key: %v", err)
	}
	return key
}
