package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"portal/internal/app/catalog"
	"portal/resources"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CatalogSourceConfig   = "config"
	CatalogSourcePostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Gateway     GatewayConfig
	Catalog     CatalogConfig
	Session     SessionConfig
	Branding    BrandingConfig
	CORS        CORSConfig

	// filled from the environment
	Redis   RedisConfig   `mapstructure:"-"`
	MinIO   MinIOConfig   `mapstructure:"-"`
	Secrets SecretsConfig `mapstructure:"-"`
	Log     LogConfig     `mapstructure:"-"`
}

type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CatalogConfig struct {
	Source         string
	CurrencyCode   string
	CurrencySymbol string
	Packages       []catalog.Entry
}

func (c CatalogConfig) Currency() catalog.Currency {
	return catalog.Currency{Code: c.CurrencyCode, Symbol: c.CurrencySymbol}
}

type SessionConfig struct {
	Store    string
	TTL      time.Duration
	Capacity int
}

type BrandingConfig struct {
	Name         string
	Tagline      string
	LogoObject   string
	LogoFallback string
	LogoURLTTL   time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

type RedisConfig struct {
	Host        string        `env:"REDIS_HOST"`
	Port        int           `env:"REDIS_PORT" envDefault:"6379"`
	User        string        `env:"REDIS_USER"`
	Password    string        `env:"REDIS_PASSWORD"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"10s"`
	ReadTimeout time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"10s"`
}

type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"portal-assets"`
	UseSSL    bool   `env:"MINIO_USE_SSL"`
}

func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

type SecretsConfig struct {
	SessionSecret string `env:"SESSION_SECRET"`
	SentryDSN     string `env:"SENTRY_DSN"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	return Load(configName, "config", ".")
}

// Load reads the named toml file from the first path that has it and then
// overlays the environment.
func Load(name string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, fmt.Errorf("redis config: %w", err)
	}
	if err := env.Parse(&cfg.MinIO); err != nil {
		return nil, fmt.Errorf("minio config: %w", err)
	}
	if err := env.Parse(&cfg.Secrets); err != nil {
		return nil, fmt.Errorf("secrets: %w", err)
	}
	if err := env.Parse(&cfg.Log); err != nil {
		return nil, fmt.Errorf("log config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("Gateway.BaseURL", "http://localhost:5000")
	v.SetDefault("Catalog.Source", CatalogSourceConfig)
	v.SetDefault("Catalog.CurrencyCode", catalog.KES.Code)
	v.SetDefault("Catalog.CurrencySymbol", catalog.KES.Symbol)
	v.SetDefault("Session.Store", SessionStoreMemory)
	v.SetDefault("Session.TTL", "30m")
	v.SetDefault("Session.Capacity", 10000)
	v.SetDefault("Branding.Name", "AlphaTech Networks")
	v.SetDefault("Branding.Tagline", "Affordable internet packages. Fast, flexible, and reliable.")
	v.SetDefault("Branding.LogoObject", "logo.jpeg")
	v.SetDefault("Branding.LogoFallback", resources.FallbackLogo)
	v.SetDefault("Branding.LogoURLTTL", "1h")
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourceConfig:
		if len(c.Catalog.Packages) == 0 {
			return errors.New("catalog source is config but no packages are configured")
		}
	case CatalogSourcePostgres:
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	switch c.Session.Store {
	case SessionStoreMemory:
		if c.Session.Capacity <= 0 {
			return errors.New("session capacity must be positive")
		}
	case SessionStoreRedis:
		if c.Redis.Host == "" {
			return errors.New("redis session store needs REDIS_HOST")
		}
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}

	if c.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.Catalog.CurrencySymbol == "" {
		return errors.New("currency symbol is empty")
	}

	return nil
}
