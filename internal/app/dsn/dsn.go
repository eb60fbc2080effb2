package dsn

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type postgresEnv struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// FromEnv builds a postgres DSN from DB_* variables. It returns "" when the
// variables are incomplete or malformed.
func FromEnv() string {
	var p postgresEnv
	if err := env.Parse(&p); err != nil {
		return ""
	}
	if p.User == "" || p.Name == "" {
		return ""
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}
