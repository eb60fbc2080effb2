package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "hotspot")

	assert.Equal(t, "host=db port=5433 user=portal password=secret dbname=hotspot sslmode=disable", FromEnv())
}

func TestFromEnvIncomplete(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "hotspot")
	assert.Empty(t, FromEnv())

	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PORT", "not-a-port")
	assert.Empty(t, FromEnv())
}
