package repository

import (
	"testing"

	"portal/internal/app/catalog"
	"portal/internal/app/dsn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against the database named by DB_*; the network_packages table is
// emptied first.
func testRepository(t *testing.T) *Repository {
	t.Helper()
	conn := dsn.FromEnv()
	if conn == "" {
		t.Skip("DB_* variables are not set")
	}

	r, err := New(conn)
	require.NoError(t, err)
	require.NoError(t, r.Migrate())
	require.NoError(t, r.db.Exec("DELETE FROM network_packages").Error)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSeedAndGetPackages(t *testing.T) {
	r := testRepository(t)
	entries := []catalog.Entry{
		{Price: "Ksh 5", Duration: "30 Minutes", Tier: "Limited"},
		{Price: "Ksh 100", Duration: "1 Week", Tier: "Unlimited"},
	}

	n, err := r.SeedPackages(entries)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = r.SeedPackages(entries)
	require.NoError(t, err)
	assert.Zero(t, n, "seeding is skipped once rows exist")

	got, err := r.GetPackages()
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	require.NoError(t, r.db.Exec("UPDATE network_packages SET is_deleted = true WHERE position = 1").Error)
	got, err = r.GetPackages()
	require.NoError(t, err)
	assert.Equal(t, entries[1:], got)
}
