package commands

import (
	"bytes"
	"testing"

	"portal/internal/app/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seederStub struct {
	seeded []catalog.Entry
	calls  int
}

func (s *seederStub) SeedPackages(entries []catalog.Entry) (int, error) {
	s.calls++
	if len(s.seeded) > 0 {
		return 0, nil
	}
	s.seeded = entries
	return len(entries), nil
}

func TestSeedCatalog(t *testing.T) {
	entries := []catalog.Entry{
		{Price: "Ksh 5", Duration: "30 Minutes", Tier: "Limited"},
		{Price: "Ksh 100", Duration: "1 Week", Tier: "unlimited"},
	}
	repo := &seederStub{}

	var out bytes.Buffer
	require.NoError(t, seedCatalog(&out, repo, entries, catalog.KES))
	assert.Equal(t, entries, repo.seeded)
	assert.Contains(t, out.String(), "Seeded 2 packages")

	out.Reset()
	require.NoError(t, seedCatalog(&out, repo, entries, catalog.KES))
	assert.Contains(t, out.String(), "seed skipped")
}

func TestSeedCatalogRejectsInvalidEntries(t *testing.T) {
	tests := map[string][]catalog.Entry{
		"empty":         nil,
		"unknown tier":  {{Price: "Ksh 5", Duration: "30 Minutes", Tier: "Premium"}},
		"bad price":     {{Price: "Ksh five", Duration: "30 Minutes", Tier: "Limited"}},
		"price too big": {{Price: "Ksh 100000000000000000", Duration: "1 Day", Tier: "Limited"}},
	}
	for name, entries := range tests {
		t.Run(name, func(t *testing.T) {
			repo := &seederStub{}
			var out bytes.Buffer

			err := seedCatalog(&out, repo, entries, catalog.KES)
			assert.ErrorContains(t, err, "nothing seeded")
			assert.Zero(t, repo.calls)
		})
	}
}
