package api

import (
	"errors"

	"portal/internal/app/catalog"
	"portal/internal/app/config"
	"portal/internal/app/dsn"
	"portal/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// LoadCatalog reads package entries from the configured source and validates
// them. Normalization warnings are logged.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	entries := cfg.Catalog.Packages

	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		dsnStr := dsn.FromEnv()
		if dsnStr == "" {
			return nil, errors.New("catalog source is postgres but DB_* variables are incomplete")
		}
		repo, err := repository.New(dsnStr)
		if err != nil {
			return nil, err
		}
		defer repo.Close()

		entries, err = repo.GetPackages()
		if err != nil {
			return nil, err
		}
	}

	cat, err := catalog.New(entries, cfg.Catalog.Currency())
	if err != nil {
		return nil, err
	}
	for _, w := range cat.Warnings() {
		logrus.Warn(w)
	}
	return cat, nil
}
