package repository

import (
	"fmt"

	"portal/internal/app/catalog"
	"portal/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &Repository{
		db: db,
	}, nil
}

func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&ds.NetworkPackage{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetPackages returns the live catalog rows in display order.
func (r *Repository) GetPackages() ([]catalog.Entry, error) {
	var rows []ds.NetworkPackage
	err := r.db.Where("is_deleted = ?", false).Order("position").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, len(rows))
	for i, row := range rows {
		entries[i] = catalog.Entry{
			Price:    row.Price,
			Duration: row.Duration,
			Tier:     row.Tier,
		}
	}
	return entries, nil
}

func (r *Repository) CountPackages() (int64, error) {
	var count int64
	err := r.db.Model(&ds.NetworkPackage{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}

// SeedPackages writes entries when the table has no live rows and reports how
// many were inserted. An existing catalog is never touched.
func (r *Repository) SeedPackages(entries []catalog.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	count, err := r.CountPackages()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	rows := make([]ds.NetworkPackage, len(entries))
	for i, e := range entries {
		rows[i] = ds.NetworkPackage{
			Position: i + 1,
			Price:    e.Price,
			Duration: e.Duration,
			Tier:     e.Tier,
		}
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed packages: %w", err)
	}
	return len(rows), nil
}
