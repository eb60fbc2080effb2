package commands

import (
	"errors"
	"fmt"
	"io"

	"portal/internal/app/catalog"
	"portal/internal/app/dsn"
	"portal/internal/app/repository"

	"github.com/spf13/cobra"
)

type packageSeeder interface {
	SeedPackages(entries []catalog.Entry) (int, error)
}

func migrateCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the network_packages table",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsnStr := dsn.FromEnv()
			if dsnStr == "" {
				return errors.New("DSN string is empty, check DB_* variables or your .env file")
			}

			repo, err := repository.New(dsnStr)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer repo.Close()

			if err := repo.Migrate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database migration completed successfully")

			if !seed {
				return nil
			}
			return seedCatalog(cmd.OutOrStdout(), repo, cfg.Catalog.Packages, cfg.Catalog.Currency())
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "copy the configured packages into an empty table")
	return cmd
}

// seedCatalog refuses entries the server would reject at start-up.
func seedCatalog(out io.Writer, repo packageSeeder, entries []catalog.Entry, cur catalog.Currency) error {
	if _, err := catalog.New(entries, cur); err != nil {
		return fmt.Errorf("config catalog is invalid, nothing seeded: %w", err)
	}

	n, err := repo.SeedPackages(entries)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(out, "Packages already present, seed skipped")
	} else {
		fmt.Fprintf(out, "Seeded %d packages from config\n", n)
	}
	return nil
}
