package commands

import (
	"os"

	"portal/internal/app/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configName string
	configDir  string
	cfg        *config.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:          "portalctl",
		Short:        "Maintenance tasks for the hotspot portal",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if configName == "" {
				configName = os.Getenv("CONFIG_NAME")
			}
			if configName == "" {
				configName = "config"
			}

			var err error
			cfg, err = config.Load(configName, configDir, ".")
			return err
		},
	}

	root.PersistentFlags().StringVar(&configName, "config", "", "config file name without extension (default $CONFIG_NAME or config)")
	root.PersistentFlags().StringVar(&configDir, "config-dir", "config", "directory holding the config file")

	root.AddCommand(migrateCmd(), catalogCmd(), logoCmd())
	return root.Execute()
}
