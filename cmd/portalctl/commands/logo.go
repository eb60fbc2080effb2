package commands

import (
	"errors"
	"fmt"
	"os"

	"portal/internal/app/storage"

	"github.com/spf13/cobra"
)

func logoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Manage the portal logo in object storage",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a logo image under the configured object name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.MinIO.Enabled() {
				return errors.New("MINIO_ENDPOINT is not set")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			store, err := storage.NewAssetStore(cmd.Context(), cfg.MinIO)
			if err != nil {
				return err
			}
			replaced, err := store.Exists(cmd.Context(), cfg.Branding.LogoObject)
			if err != nil {
				return err
			}
			if replaced {
				fmt.Fprintf(cmd.OutOrStdout(), "replacing existing %s\n", cfg.Branding.LogoObject)
			}
			if err := store.Put(cmd.Context(), cfg.Branding.LogoObject, data); err != nil {
				return err
			}

			url, err := store.URL(cmd.Context(), cfg.Branding.LogoObject, cfg.Branding.LogoURLTTL)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%s)\n%s\n", cfg.Branding.LogoObject, storage.ContentType(args[0]), url)
			return nil
		},
	})
	return cmd
}
