package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"portal/internal/api"
	"portal/internal/app/catalog"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the package catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the catalog from its configured source and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := api.LoadCatalog(cfg)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), cat)
			return nil
		},
	})
	return cmd
}

func printCatalog(out io.Writer, cat *catalog.Catalog) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRICE\tAMOUNT\tDURATION\tTIER")
	for _, p := range cat.All() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", p.ID, p.Price, p.Price.Units(), p.Duration, p.Tier)
	}
	w.Flush()

	for _, warning := range cat.Warnings() {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}
	fmt.Fprintf(out, "%d packages OK\n", cat.Len())
}
