package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	inventoryService "bundle-inventory.GO/service/inventory"
)

var importFile string

var importCmd = &cobra.Command{
	Use:   "source-items:import",
	Short: "Import source items from CSV (source_code,sku,quantity,status)",
	RunE: func(c *cobra.Command, args []string) error {
		if importFile == "" {
			return fmt.Errorf("--file is required")
		}
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()

		items, err := inventoryService.ParseCSV(f)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer closeApp(a)

		if err := a.SourceItems.SaveSourceItems(c.Context(), items); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Fprintf(c.OutOrStdout(), "Imported %d source items from %s\n", len(items), importFile)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file to import")
	rootCmd.AddCommand(importCmd)
}
