package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "bundle:audit",
	Short: "List ship-together bundle children whose sources differ from their siblings",
	RunE: func(c *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer closeApp(a)

		violations, err := a.Bundles.Audit(c.Context())
		if err != nil {
			return err
		}
		out := c.OutOrStdout()
		if len(violations) == 0 {
			fmt.Fprintln(out, "No violations found.")
			return nil
		}
		for _, v := range violations {
			fmt.Fprintf(out, "%s: %s on %s missing on %s\n", v.BundleSKU, v.ChildSKU, v.SourceCode, strings.Join(v.MissingOn, ", "))
		}
		fmt.Fprintf(out, "%d violation(s)\n", len(violations))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
