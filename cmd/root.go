package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"bundle-inventory.GO/config"
	"bundle-inventory.GO/core/app"
)

var rootCmd = &cobra.Command{
	Use:           "bundle-inventory",
	Short:         "Bundle product source assignment tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(c *cobra.Command, args []string) {
		if quiet, _ := c.Flags().GetBool("quiet"); !quiet {
			figure.NewFigure("Bundle Inventory", "small", true).Print()
		}
	},
}

// newApp builds the services a command works with. Tests swap it for a seeded SQLite app.
var newApp = func() (*app.App, error) {
	return app.New(config.LoadAppConfig())
}

var closeApp = func(a *app.App) { a.Close() }

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Do not print the banner")
}

// Execute applies registered commands and runs the root command.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
