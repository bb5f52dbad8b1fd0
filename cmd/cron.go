package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"bundle-inventory.GO/cron"
	"bundle-inventory.GO/cron/jobs"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(c *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer closeApp(a)

		if jobName != "" {
			name := strings.ToLower(jobName)
			j, ok := cron.Jobs()[name]
			if !ok {
				return fmt.Errorf("unknown job: %s", jobName)
			}
			fmt.Fprintf(c.OutOrStdout(), "Running cron job: %s\n", name)
			return cron.RunJob(c.Context(), a, name, j.Run, args...)
		}

		sched, err := cron.StartCron(a, map[string]string{jobs.BundleAuditJob: a.Config.AuditSchedule})
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), "Cron scheduler started. Press Ctrl+C to exit.")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		<-sched.Stop().Done()
		return nil
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
