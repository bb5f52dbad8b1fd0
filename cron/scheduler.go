package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"bundle-inventory.GO/core/app"
)

// StartCron schedules every registered job and starts the scheduler.
// schedules overrides the registered schedule per job name.
func StartCron(a *app.App, schedules map[string]string) (*cron.Cron, error) {
	c := cron.New()
	for name, j := range Jobs() {
		sched := j.Schedule
		if s, ok := schedules[name]; ok && s != "" {
			sched = s
		}
		jobName, run := name, j.Run
		if _, err := c.AddFunc(sched, func() { RunJob(context.Background(), a, jobName, run) }); err != nil {
			return nil, fmt.Errorf("register job %s: %w", name, err)
		}
		a.Log.Info("cron job scheduled", zap.String("job", name), zap.String("schedule", sched))
	}
	c.Start()
	return c, nil
}

// RunJob executes a job once and logs the outcome.
func RunJob(ctx context.Context, a *app.App, name string, run RunFunc, args ...string) error {
	start := time.Now()
	err := run(ctx, a, args...)
	if err != nil {
		a.Log.Error("cron job failed", zap.String("job", name), zap.Error(err))
		return err
	}
	a.Log.Info("cron job finished", zap.String("job", name), zap.Duration("took", time.Since(start)))
	return nil
}
