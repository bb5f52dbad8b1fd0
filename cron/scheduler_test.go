package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bundle-inventory.GO/config"
	"bundle-inventory.GO/core/app"
	"bundle-inventory.GO/core/metrics"
	"bundle-inventory.GO/core/testutil"
)

func newTestApp(t *testing.T) *app.App {
	return app.NewWithDB(&config.Config{}, testutil.NewDB(t), zap.NewNop(), metrics.New(false))
}

func TestStartCron_ScheduleOverride(t *testing.T) {
	a := newTestApp(t)
	Register("testschedjob", "@every 1h", func(context.Context, *app.App, ...string) error { return nil })
	defer Unregister("testschedjob")

	c, err := StartCron(a, map[string]string{"testschedjob": "@every 5m"})
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), len(Jobs()))
}

func TestStartCron_InvalidSchedule(t *testing.T) {
	a := newTestApp(t)
	Register("testbadjob", "@every 1h", func(context.Context, *app.App, ...string) error { return nil })
	defer Unregister("testbadjob")

	_, err := StartCron(a, map[string]string{"testbadjob": "not a schedule"})
	assert.Error(t, err)
}

func TestRunJob_PropagatesError(t *testing.T) {
	a := newTestApp(t)
	boom := errors.New("boom")
	err := RunJob(context.Background(), a, "failing", func(context.Context, *app.App, ...string) error { return boom })
	assert.ErrorIs(t, err, boom)

	var got []string
	err = RunJob(context.Background(), a, "echo", func(_ context.Context, _ *app.App, args ...string) error {
		got = args
		return nil
	}, "a", "b")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}
