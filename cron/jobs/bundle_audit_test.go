package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"bundle-inventory.GO/config"
	"bundle-inventory.GO/core/app"
	"bundle-inventory.GO/core/metrics"
	"bundle-inventory.GO/core/testutil"
	"bundle-inventory.GO/cron"
)

func TestBundleAuditJob_Registered(t *testing.T) {
	j, ok := cron.Jobs()[BundleAuditJob]
	require.True(t, ok)
	assert.Equal(t, "@every 1h", j.Schedule)
}

func TestRunBundleAudit_LogsDrift(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCatalog(t, db)
	core, logs := observer.New(zapcore.WarnLevel)
	a := app.NewWithDB(&config.Config{}, db, zap.New(core), metrics.New(false))

	require.NoError(t, RunBundleAudit(context.Background(), a))

	drift := logs.FilterMessage("bundle source drift").All()
	require.Len(t, drift, 1)
	fields := drift[0].ContextMap()
	assert.Equal(t, testutil.BundleTogether, fields["bundle_sku"])
	assert.Equal(t, "SKU-1", fields["sku"])
	assert.Equal(t, "eu-1", fields["source_code"])
}
