package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bundle-inventory.GO/config"
	"bundle-inventory.GO/core/app"
	"bundle-inventory.GO/core/metrics"
	"bundle-inventory.GO/core/testutil"
	inventoryRepo "bundle-inventory.GO/model/repository/inventory"
)

// useTestApp points the commands at a seeded SQLite catalog.
func useTestApp(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedCatalog(t, db)
	a := app.NewWithDB(&config.Config{}, db, zap.NewNop(), metrics.New(false))

	prevNew, prevClose := newApp, closeApp
	newApp = func() (*app.App, error) { return a, nil }
	closeApp = func(*app.App) {}
	t.Cleanup(func() {
		newApp, closeApp = prevNew, prevClose
		importFile, jobName = "", ""
	})
	return db
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(append(args, "-q"))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBundleAuditCmd(t *testing.T) {
	useTestApp(t)

	out, err := run(t, "bundle:audit")
	require.NoError(t, err)
	assert.Contains(t, out, testutil.BundleTogether+": SKU-1 on eu-1 missing on SKU-3")
	assert.Contains(t, out, "1 violation(s)")
}

func TestSourceItemsImportCmd(t *testing.T) {
	db := useTestApp(t)
	path := writeCSV(t, "source_code,sku,quantity,status\neu-3,SKU-2,7,1\n")

	out, err := run(t, "source-items:import", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 source items")

	items, err := inventoryRepo.NewInventoryRepository(db).GetAllBySKU(context.Background(), "SKU-2")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "eu-3", items[0].SourceCode)
}

func TestSourceItemsImportCmd_Rejected(t *testing.T) {
	useTestApp(t)
	path := writeCSV(t, "source_code,sku,quantity,status\neu-3,SKU-1,5,1\n")

	_, err := run(t, "source-items:import", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Not able to assign "eu-3" to product "SKU-1"`)
}

func TestCronStartCmd_SingleJob(t *testing.T) {
	useTestApp(t)

	out, err := run(t, "cron:start", "-j", "BUNDLE_SOURCE_AUDIT")
	require.NoError(t, err)
	assert.Contains(t, out, "Running cron job: bundle_source_audit")
}

func TestCronStartCmd_UnknownJob(t *testing.T) {
	useTestApp(t)

	_, err := run(t, "cron:start", "-j", "nope")
	assert.EqualError(t, err, "unknown job: nope")
}
