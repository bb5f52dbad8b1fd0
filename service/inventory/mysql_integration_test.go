//go:build integration

package inventory

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bundle-inventory.GO/config"
	"bundle-inventory.GO/core/metrics"
	"bundle-inventory.GO/core/testutil"
	"bundle-inventory.GO/model"
	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
	"bundle-inventory.GO/service/bundle"
)

// Runs against a scratch MySQL schema: MYSQL_DSN or MYSQL_HOST/USER/PASS/DB.
// Tables are created with AutoMigrate and fixture rows removed afterwards.
func newMySQLService(t *testing.T) *Service {
	t.Helper()
	if os.Getenv("MYSQL_DSN") == "" && os.Getenv("MYSQL_HOST") == "" {
		t.Skip("MYSQL_DSN not set, skipping MySQL integration test")
	}
	cfg := config.Load(viper.New())
	cfg.DBDriver = "mysql"
	cfg.GormLog = "off"

	db, err := config.NewDB(cfg, zap.NewNop())
	if err != nil {
		t.Skipf("cannot connect to MySQL: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("cannot connect to MySQL: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, model.AutoMigrate(db))
	testutil.Teardown(db)
	testutil.SeedCatalog(t, db)

	m := metrics.New(false)
	bundles := bundle.NewService(db, bundle.NewStructureCache(nil, nil, 0, nil), m, zap.NewNop())
	return NewService(db, bundles, m, zap.NewNop())
}

func TestMySQL_SaveSourceItems(t *testing.T) {
	svc := newMySQLService(t)
	ctx := context.Background()

	err := svc.SaveSourceItems(ctx, []inventoryEntity.InventorySourceItem{item("eu-3", "SKU-1", 5)})
	var rejected *bundle.RejectedAssignmentError
	require.True(t, errors.As(err, &rejected))

	require.NoError(t, svc.SaveSourceItems(ctx, []inventoryEntity.InventorySourceItem{
		item("eu-3", "SKU-1", 5),
		item("eu-3", "SKU-3", 5),
	}))
	codes, err := svc.FetchSourceAssignments(ctx, "SKU-3")
	require.NoError(t, err)
	assert.Contains(t, codes, "eu-3")
}
