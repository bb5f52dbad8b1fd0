package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bundle-inventory.GO/core/testutil"
	catalogEntity "bundle-inventory.GO/model/entity/catalog"
)

func mysqlMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestParentBundles_LocksParentRowsOnMySQL(t *testing.T) {
	db, mock := mysqlMock(t)
	rows := sqlmock.NewRows([]string{"entity_id", "attribute_set_id", "type_id", "sku", "shipment_type"}).
		AddRow(7, 4, "bundle", "bundle-ship-together", 0)
	mock.ExpectQuery("SELECT \\* FROM `catalog_product_entity` WHERE type_id = \\? AND entity_id IN \\(SELECT s.parent_product_id FROM .* WHERE c.sku = \\?\\) ORDER BY entity_id FOR UPDATE").
		WithArgs(catalogEntity.TypeBundle, "SKU-1").
		WillReturnRows(rows)

	parents, err := NewProductRepository(db).ParentBundles(context.Background(), "SKU-1", true)
	require.NoError(t, err)
	require.Len(t, parents, 1)
	assert.Equal(t, "bundle-ship-together", parents[0].SKU)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParentBundles_NoLockForReads(t *testing.T) {
	db, mock := mysqlMock(t)
	mock.ExpectQuery("ORDER BY entity_id$").
		WithArgs(catalogEntity.TypeBundle, "SKU-1").
		WillReturnRows(sqlmock.NewRows([]string{"entity_id"}))

	parents, err := NewProductRepository(db).ParentBundles(context.Background(), "SKU-1", false)
	require.NoError(t, err)
	assert.Empty(t, parents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParentBundles_SQLite(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	parents, err := repo.ParentBundles(ctx, "SKU-3", true)
	require.NoError(t, err)
	require.Len(t, parents, 2)
	assert.Equal(t, testutil.BundleTogether, parents[0].SKU)
	assert.Equal(t, testutil.BundleSeparately, parents[1].SKU)

	parents, err = repo.ParentBundles(ctx, "SKU-2", false)
	require.NoError(t, err)
	assert.Empty(t, parents)
}

func TestSelectionsAndOptions(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()
	bundleID := cat.ProductID(testutil.BundleTogether)

	options, err := repo.Options(ctx, bundleID)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Pack", options[0].Title)

	rows, err := repo.Selections(ctx, bundleID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SKU-1", rows[0].SKU)
	assert.Equal(t, catalogEntity.TypeSimple, rows[0].TypeID)
	assert.Equal(t, cat.ProductID("SKU-1"), rows[0].ProductID)
	assert.Equal(t, "SKU-3", rows[1].SKU)

	_, err = repo.GetOption(ctx, cat.ProductID(testutil.BundleSeparately), options[0].OptionID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAddAndRemoveSelection(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()
	optionID := cat.Options[testutil.BundleTogether]
	sku4 := cat.ProductID("SKU-4")

	exists, err := repo.SelectionExists(ctx, optionID, sku4)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.AddSelection(ctx, &catalogEntity.BundleSelection{
		OptionID:        optionID,
		ParentProductID: cat.ProductID(testutil.BundleTogether),
		ProductID:       sku4,
		SelectionQty:    1,
	}))
	exists, err = repo.SelectionExists(ctx, optionID, sku4)
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := repo.RemoveSelection(ctx, optionID, sku4)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = repo.RemoveSelection(ctx, optionID, sku4)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestListBundles(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	all, err := repo.ListBundles(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	together := catalogEntity.ShipmentTogether
	only, err := repo.ListBundles(ctx, &together)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, testutil.BundleTogether, only[0].SKU)
}

func TestGetBySKU_NotFound(t *testing.T) {
	db := testutil.NewDB(t)
	_, err := NewProductRepository(db).GetBySKU(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
