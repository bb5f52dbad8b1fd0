package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogEntity "bundle-inventory.GO/model/entity/catalog"
	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
)

const (
	BundleTogether   = "bundle-ship-together"
	BundleSeparately = "bundle-ship-separately"
)

// Catalog is the seeded scenario: sources eu-1, eu-2, eu-3, us-1, simple
// products SKU-1..SKU-4 and two bundles whose single option links SKU-1 and
// SKU-3. SKU-1 is stocked on eu-1 and eu-2, SKU-3 on eu-2 only.
type Catalog struct {
	Products map[string]*catalogEntity.Product
	// Options maps bundle SKU to the id of its option.
	Options map[string]uint
}

func (c *Catalog) ProductID(sku string) uint {
	return c.Products[sku].EntityID
}

// SeedCatalog seeds the scenario into db and removes it again on test cleanup.
func SeedCatalog(t testing.TB, db *gorm.DB) *Catalog {
	t.Helper()
	cat := &Catalog{
		Products: make(map[string]*catalogEntity.Product),
		Options:  make(map[string]uint),
	}

	for _, code := range []string{"eu-1", "eu-2", "eu-3", "us-1"} {
		src := inventoryEntity.InventorySource{SourceCode: code, Name: "Source " + code, Enabled: true, CountryID: countryFor(code)}
		must(t, db.Create(&src).Error)
	}
	for _, sku := range []string{"SKU-1", "SKU-2", "SKU-3", "SKU-4"} {
		p := &catalogEntity.Product{AttributeSetID: 4, TypeID: catalogEntity.TypeSimple, SKU: sku}
		must(t, db.Create(p).Error)
		cat.Products[sku] = p
	}
	bundles := []struct {
		sku      string
		shipment uint8
	}{
		{BundleTogether, catalogEntity.ShipmentTogether},
		{BundleSeparately, catalogEntity.ShipmentSeparately},
	}
	for _, b := range bundles {
		p := &catalogEntity.Product{AttributeSetID: 4, TypeID: catalogEntity.TypeBundle, SKU: b.sku, ShipmentType: b.shipment}
		must(t, db.Create(p).Error)
		cat.Products[b.sku] = p

		opt := &catalogEntity.BundleOption{ParentID: p.EntityID, Required: true, Type: "checkbox", Title: "Pack"}
		must(t, db.Create(opt).Error)
		cat.Options[b.sku] = opt.OptionID

		for pos, child := range []string{"SKU-1", "SKU-3"} {
			sel := &catalogEntity.BundleSelection{
				OptionID:        opt.OptionID,
				ParentProductID: p.EntityID,
				ProductID:       cat.Products[child].EntityID,
				Position:        uint(pos + 1),
				SelectionQty:    1,
			}
			must(t, db.Create(sel).Error)
		}
	}
	for _, item := range []inventoryEntity.InventorySourceItem{
		{SourceCode: "eu-1", SKU: "SKU-1", Quantity: decimal.NewFromInt(10), Status: inventoryEntity.StatusInStock},
		{SourceCode: "eu-2", SKU: "SKU-1", Quantity: decimal.NewFromInt(10), Status: inventoryEntity.StatusInStock},
		{SourceCode: "eu-2", SKU: "SKU-3", Quantity: decimal.NewFromInt(10), Status: inventoryEntity.StatusInStock},
	} {
		item := item
		must(t, db.Create(&item).Error)
	}

	t.Cleanup(func() { Teardown(db) })
	return cat
}

// Teardown empties every scenario table.
func Teardown(db *gorm.DB) {
	for _, m := range []interface{}{
		&inventoryEntity.InventorySourceItem{},
		&catalogEntity.BundleSelection{},
		&catalogEntity.BundleOption{},
		&catalogEntity.Product{},
		&inventoryEntity.InventorySource{},
	} {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m)
	}
}

// LinkChild adds sku to the bundle's option.
func (c *Catalog) LinkChild(t testing.TB, db *gorm.DB, bundleSKU, sku string) {
	t.Helper()
	sel := &catalogEntity.BundleSelection{
		OptionID:        c.Options[bundleSKU],
		ParentProductID: c.ProductID(bundleSKU),
		ProductID:       c.ProductID(sku),
		Position:        10,
		SelectionQty:    1,
	}
	must(t, db.Create(sel).Error)
}

func countryFor(code string) string {
	if code == "us-1" {
		return "US"
	}
	return "DE"
}

func must(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}
