package model

import (
	"gorm.io/gorm"

	catalogEntity "bundle-inventory.GO/model/entity/catalog"
	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
)

// Entities lists every table owned by this service, in dependency order.
func Entities() []interface{} {
	return []interface{}{
		&inventoryEntity.InventorySource{},
		&inventoryEntity.InventorySourceItem{},
		&catalogEntity.Product{},
		&catalogEntity.BundleOption{},
		&catalogEntity.BundleSelection{},
	}
}

// AutoMigrate creates or updates the service tables. Used for SQLite and tests;
// a Magento MySQL database already has them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Entities()...)
}
