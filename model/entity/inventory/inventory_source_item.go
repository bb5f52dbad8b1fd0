package inventory

import "github.com/shopspring/decimal"

// Source item status values (inventory_source_item.status).
const (
	StatusOutOfStock uint8 = 0
	StatusInStock    uint8 = 1
)

// InventorySourceItem represents inventory_source_item table (MSI).
// A row assigns a SKU to a source; (source_code, sku) is unique.
type InventorySourceItem struct {
	SourceItemID uint            `gorm:"column:source_item_id;primaryKey;autoIncrement" json:"source_item_id,omitempty"`
	SourceCode   string          `gorm:"column:source_code;type:varchar(255);not null;uniqueIndex:idx_source_item_source_sku,priority:1" json:"source_code"`
	SKU          string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex:idx_source_item_source_sku,priority:2;index:idx_source_item_sku" json:"sku"`
	Quantity     decimal.Decimal `gorm:"column:quantity;type:decimal(12,4);not null" json:"quantity"`
	Status       uint8           `gorm:"column:status;type:smallint unsigned;not null;default:0" json:"status"`
}

func init() {
	// Magento renders quantity as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

func (InventorySourceItem) TableName() string {
	return "inventory_source_item"
}
