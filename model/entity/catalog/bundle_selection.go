package catalog

// BundleSelection represents catalog_product_bundle_selection: the link between
// a bundle option and one child product.
type BundleSelection struct {
	SelectionID           uint    `gorm:"column:selection_id;primaryKey;autoIncrement" json:"selection_id"`
	OptionID              uint    `gorm:"column:option_id;not null;uniqueIndex:idx_bundle_selection_option_product,priority:1" json:"option_id"`
	ParentProductID       uint    `gorm:"column:parent_product_id;not null;index" json:"parent_product_id"`
	ProductID             uint    `gorm:"column:product_id;not null;uniqueIndex:idx_bundle_selection_option_product,priority:2;index" json:"product_id"`
	Position              uint    `gorm:"column:position;not null;default:0" json:"position"`
	IsDefault             bool    `gorm:"column:is_default;not null;default:false" json:"is_default"`
	SelectionPriceType    uint8   `gorm:"column:selection_price_type;type:smallint unsigned;not null;default:0" json:"selection_price_type"`
	SelectionPriceValue   float64 `gorm:"column:selection_price_value;type:decimal(20,6);not null;default:0" json:"selection_price_value"`
	SelectionQty          float64 `gorm:"column:selection_qty;type:decimal(12,4)" json:"selection_qty"`
	SelectionCanChangeQty bool    `gorm:"column:selection_can_change_qty;not null;default:false" json:"selection_can_change_qty"`
}

func (BundleSelection) TableName() string {
	return "catalog_product_bundle_selection"
}
