package catalog

// BundleOption represents catalog_product_bundle_option: a selectable group of
// children within a bundle product.
type BundleOption struct {
	OptionID uint   `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id"`
	ParentID uint   `gorm:"column:parent_id;not null;index" json:"parent_id"`
	Required bool   `gorm:"column:required;not null;default:false" json:"required"`
	Position uint   `gorm:"column:position;not null;default:0" json:"position"`
	Type     string `gorm:"column:type;type:varchar(255);default:select" json:"type"`
	Title    string `gorm:"column:title;type:varchar(255)" json:"title"`
}

func (BundleOption) TableName() string {
	return "catalog_product_bundle_option"
}
