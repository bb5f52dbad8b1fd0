package catalog

// Product type ids (catalog_product_entity.type_id).
const (
	TypeSimple = "simple"
	TypeBundle = "bundle"
)

// Bundle shipment types. Stored on the product row; only meaningful for bundles.
const (
	ShipmentTogether   uint8 = 0
	ShipmentSeparately uint8 = 1
)

// Product represents the catalog_product_entity columns this service needs.
type Product struct {
	EntityID       uint   `gorm:"column:entity_id;primaryKey;autoIncrement" json:"entity_id"`
	AttributeSetID uint16 `gorm:"column:attribute_set_id;type:smallint unsigned;not null;default:4" json:"attribute_set_id"`
	TypeID         string `gorm:"column:type_id;type:varchar(32);not null;default:simple" json:"type_id"`
	SKU            string `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	ShipmentType   uint8  `gorm:"column:shipment_type;type:smallint unsigned;not null;default:0" json:"shipment_type"`
}

func (Product) TableName() string {
	return "catalog_product_entity"
}

func (p *Product) IsBundle() bool {
	return p.TypeID == TypeBundle
}
