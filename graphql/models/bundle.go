package models

type BundleProduct struct {
	ID           int32           `json:"id" mapstructure:"id"`
	SKU          string          `json:"sku" mapstructure:"sku"`
	ShipmentType string          `json:"shipment_type" mapstructure:"shipment_type"`
	Options      []*BundleOption `json:"options" mapstructure:"options"`
}

type BundleOption struct {
	OptionID     int32         `json:"option_id" mapstructure:"option_id"`
	Title        string        `json:"title" mapstructure:"title"`
	Type         string        `json:"type" mapstructure:"type"`
	Required     bool          `json:"required" mapstructure:"required"`
	Position     int32         `json:"position" mapstructure:"position"`
	ProductLinks []*BundleLink `json:"product_links" mapstructure:"product_links"`
}

type BundleLink struct {
	ID                int32   `json:"id" mapstructure:"id"`
	SKU               string  `json:"sku" mapstructure:"sku"`
	Qty               float64 `json:"qty" mapstructure:"qty"`
	Price             float64 `json:"price" mapstructure:"price"`
	PriceType         int32   `json:"price_type" mapstructure:"price_type"`
	Position          int32   `json:"position" mapstructure:"position"`
	IsDefault         bool    `json:"is_default" mapstructure:"is_default"`
	CanChangeQuantity bool    `json:"can_change_quantity" mapstructure:"can_change_quantity"`
}

// AssignmentCheck is the dry-run result of the source assignment rule.
type AssignmentCheck struct {
	Allowed bool    `json:"allowed" mapstructure:"allowed"`
	Message *string `json:"message,omitempty" mapstructure:"message"`
}
