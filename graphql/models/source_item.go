package models

type SourceItem struct {
	SourceCode string  `json:"source_code" mapstructure:"source_code"`
	SKU        string  `json:"sku" mapstructure:"sku"`
	Quantity   float64 `json:"quantity" mapstructure:"quantity"`
	Status     int32   `json:"status" mapstructure:"status"`
}
