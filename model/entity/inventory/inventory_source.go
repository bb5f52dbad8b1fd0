package inventory

// InventorySource represents inventory_source table: a named stock location.
type InventorySource struct {
	SourceCode  string  `gorm:"column:source_code;type:varchar(255);primaryKey" json:"source_code"`
	Name        string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Enabled     bool    `gorm:"column:enabled;not null" json:"enabled"`
	CountryID   string  `gorm:"column:country_id;type:varchar(2)" json:"country_id"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`
}

func (InventorySource) TableName() string {
	return "inventory_source"
}
