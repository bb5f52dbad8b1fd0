// Package bundle models bundle products for source assignment decisions and
// implements the shipment-type-aware assignment rule.
package bundle

import (
	catalogEntity "bundle-inventory.GO/model/entity/catalog"
)

type ShipmentType uint8

const (
	ShipTogether   = ShipmentType(catalogEntity.ShipmentTogether)
	ShipSeparately = ShipmentType(catalogEntity.ShipmentSeparately)
)

func (s ShipmentType) String() string {
	switch s {
	case ShipTogether:
		return "together"
	case ShipSeparately:
		return "separately"
	default:
		return "unknown"
	}
}

// Link is one child product inside an option.
type Link struct {
	SelectionID       uint    `json:"id"`
	SKU               string  `json:"sku"`
	Qty               float64 `json:"qty"`
	Price             float64 `json:"price"`
	PriceType         uint8   `json:"price_type"`
	Position          uint    `json:"position"`
	IsDefault         bool    `json:"is_default"`
	CanChangeQuantity bool    `json:"can_change_quantity"`
}

type Option struct {
	ID       uint   `json:"option_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Position uint   `json:"position"`
	Children []Link `json:"product_links"`
}

// Product is a bundle with its options resolved at fetch time. It is treated
// as immutable once built.
type Product struct {
	ID           uint         `json:"id"`
	SKU          string       `json:"sku"`
	ShipmentType ShipmentType `json:"shipment_type"`
	Options      []Option     `json:"options"`
}

// HasChild reports whether sku is linked in any option.
func (p *Product) HasChild(sku string) bool {
	for _, o := range p.Options {
		for _, l := range o.Children {
			if l.SKU == sku {
				return true
			}
		}
	}
	return false
}

// ChildSKUs returns every child SKU once, in option order.
func (p *Product) ChildSKUs() []string {
	seen := make(map[string]bool)
	var skus []string
	for _, o := range p.Options {
		for _, l := range o.Children {
			if !seen[l.SKU] {
				seen[l.SKU] = true
				skus = append(skus, l.SKU)
			}
		}
	}
	return skus
}

// Option returns the option with id, or nil.
func (p *Product) Option(id uint) *Option {
	for i := range p.Options {
		if p.Options[i].ID == id {
			return &p.Options[i]
		}
	}
	return nil
}
