package resolvers

import (
	"strings"

	"bundle-inventory.GO/graphql/models"
	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
	"bundle-inventory.GO/service/bundle"
)

func mapBundle(b *bundle.Product) *models.BundleProduct {
	out := &models.BundleProduct{
		ID:           int32(b.ID),
		SKU:          b.SKU,
		ShipmentType: strings.ToUpper(b.ShipmentType.String()),
		Options:      make([]*models.BundleOption, 0, len(b.Options)),
	}
	for _, o := range b.Options {
		opt := &models.BundleOption{
			OptionID:     int32(o.ID),
			Title:        o.Title,
			Type:         o.Type,
			Required:     o.Required,
			Position:     int32(o.Position),
			ProductLinks: make([]*models.BundleLink, 0, len(o.Children)),
		}
		for _, l := range o.Children {
			opt.ProductLinks = append(opt.ProductLinks, &models.BundleLink{
				ID:                int32(l.SelectionID),
				SKU:               l.SKU,
				Qty:               l.Qty,
				Price:             l.Price,
				PriceType:         int32(l.PriceType),
				Position:          int32(l.Position),
				IsDefault:         l.IsDefault,
				CanChangeQuantity: l.CanChangeQuantity,
			})
		}
		out.Options = append(out.Options, opt)
	}
	return out
}

func mapSourceItems(items []inventoryEntity.InventorySourceItem) []*models.SourceItem {
	out := make([]*models.SourceItem, 0, len(items))
	for _, it := range items {
		qty, _ := it.Quantity.Float64()
		out = append(out, &models.SourceItem{
			SourceCode: it.SourceCode,
			SKU:        it.SKU,
			Quantity:   qty,
			Status:     int32(it.Status),
		})
	}
	return out
}
