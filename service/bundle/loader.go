package bundle

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalogEntity "bundle-inventory.GO/model/entity/catalog"
	catalogRepo "bundle-inventory.GO/model/repository/catalog"
	"bundle-inventory.GO/service"
)

// loadBySKU fetches a bundle and its options through repo.
func loadBySKU(ctx context.Context, repo *catalogRepo.ProductRepository, sku string) (*Product, error) {
	p, err := repo.GetBySKU(ctx, sku)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &service.NotFoundError{Entity: "bundle product", Key: sku}
	}
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", sku, err)
	}
	if !p.IsBundle() {
		return nil, &service.NotFoundError{Entity: "bundle product", Key: sku}
	}
	return load(ctx, repo, p)
}

// load assembles the options and child links of an already fetched bundle row.
func load(ctx context.Context, repo *catalogRepo.ProductRepository, p *catalogEntity.Product) (*Product, error) {
	options, err := repo.Options(ctx, p.EntityID)
	if err != nil {
		return nil, fmt.Errorf("load options of %s: %w", p.SKU, err)
	}
	selections, err := repo.Selections(ctx, p.EntityID)
	if err != nil {
		return nil, fmt.Errorf("load selections of %s: %w", p.SKU, err)
	}

	b := &Product{
		ID:           p.EntityID,
		SKU:          p.SKU,
		ShipmentType: ShipmentType(p.ShipmentType),
		Options:      make([]Option, 0, len(options)),
	}
	index := make(map[uint]int, len(options))
	for _, o := range options {
		index[o.OptionID] = len(b.Options)
		b.Options = append(b.Options, Option{
			ID:       o.OptionID,
			Title:    o.Title,
			Type:     o.Type,
			Required: o.Required,
			Position: o.Position,
			Children: []Link{},
		})
	}
	for _, s := range selections {
		i, ok := index[s.OptionID]
		if !ok {
			continue
		}
		b.Options[i].Children = append(b.Options[i].Children, Link{
			SelectionID:       s.SelectionID,
			SKU:               s.SKU,
			Qty:               s.SelectionQty,
			Price:             s.SelectionPriceValue,
			PriceType:         s.SelectionPriceType,
			Position:          s.Position,
			IsDefault:         s.IsDefault,
			CanChangeQuantity: s.SelectionCanChangeQty,
		})
	}
	return b, nil
}
