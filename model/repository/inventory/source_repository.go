package inventory

import (
	"context"

	"gorm.io/gorm"

	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
)

type SourceRepository struct {
	db *gorm.DB
}

func NewSourceRepository(db *gorm.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// MissingCodes returns the codes (in input order) with no inventory_source row.
func (r *SourceRepository) MissingCodes(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var found []string
	if err := r.db.WithContext(ctx).
		Model(&inventoryEntity.InventorySource{}).
		Where("source_code IN ?", codes).
		Pluck("source_code", &found).Error; err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(found))
	for _, c := range found {
		known[c] = true
	}
	var missing []string
	for _, c := range codes {
		if !known[c] {
			missing = append(missing, c)
		}
	}
	return missing, nil
}

func (r *SourceRepository) List(ctx context.Context) ([]inventoryEntity.InventorySource, error) {
	var sources []inventoryEntity.InventorySource
	err := r.db.WithContext(ctx).Order("source_code").Find(&sources).Error
	return sources, err
}

func (r *SourceRepository) Save(ctx context.Context, source *inventoryEntity.InventorySource) error {
	return r.db.WithContext(ctx).Save(source).Error
}
