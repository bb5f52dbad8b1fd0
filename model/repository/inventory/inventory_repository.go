package inventory

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
)

const defaultBatchSize = 500

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *InventoryRepository) WithTx(tx *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: tx}
}

// GetBySourceAndSKU returns one source item.
func (r *InventoryRepository) GetBySourceAndSKU(ctx context.Context, sourceCode, sku string) (*inventoryEntity.InventorySourceItem, error) {
	var item inventoryEntity.InventorySourceItem
	err := r.db.WithContext(ctx).Where("source_code = ? AND sku = ?", sourceCode, sku).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAllBySKU returns inventory for a SKU across all sources
func (r *InventoryRepository) GetAllBySKU(ctx context.Context, sku string) ([]inventoryEntity.InventorySourceItem, error) {
	var items []inventoryEntity.InventorySourceItem
	err := r.db.WithContext(ctx).Where("sku = ?", sku).Order("source_item_id").Find(&items).Error
	return items, err
}

// AssignmentsBySKUs returns the source codes assigned to each SKU in one query.
// SKUs without any source item are present with an empty slice.
func (r *InventoryRepository) AssignmentsBySKUs(ctx context.Context, skus []string) (map[string][]string, error) {
	result := make(map[string][]string, len(skus))
	if len(skus) == 0 {
		return result, nil
	}
	for _, sku := range skus {
		result[sku] = []string{}
	}

	type assignmentRow struct {
		SKU        string `gorm:"column:sku"`
		SourceCode string `gorm:"column:source_code"`
	}
	var rows []assignmentRow
	err := r.db.WithContext(ctx).
		Table("inventory_source_item").
		Select("sku, source_code").
		Where("sku IN ?", skus).
		Order("source_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.SKU] = append(result[row.SKU], row.SourceCode)
	}
	return result, nil
}

// Upsert inserts source items, updating quantity and status on (source_code, sku) conflicts.
func (r *InventoryRepository) Upsert(ctx context.Context, items []inventoryEntity.InventorySourceItem, batchSize int) error {
	if len(items) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_code"}, {Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "status"}),
	}
	return r.db.WithContext(ctx).Clauses(upsert).CreateInBatches(items, batchSize).Error
}

// Delete removes source items by (source_code, sku). Missing rows are ignored.
func (r *InventoryRepository) Delete(ctx context.Context, items []inventoryEntity.InventorySourceItem) (int64, error) {
	var deleted int64
	for _, item := range items {
		res := r.db.WithContext(ctx).
			Where("source_code = ? AND sku = ?", item.SourceCode, item.SKU).
			Delete(&inventoryEntity.InventorySourceItem{})
		if res.Error != nil {
			return deleted, res.Error
		}
		deleted += res.RowsAffected
	}
	return deleted, nil
}

// List returns one page of source items matching criteria plus the total match count.
// criteria must already be validated and normalized.
func (r *InventoryRepository) List(ctx context.Context, criteria SearchCriteria) ([]inventoryEntity.InventorySourceItem, int64, error) {
	var total int64
	if err := criteria.apply(r.db.WithContext(ctx).Model(&inventoryEntity.InventorySourceItem{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []inventoryEntity.InventorySourceItem{}
	q := criteria.apply(r.db.WithContext(ctx).Model(&inventoryEntity.InventorySourceItem{}))
	for _, s := range criteria.SortOrders {
		q = q.Order(sourceItemFields[s.Field] + " " + s.Direction)
	}
	err := q.Order("source_item_id").
		Limit(criteria.PageSize).
		Offset((criteria.CurrentPage - 1) * criteria.PageSize).
		Find(&items).Error
	return items, total, err
}
