package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogEntity "bundle-inventory.GO/model/entity/catalog"
)

// SelectionRow is a bundle selection joined with its child SKU and type.
type SelectionRow struct {
	catalogEntity.BundleSelection `gorm:"embedded"`
	SKU                           string `gorm:"column:sku"`
	TypeID                        string `gorm:"column:type_id"`
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

// GetBySKU returns gorm.ErrRecordNotFound when no product has sku.
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*catalogEntity.Product, error) {
	var p catalogEntity.Product
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*catalogEntity.Product, error) {
	var p catalogEntity.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *catalogEntity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ParentBundles returns every bundle that links childSKU through any option.
// With lock set the parent rows are read FOR UPDATE, which serializes
// concurrent assignment changes touching the same bundle.
func (r *ProductRepository) ParentBundles(ctx context.Context, childSKU string, lock bool) ([]catalogEntity.Product, error) {
	sub := r.db.Session(&gorm.Session{NewDB: true}).
		Table("catalog_product_bundle_selection AS s").
		Select("s.parent_product_id").
		Joins("JOIN catalog_product_entity AS c ON c.entity_id = s.product_id").
		Where("c.sku = ?", childSKU)

	q := r.db.WithContext(ctx).
		Where("type_id = ?", catalogEntity.TypeBundle).
		Where("entity_id IN (?)", sub).
		Order("entity_id")
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var parents []catalogEntity.Product
	err := q.Find(&parents).Error
	return parents, err
}

// ListBundles returns bundle products, optionally restricted to one shipment type.
func (r *ProductRepository) ListBundles(ctx context.Context, shipmentType *uint8) ([]catalogEntity.Product, error) {
	q := r.db.WithContext(ctx).Where("type_id = ?", catalogEntity.TypeBundle)
	if shipmentType != nil {
		q = q.Where("shipment_type = ?", *shipmentType)
	}
	var bundles []catalogEntity.Product
	err := q.Order("entity_id").Find(&bundles).Error
	return bundles, err
}

func (r *ProductRepository) Options(ctx context.Context, parentID uint) ([]catalogEntity.BundleOption, error) {
	var options []catalogEntity.BundleOption
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("position, option_id").
		Find(&options).Error
	return options, err
}

// GetOption returns gorm.ErrRecordNotFound unless optionID belongs to parentID.
func (r *ProductRepository) GetOption(ctx context.Context, parentID, optionID uint) (*catalogEntity.BundleOption, error) {
	var option catalogEntity.BundleOption
	err := r.db.WithContext(ctx).
		Where("option_id = ? AND parent_id = ?", optionID, parentID).
		First(&option).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *ProductRepository) CreateOption(ctx context.Context, option *catalogEntity.BundleOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

// Selections returns all selections of a bundle with the linked child SKUs.
func (r *ProductRepository) Selections(ctx context.Context, parentID uint) ([]SelectionRow, error) {
	var rows []SelectionRow
	err := r.db.WithContext(ctx).
		Table("catalog_product_bundle_selection AS s").
		Select("s.*, c.sku AS sku, c.type_id AS type_id").
		Joins("JOIN catalog_product_entity AS c ON c.entity_id = s.product_id").
		Where("s.parent_product_id = ?", parentID).
		Order("s.option_id, s.position, s.selection_id").
		Scan(&rows).Error
	return rows, err
}

func (r *ProductRepository) SelectionExists(ctx context.Context, optionID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalogEntity.BundleSelection{}).
		Where("option_id = ? AND product_id = ?", optionID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProductRepository) AddSelection(ctx context.Context, sel *catalogEntity.BundleSelection) error {
	return r.db.WithContext(ctx).Create(sel).Error
}

// RemoveSelection deletes the link and reports how many rows were removed.
func (r *ProductRepository) RemoveSelection(ctx context.Context, optionID, productID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("option_id = ? AND product_id = ?", optionID, productID).
		Delete(&catalogEntity.BundleSelection{})
	return res.RowsAffected, res.Error
}
