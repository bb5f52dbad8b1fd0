// Package inventory saves, deletes and lists MSI source items, running every
// save through the bundle source assignment rule.
package inventory

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bundle-inventory.GO/core/logger"
	"bundle-inventory.GO/core/metrics"
	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
	inventoryRepo "bundle-inventory.GO/model/repository/inventory"
	"bundle-inventory.GO/service"
)

const upsertBatchSize = 500

// AssignmentValidator checks requested source codes per SKU inside tx.
type AssignmentValidator interface {
	ValidateSourceItems(ctx context.Context, tx *gorm.DB, skus []string, requested map[string][]string) error
}

// SearchResult mirrors the Magento source item search response.
type SearchResult struct {
	Items          []inventoryEntity.InventorySourceItem `json:"items"`
	SearchCriteria inventoryRepo.SearchCriteria          `json:"search_criteria"`
	TotalCount     int64                                 `json:"total_count"`
}

type Service struct {
	db        *gorm.DB
	items     *inventoryRepo.InventoryRepository
	sources   *inventoryRepo.SourceRepository
	validator AssignmentValidator
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewService(db *gorm.DB, validator AssignmentValidator, m *metrics.Metrics, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:        db,
		items:     inventoryRepo.NewInventoryRepository(db),
		sources:   inventoryRepo.NewSourceRepository(db),
		validator: validator,
		metrics:   m,
		log:       log,
	}
}

// SaveSourceItems validates and upserts items in one transaction. Either every
// item is written or none is.
func (s *Service) SaveSourceItems(ctx context.Context, items []inventoryEntity.InventorySourceItem) error {
	log := logger.FromContext(ctx, s.log)
	if err := validateItems(items); err != nil {
		return err
	}
	if err := s.checkSources(ctx, items); err != nil {
		return err
	}

	skus, requested := groupBySKU(items)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.validator != nil {
			if err := s.validator.ValidateSourceItems(ctx, tx, skus, requested); err != nil {
				return err
			}
		}
		if err := s.items.WithTx(tx).Upsert(ctx, items, upsertBatchSize); err != nil {
			return fmt.Errorf("source item upsert: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Info("source items not saved", zap.Strings("skus", skus), zap.Error(err))
		return err
	}

	s.metrics.AddSaved(len(items))
	log.Info("source items saved", zap.Int("count", len(items)), zap.Strings("skus", skus))
	return nil
}

// DeleteSourceItems removes items by (source_code, sku). Unknown pairs are ignored.
func (s *Service) DeleteSourceItems(ctx context.Context, items []inventoryEntity.InventorySourceItem) error {
	if len(items) == 0 {
		return service.InvalidInputf("source items list is empty")
	}
	for i, item := range items {
		if item.SourceCode == "" || item.SKU == "" {
			return service.InvalidInputf("item %d: source_code and sku are required", i)
		}
	}

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.items.WithTx(tx).Delete(ctx, items)
		deleted = n
		return err
	})
	if err != nil {
		return fmt.Errorf("source item delete: %w", err)
	}
	s.metrics.AddDeleted(deleted)
	logger.FromContext(ctx, s.log).Info("source items deleted", zap.Int64("count", deleted))
	return nil
}

// GetList returns one page of source items matching criteria.
func (s *Service) GetList(ctx context.Context, criteria inventoryRepo.SearchCriteria) (*SearchResult, error) {
	if err := criteria.Normalize(); err != nil {
		return nil, service.InvalidInputf("%s", err.Error())
	}
	items, total, err := s.items.List(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("source item list: %w", err)
	}
	return &SearchResult{Items: items, SearchCriteria: criteria, TotalCount: total}, nil
}

// FetchSourceAssignments returns the source codes assigned to sku.
func (s *Service) FetchSourceAssignments(ctx context.Context, sku string) ([]string, error) {
	assignments, err := s.items.AssignmentsBySKUs(ctx, []string{sku})
	if err != nil {
		return nil, err
	}
	return assignments[sku], nil
}

// GetBySKU returns every source item of sku.
func (s *Service) GetBySKU(ctx context.Context, sku string) ([]inventoryEntity.InventorySourceItem, error) {
	return s.items.GetAllBySKU(ctx, sku)
}

func (s *Service) checkSources(ctx context.Context, items []inventoryEntity.InventorySourceItem) error {
	codes := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		if !seen[item.SourceCode] {
			seen[item.SourceCode] = true
			codes = append(codes, item.SourceCode)
		}
	}
	missing, err := s.sources.MissingCodes(ctx, codes)
	if err != nil {
		return fmt.Errorf("source lookup: %w", err)
	}
	if len(missing) > 0 {
		return &SourceNotFoundError{SourceCode: missing[0]}
	}
	return nil
}

func validateItems(items []inventoryEntity.InventorySourceItem) error {
	if len(items) == 0 {
		return service.InvalidInputf("source items list is empty")
	}
	seen := make(map[[2]string]bool, len(items))
	for i, item := range items {
		if item.SourceCode == "" {
			return service.InvalidInputf("item %d: source_code is required", i)
		}
		if item.SKU == "" {
			return service.InvalidInputf("item %d: sku is required", i)
		}
		if item.Quantity.IsNegative() {
			return service.InvalidInputf("item %d: quantity must not be negative", i)
		}
		if item.Status != inventoryEntity.StatusInStock && item.Status != inventoryEntity.StatusOutOfStock {
			return service.InvalidInputf("item %d: status must be 0 or 1", i)
		}
		key := [2]string{item.SourceCode, item.SKU}
		if seen[key] {
			return service.InvalidInputf("duplicate source item %s/%s", item.SourceCode, item.SKU)
		}
		seen[key] = true
	}
	return nil
}

// groupBySKU returns the distinct SKUs in request order and their codes.
func groupBySKU(items []inventoryEntity.InventorySourceItem) ([]string, map[string][]string) {
	var skus []string
	requested := make(map[string][]string)
	for _, item := range items {
		if _, ok := requested[item.SKU]; !ok {
			skus = append(skus, item.SKU)
		}
		requested[item.SKU] = append(requested[item.SKU], item.SourceCode)
	}
	return skus, requested
}
