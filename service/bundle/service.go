package bundle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bundle-inventory.GO/core/logger"
	"bundle-inventory.GO/core/metrics"
	catalogEntity "bundle-inventory.GO/model/entity/catalog"
	catalogRepo "bundle-inventory.GO/model/repository/catalog"
	inventoryRepo "bundle-inventory.GO/model/repository/inventory"
	"bundle-inventory.GO/service"
)

// LinkInput describes a child to link into a bundle option.
type LinkInput struct {
	SKU               string
	Qty               float64
	Price             float64
	PriceType         uint8
	Position          uint
	IsDefault         bool
	CanChangeQuantity bool
}

type Service struct {
	db       *gorm.DB
	products *catalogRepo.ProductRepository
	items    *inventoryRepo.InventoryRepository
	cache    StructureCache
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewService(db *gorm.DB, cache StructureCache, m *metrics.Metrics, log *zap.Logger) *Service {
	if cache == nil {
		cache = noCache{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:       db,
		products: catalogRepo.NewProductRepository(db),
		items:    inventoryRepo.NewInventoryRepository(db),
		cache:    cache,
		metrics:  m,
		log:      log,
	}
}

// FetchBundleProduct returns the bundle with its options, or *service.NotFoundError
// when sku is unknown or not a bundle.
func (s *Service) FetchBundleProduct(ctx context.Context, sku string) (*Product, error) {
	if p, ok := s.cache.Get(ctx, sku); ok {
		return p, nil
	}
	p, err := loadBySKU(ctx, s.products, sku)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, p)
	return p, nil
}

// AddChild links an existing non-bundle product into an option of bundleSKU
// and returns the new selection id.
func (s *Service) AddChild(ctx context.Context, bundleSKU string, optionID uint, in LinkInput) (uint, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	if in.SKU == "" {
		return 0, service.InvalidInputf("linked product sku is required")
	}
	if in.Qty < 0 {
		return 0, service.InvalidInputf("qty must not be negative")
	}
	if in.Qty == 0 {
		in.Qty = 1
	}

	var selectionID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.products.WithTx(tx)
		parent, err := s.resolveOption(ctx, repo, bundleSKU, optionID)
		if err != nil {
			return err
		}
		child, err := repo.GetBySKU(ctx, in.SKU)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &service.NotFoundError{Entity: "product", Key: in.SKU}
		}
		if err != nil {
			return err
		}
		if child.IsBundle() {
			return service.InvalidInputf("bundle product %q cannot be a bundle child", in.SKU)
		}
		exists, err := repo.SelectionExists(ctx, optionID, child.EntityID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyLinked
		}

		sel := &catalogEntity.BundleSelection{
			OptionID:              optionID,
			ParentProductID:       parent.EntityID,
			ProductID:             child.EntityID,
			Position:              in.Position,
			IsDefault:             in.IsDefault,
			SelectionPriceType:    in.PriceType,
			SelectionPriceValue:   in.Price,
			SelectionQty:          in.Qty,
			SelectionCanChangeQty: in.CanChangeQuantity,
		}
		if err := repo.AddSelection(ctx, sel); err != nil {
			return fmt.Errorf("link %s to %s: %w", in.SKU, bundleSKU, err)
		}
		selectionID = sel.SelectionID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx, bundleSKU)
	logger.FromContext(ctx, s.log).Info("bundle child linked",
		zap.String("bundle_sku", bundleSKU),
		zap.Uint("option_id", optionID),
		zap.String("sku", in.SKU),
		zap.Uint("selection_id", selectionID),
	)
	return selectionID, nil
}

// RemoveChild unlinks childSKU from an option of bundleSKU.
func (s *Service) RemoveChild(ctx context.Context, bundleSKU string, optionID uint, childSKU string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.products.WithTx(tx)
		if _, err := s.resolveOption(ctx, repo, bundleSKU, optionID); err != nil {
			return err
		}
		child, err := repo.GetBySKU(ctx, childSKU)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &service.NotFoundError{Entity: "product", Key: childSKU}
		}
		if err != nil {
			return err
		}
		n, err := repo.RemoveSelection(ctx, optionID, child.EntityID)
		if err != nil {
			return err
		}
		if n == 0 {
			return &NotAChildError{BundleSKU: bundleSKU, SKU: childSKU}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, bundleSKU)
	logger.FromContext(ctx, s.log).Info("bundle child unlinked",
		zap.String("bundle_sku", bundleSKU),
		zap.Uint("option_id", optionID),
		zap.String("sku", childSKU),
	)
	return nil
}

// CheckAssignment runs the rule for childSKU against committed state without
// writing anything.
func (s *Service) CheckAssignment(ctx context.Context, bundleSKU, childSKU string, sourceCodes []string) error {
	if len(sourceCodes) == 0 {
		return service.InvalidInputf("at least one source code is required")
	}
	b, err := s.FetchBundleProduct(ctx, bundleSKU)
	if err != nil {
		return err
	}
	current, err := s.items.AssignmentsBySKUs(ctx, b.ChildSKUs())
	if err != nil {
		return fmt.Errorf("load assignments of %s: %w", bundleSKU, err)
	}
	err = ValidateAssignment(b, childSKU, MergeCodes(current[childSKU], sourceCodes), current)
	s.observe(ctx, b, childSKU, err)
	return err
}

// ValidateSourceItems checks the requested codes of every SKU against each
// bundle containing it, reading through tx. Parent bundle rows are locked
// until tx ends. Siblings are seen with their committed codes plus the codes
// requested for them in the same call, so a whole bundle can move to a new
// source at once.
func (s *Service) ValidateSourceItems(ctx context.Context, tx *gorm.DB, skus []string, requested map[string][]string) error {
	products := s.products.WithTx(tx)
	items := s.items.WithTx(tx)
	loaded := make(map[uint]*Product)

	for _, sku := range skus {
		parents, err := products.ParentBundles(ctx, sku, true)
		if err != nil {
			return fmt.Errorf("load parent bundles of %s: %w", sku, err)
		}
		for i := range parents {
			b, ok := loaded[parents[i].EntityID]
			if !ok {
				if b, err = load(ctx, products, &parents[i]); err != nil {
					return err
				}
				loaded[b.ID] = b
			}

			current, err := items.AssignmentsBySKUs(ctx, b.ChildSKUs())
			if err != nil {
				return fmt.Errorf("load assignments of %s: %w", b.SKU, err)
			}
			view := make(map[string][]string, len(current))
			for child, codes := range current {
				if child == sku {
					view[child] = codes
					continue
				}
				view[child] = MergeCodes(codes, requested[child])
			}

			err = ValidateAssignment(b, sku, MergeCodes(current[sku], requested[sku]), view)
			s.observe(ctx, b, sku, err)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) resolveOption(ctx context.Context, repo *catalogRepo.ProductRepository, bundleSKU string, optionID uint) (*catalogEntity.Product, error) {
	parent, err := repo.GetBySKU(ctx, bundleSKU)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !parent.IsBundle()) {
		return nil, &service.NotFoundError{Entity: "bundle product", Key: bundleSKU}
	}
	if err != nil {
		return nil, err
	}
	if _, err := repo.GetOption(ctx, parent.EntityID, optionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &service.NotFoundError{Entity: "bundle option", Key: strconv.FormatUint(uint64(optionID), 10)}
		}
		return nil, err
	}
	return parent, nil
}

func (s *Service) observe(ctx context.Context, b *Product, sku string, err error) {
	var rejected *RejectedAssignmentError
	switch {
	case err == nil:
		s.metrics.ObserveValidation(b.ShipmentType.String(), metrics.ResultAllowed)
	case errors.As(err, &rejected):
		s.metrics.ObserveValidation(b.ShipmentType.String(), metrics.ResultRejected)
		logger.FromContext(ctx, s.log).Info("source assignment rejected",
			zap.String("bundle_sku", b.SKU),
			zap.String("sku", sku),
			zap.String("source_code", rejected.SourceCode),
		)
	default:
		s.metrics.ObserveValidation(b.ShipmentType.String(), metrics.ResultError)
	}
}
