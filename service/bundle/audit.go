package bundle

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	catalogEntity "bundle-inventory.GO/model/entity/catalog"
)

// Violation is a child of a ship-together bundle holding a source that some
// siblings lack.
type Violation struct {
	BundleSKU  string   `json:"bundle_sku"`
	ChildSKU   string   `json:"child_sku"`
	SourceCode string   `json:"source_code"`
	MissingOn  []string `json:"missing_on"`
}

// Audit scans every ship-together bundle for inconsistent source assignments.
func (s *Service) Audit(ctx context.Context) ([]Violation, error) {
	start := time.Now()
	together := catalogEntity.ShipmentTogether
	bundles, err := s.products.ListBundles(ctx, &together)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}

	var violations []Violation
	for i := range bundles {
		b, err := load(ctx, s.products, &bundles[i])
		if err != nil {
			return nil, err
		}
		current, err := s.items.AssignmentsBySKUs(ctx, b.ChildSKUs())
		if err != nil {
			return nil, fmt.Errorf("load assignments of %s: %w", b.SKU, err)
		}
		violations = append(violations, FindViolations(b, current)...)
	}

	s.metrics.ObserveAudit(len(violations), time.Since(start).Seconds())
	s.log.Info("bundle source audit finished",
		zap.Int("bundles", len(bundles)),
		zap.Int("violations", len(violations)),
		zap.Duration("took", time.Since(start)),
	)
	return violations, nil
}

// FindViolations lists, per child and assigned source, the siblings missing
// that source. Only ship-together bundles can have violations.
func FindViolations(b *Product, current map[string][]string) []Violation {
	if b.ShipmentType != ShipTogether {
		return nil
	}
	children := b.ChildSKUs()
	sets := make(map[string]map[string]struct{}, len(children))
	for _, c := range children {
		sets[c] = toSet(current[c])
	}

	var out []Violation
	for _, child := range children {
		for _, code := range current[child] {
			var missing []string
			for _, sibling := range children {
				if sibling == child {
					continue
				}
				if _, ok := sets[sibling][code]; !ok {
					missing = append(missing, sibling)
				}
			}
			if len(missing) > 0 {
				out = append(out, Violation{BundleSKU: b.SKU, ChildSKU: child, SourceCode: code, MissingOn: missing})
			}
		}
	}
	return out
}
