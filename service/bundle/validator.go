package bundle

// ValidateAssignment decides whether targetSKU may hold the requested source
// codes as a child of b. current holds the committed source codes of the
// bundle's children; requested is the target's full wanted set (its current
// codes plus the new ones).
//
// It returns nil when allowed, *NotAChildError when targetSKU is not linked to
// b, and *RejectedAssignmentError for the first newly requested code, in
// request order, that some sibling does not hold.
func ValidateAssignment(b *Product, targetSKU string, requested []string, current map[string][]string) error {
	if !b.HasChild(targetSKU) {
		return &NotAChildError{BundleSKU: b.SKU, SKU: targetSKU}
	}
	if b.ShipmentType == ShipSeparately {
		return nil
	}

	siblings := Siblings(b, targetSKU)
	if len(siblings) == 0 {
		return nil
	}

	assigned := toSet(current[targetSKU])
	siblingSets := make([]map[string]struct{}, len(siblings))
	for i, sku := range siblings {
		siblingSets[i] = toSet(current[sku])
	}

	for _, code := range requested {
		if _, ok := assigned[code]; ok {
			continue
		}
		for _, set := range siblingSets {
			if _, ok := set[code]; !ok {
				return &RejectedAssignmentError{SourceCode: code, SKU: targetSKU, BundleSKU: b.SKU}
			}
		}
	}
	return nil
}

// Siblings returns the child SKUs of b other than sku, deduplicated.
func Siblings(b *Product, sku string) []string {
	var out []string
	for _, child := range b.ChildSKUs() {
		if child != sku {
			out = append(out, child)
		}
	}
	return out
}

// MergeCodes appends to base the codes it does not contain yet, keeping order.
func MergeCodes(base, extra []string) []string {
	seen := toSet(base)
	out := append([]string(nil), base...)
	for _, c := range extra {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func toSet(codes []string) map[string]struct{} {
	s := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}
