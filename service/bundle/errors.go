package bundle

import (
	"errors"
	"fmt"
)

// ErrAlreadyLinked is returned when a child is added twice to one option.
var ErrAlreadyLinked = errors.New("product is already linked to this option")

// NotAChildError means the rule cannot run for SKU against the bundle.
type NotAChildError struct {
	BundleSKU string
	SKU       string
}

func (e *NotAChildError) Error() string {
	return fmt.Sprintf("product %q is not a child of bundle %q", e.SKU, e.BundleSKU)
}

// RejectedAssignmentError is the ship-together rule refusing SourceCode for SKU.
type RejectedAssignmentError struct {
	SourceCode string
	SKU        string
	BundleSKU  string
}

func (e *RejectedAssignmentError) Error() string {
	return fmt.Sprintf("Not able to assign %q to product %q", e.SourceCode, e.SKU)
}
