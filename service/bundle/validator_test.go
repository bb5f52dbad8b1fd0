package bundle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle(shipment ShipmentType, children ...string) *Product {
	links := make([]Link, 0, len(children))
	for i, sku := range children {
		links = append(links, Link{SKU: sku, Qty: 1, Position: uint(i + 1)})
	}
	return &Product{
		ID:           1,
		SKU:          "bundle",
		ShipmentType: shipment,
		Options:      []Option{{ID: 10, Title: "Pack", Children: links}},
	}
}

func TestValidateAssignment_SeparatelyAlwaysAllowed(t *testing.T) {
	b := testBundle(ShipSeparately, "A", "B", "C")
	current := map[string][]string{"A": {}, "B": {"us-1"}, "C": {}}

	for _, codes := range [][]string{{"eu-1"}, {"eu-1", "eu-2"}, {"us-1", "eu-9"}} {
		assert.NoError(t, ValidateAssignment(b, "A", codes, current), "codes %v", codes)
	}
}

func TestValidateAssignment_TogetherRejectsWhenSiblingLacksSource(t *testing.T) {
	b := testBundle(ShipTogether, "A", "B")
	current := map[string][]string{"A": {}, "B": {"eu-2"}}

	err := ValidateAssignment(b, "A", []string{"eu-1"}, current)
	var rejected *RejectedAssignmentError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "eu-1", rejected.SourceCode)
	assert.Equal(t, "A", rejected.SKU)
	assert.Equal(t, `Not able to assign "eu-1" to product "A"`, err.Error())
}

func TestValidateAssignment_TogetherAllowedWhenSiblingHasSource(t *testing.T) {
	b := testBundle(ShipTogether, "A", "B")
	current := map[string][]string{"A": {}, "B": {"eu-1"}}

	assert.NoError(t, ValidateAssignment(b, "A", []string{"eu-1"}, current))
}

func TestValidateAssignment_AllSiblingsMustHoldSource(t *testing.T) {
	b := testBundle(ShipTogether, "A", "B", "C")
	current := map[string][]string{"A": {}, "B": {"eu-1"}, "C": {"eu-2"}}

	err := ValidateAssignment(b, "A", []string{"eu-1"}, current)
	var rejected *RejectedAssignmentError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "eu-1", rejected.SourceCode)
}

func TestValidateAssignment_AlreadyAssignedCodesNotRechecked(t *testing.T) {
	b := testBundle(ShipTogether, "A", "B")
	current := map[string][]string{"A": {"eu-1"}, "B": {}}

	assert.NoError(t, ValidateAssignment(b, "A", []string{"eu-1"}, current))
	assert.NoError(t, ValidateAssignment(b, "A", []string{"eu-1", "eu-1"}, current))
}

func TestValidateAssignment_SingleChildAlwaysAllowed(t *testing.T) {
	b := testBundle(ShipTogether, "A")
	assert.NoError(t, ValidateAssignment(b, "A", []string{"eu-1", "us-1"}, map[string][]string{}))
}

func TestValidateAssignment_FirstRejectedCodeInRequestOrder(t *testing.T) {
	b := testBundle(ShipTogether, "A", "B")
	current := map[string][]string{"A": {}, "B": {"eu-2"}}

	err := ValidateAssignment(b, "A", []string{"eu-2", "eu-3", "eu-1"}, current)
	var rejected *RejectedAssignmentError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "eu-3", rejected.SourceCode)
}

func TestValidateAssignment_NotAChild(t *testing.T) {
	for _, shipment := range []ShipmentType{ShipTogether, ShipSeparately} {
		b := testBundle(shipment, "A", "B")
		err := ValidateAssignment(b, "Z", []string{"eu-1"}, nil)
		var notChild *NotAChildError
		require.True(t, errors.As(err, &notChild), shipment.String())
		assert.Equal(t, "Z", notChild.SKU)
		assert.Equal(t, "bundle", notChild.BundleSKU)
	}
}

func TestValidateAssignment_DuplicateSiblingAcrossOptions(t *testing.T) {
	b := testBundle(ShipTogether, "A", "B")
	b.Options = append(b.Options, Option{ID: 11, Children: []Link{{SKU: "B"}, {SKU: "C"}}})
	current := map[string][]string{"A": {}, "B": {"eu-1"}, "C": {"eu-1"}}

	assert.Equal(t, []string{"B", "C"}, Siblings(b, "A"))
	assert.NoError(t, ValidateAssignment(b, "A", []string{"eu-1"}, current))
}

func TestMergeCodes(t *testing.T) {
	assert.Equal(t, []string{"eu-1", "eu-2", "us-1"}, MergeCodes([]string{"eu-1", "eu-2"}, []string{"eu-2", "us-1", "us-1"}))
	assert.Equal(t, []string{"eu-1"}, MergeCodes(nil, []string{"eu-1"}))
}

func TestFindViolations(t *testing.T) {
	b := testBundle(ShipTogether, "A", "B", "C")
	current := map[string][]string{"A": {"eu-1", "eu-2"}, "B": {"eu-2"}, "C": {"eu-2"}}

	got := FindViolations(b, current)
	require.Len(t, got, 1)
	assert.Equal(t, Violation{BundleSKU: "bundle", ChildSKU: "A", SourceCode: "eu-1", MissingOn: []string{"B", "C"}}, got[0])

	b.ShipmentType = ShipSeparately
	assert.Empty(t, FindViolations(b, current))
}

func TestShipmentTypeString(t *testing.T) {
	assert.Equal(t, "together", ShipTogether.String())
	assert.Equal(t, "separately", ShipSeparately.String())
	assert.Equal(t, "unknown", ShipmentType(7).String())
}
