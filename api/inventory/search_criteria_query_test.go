package inventory

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventoryRepo "bundle-inventory.GO/model/repository/inventory"
	"bundle-inventory.GO/service"
)

func TestParseSearchCriteria(t *testing.T) {
	q := url.Values{}
	q.Set("searchCriteria[filter_groups][0][filters][0][field]", "sku")
	q.Set("searchCriteria[filter_groups][0][filters][0][value]", "SKU-4")
	q.Set("searchCriteria[filter_groups][0][filters][0][condition_type]", "eq")
	q.Set("searchCriteria[filter_groups][1][filters][0][field]", "source_code")
	q.Set("searchCriteria[filter_groups][1][filters][0][value]", "eu-1")
	q.Set("searchCriteria[filter_groups][1][filters][1][field]", "source_code")
	q.Set("searchCriteria[filter_groups][1][filters][1][value]", "eu-2")
	q.Set("searchCriteria[sort_orders][0][field]", "quantity")
	q.Set("searchCriteria[sort_orders][0][direction]", "DESC")
	q.Set("searchCriteria[page_size]", "50")
	q.Set("searchCriteria[current_page]", "2")
	q.Set("other", "x")

	c, err := ParseSearchCriteria(q)
	require.NoError(t, err)
	assert.Equal(t, inventoryRepo.SearchCriteria{
		FilterGroups: []inventoryRepo.FilterGroup{
			{Filters: []inventoryRepo.Filter{{Field: "sku", Value: "SKU-4", ConditionType: "eq"}}},
			{Filters: []inventoryRepo.Filter{
				{Field: "source_code", Value: "eu-1"},
				{Field: "source_code", Value: "eu-2"},
			}},
		},
		SortOrders:  []inventoryRepo.SortOrder{{Field: "quantity", Direction: "DESC"}},
		PageSize:    50,
		CurrentPage: 2,
	}, c)
}

func TestParseSearchCriteria_Empty(t *testing.T) {
	c, err := ParseSearchCriteria(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, c.FilterGroups)
	assert.Zero(t, c.PageSize)
}

func TestParseSearchCriteria_Errors(t *testing.T) {
	for _, key := range []string{
		"searchCriteria[filter_groups",
		"searchCriteria]x[",
	} {
		_, err := ParseSearchCriteria(url.Values{key: {"1"}})
		assert.ErrorIs(t, err, service.ErrInvalidInput, key)
	}

	_, err := ParseSearchCriteria(url.Values{"searchCriteria[page_size]": {"many"}})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
