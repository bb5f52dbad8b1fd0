package inventory

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 1000
)

// sourceItemFields maps searchable fields to columns.
var sourceItemFields = map[string]string{
	"source_item_id": "source_item_id",
	"source_code":    "source_code",
	"sku":            "sku",
	"quantity":       "quantity",
	"status":         "status",
}

var conditionOperators = map[string]string{
	"eq":   "=",
	"neq":  "<>",
	"gt":   ">",
	"gteq": ">=",
	"lt":   "<",
	"lteq": "<=",
	"like": "LIKE",
	"in":   "IN",
	"nin":  "NOT IN",
}

// Filter is a single field condition. An empty ConditionType means eq.
type Filter struct {
	Field         string `mapstructure:"field" json:"field"`
	Value         string `mapstructure:"value" json:"value"`
	ConditionType string `mapstructure:"condition_type" json:"condition_type,omitempty"`
}

// FilterGroup filters are OR-ed; groups are AND-ed.
type FilterGroup struct {
	Filters []Filter `mapstructure:"filters" json:"filters"`
}

type SortOrder struct {
	Field     string `mapstructure:"field" json:"field"`
	Direction string `mapstructure:"direction" json:"direction"`
}

// SearchCriteria follows the Magento web API searchCriteria shape.
type SearchCriteria struct {
	FilterGroups []FilterGroup `mapstructure:"filter_groups" json:"filter_groups"`
	SortOrders   []SortOrder   `mapstructure:"sort_orders" json:"sort_orders,omitempty"`
	PageSize     int           `mapstructure:"page_size" json:"page_size"`
	CurrentPage  int           `mapstructure:"current_page" json:"current_page"`
}

// Normalize validates fields and conditions and fills paging defaults.
func (c *SearchCriteria) Normalize() error {
	for gi := range c.FilterGroups {
		for fi := range c.FilterGroups[gi].Filters {
			f := &c.FilterGroups[gi].Filters[fi]
			if _, ok := sourceItemFields[f.Field]; !ok {
				return fmt.Errorf("unknown filter field %q", f.Field)
			}
			f.ConditionType = strings.ToLower(f.ConditionType)
			if f.ConditionType == "" {
				f.ConditionType = "eq"
			}
			if _, ok := conditionOperators[f.ConditionType]; !ok {
				return fmt.Errorf("unsupported condition_type %q", f.ConditionType)
			}
		}
	}
	for i := range c.SortOrders {
		s := &c.SortOrders[i]
		if _, ok := sourceItemFields[s.Field]; !ok {
			return fmt.Errorf("unknown sort field %q", s.Field)
		}
		s.Direction = strings.ToUpper(s.Direction)
		if s.Direction == "" {
			s.Direction = "ASC"
		}
		if s.Direction != "ASC" && s.Direction != "DESC" {
			return fmt.Errorf("unsupported sort direction %q", s.Direction)
		}
	}
	if c.PageSize < 0 || c.CurrentPage < 0 {
		return fmt.Errorf("page_size and current_page must not be negative")
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}
	if c.CurrentPage == 0 {
		c.CurrentPage = 1
	}
	return nil
}

func (c SearchCriteria) apply(tx *gorm.DB) *gorm.DB {
	for _, group := range c.FilterGroups {
		parts := make([]string, 0, len(group.Filters))
		args := make([]interface{}, 0, len(group.Filters))
		for _, f := range group.Filters {
			column := sourceItemFields[f.Field]
			op := conditionOperators[f.ConditionType]
			parts = append(parts, column+" "+op+" ?")
			if op == "IN" || op == "NOT IN" {
				args = append(args, splitValues(f.Value))
			} else {
				args = append(args, f.Value)
			}
		}
		if len(parts) > 0 {
			tx = tx.Where("("+strings.Join(parts, " OR ")+")", args...)
		}
	}
	return tx
}

func splitValues(v string) []string {
	raw := strings.Split(v, ",")
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
