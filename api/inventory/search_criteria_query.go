package inventory

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	inventoryRepo "bundle-inventory.GO/model/repository/inventory"
	"bundle-inventory.GO/service"
)

const criteriaParam = "searchCriteria"

// ParseSearchCriteria decodes Magento style bracket query parameters such as
// searchCriteria[filter_groups][0][filters][0][field]=sku.
func ParseSearchCriteria(values url.Values) (inventoryRepo.SearchCriteria, error) {
	var criteria inventoryRepo.SearchCriteria
	root := make(map[string]interface{})
	for key, vals := range values {
		if !strings.HasPrefix(key, criteriaParam) || len(vals) == 0 {
			continue
		}
		path, err := splitBracketKey(strings.TrimPrefix(key, criteriaParam))
		if err != nil {
			return criteria, service.InvalidInputf("%s: %s", key, err.Error())
		}
		if len(path) == 0 {
			continue
		}
		if err := setPath(root, path, vals[0]); err != nil {
			return criteria, service.InvalidInputf("%s: %s", key, err.Error())
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &criteria,
	})
	if err != nil {
		return criteria, err
	}
	if err := decoder.Decode(listify(root)); err != nil {
		return criteria, service.InvalidInputf("searchCriteria: %s", err.Error())
	}
	return criteria, nil
}

// splitBracketKey turns "[a][0][b]" into [a 0 b].
func splitBracketKey(s string) ([]string, error) {
	var parts []string
	for len(s) > 0 {
		if s[0] != '[' {
			return nil, fmt.Errorf("malformed key")
		}
		end := strings.IndexByte(s, ']')
		if end < 1 {
			return nil, fmt.Errorf("malformed key")
		}
		parts = append(parts, s[1:end])
		s = s[end+1:]
	}
	return parts, nil
}

func setPath(m map[string]interface{}, path []string, value string) error {
	for _, p := range path[:len(path)-1] {
		switch next := m[p].(type) {
		case map[string]interface{}:
			m = next
		case nil:
			child := make(map[string]interface{})
			m[p] = child
			m = child
		default:
			return fmt.Errorf("conflicting key %q", p)
		}
	}
	last := path[len(path)-1]
	if _, exists := m[last].(map[string]interface{}); exists {
		return fmt.Errorf("conflicting key %q", last)
	}
	m[last] = value
	return nil
}

// listify converts maps keyed only by indexes into slices, ordered by index.
func listify(v interface{}) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return v
	}
	indexes := make([]int, 0, len(m))
	byIndex := make(map[int]string, len(m))
	for k, child := range m {
		m[k] = listify(child)
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			indexes = nil
			byIndex = nil
		} else if byIndex != nil {
			indexes = append(indexes, i)
			byIndex[i] = k
		}
	}
	if len(m) == 0 || byIndex == nil || len(indexes) != len(m) {
		return m
	}
	sort.Ints(indexes)
	list := make([]interface{}, 0, len(indexes))
	for _, i := range indexes {
		list = append(list, m[byIndex[i]])
	}
	return list
}
