package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
)

var requiredColumns = []string{"source_code", "sku"}

// ParseCSV reads source items from a CSV with a header row. Columns
// source_code and sku are required; quantity defaults to 0 and status to 1.
func ParseCSV(r io.Reader) ([]inventoryEntity.InventorySourceItem, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var items []inventoryEntity.InventorySourceItem
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		item := inventoryEntity.InventorySourceItem{
			SourceCode: cell(row, colIndex, "source_code"),
			SKU:        cell(row, colIndex, "sku"),
			Status:     inventoryEntity.StatusInStock,
		}
		if item.SourceCode == "" && item.SKU == "" {
			continue
		}
		if v := cell(row, colIndex, "quantity"); v != "" {
			q, err := decimal.NewFromString(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid quantity %q", line, v)
			}
			item.Quantity = q
		}
		if v := cell(row, colIndex, "status"); v != "" {
			st, err := strconv.ParseUint(v, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid status %q", line, v)
			}
			item.Status = uint8(st)
		}
		items = append(items, item)
	}
	return items, nil
}

func cell(row []string, colIndex map[string]int, col string) string {
	ci, ok := colIndex[col]
	if !ok || ci >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[ci])
}
