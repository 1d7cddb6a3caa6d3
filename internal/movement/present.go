package movement

import (
	"fmt"
	"strings"

	"github.com/stocklens/stocklens/internal/shared"
)

// Display phrases follow the export's locale, kept in one block so the
// wording is auditable.
const (
	phraseAllProducts        = "همه کالاها"
	phraseAllWarehouses      = "همه انبارها"
	phraseSelectedProducts   = "%d کالای انتخاب‌شده"
	phraseSelectedWarehouses = "%d انبار انتخاب‌شده"
	phraseIn                 = " در "

	// warehouseDisplayPrefix is stripped when exactly one warehouse is shown.
	warehouseDisplayPrefix = "انبار "
)

// Description is the human-readable summary of one aggregation run.
type Description struct {
	Title string     `json:"title"`
	Items []LineItem `json:"items"`
}

// LineItem pairs an applied product name with its resolved code.
type LineItem struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Describe composes the summary label and itemized product listing from the
// applied filters and the product code map. It is a pure function of its
// inputs and total on all branches; a missing code falls back to a marker.
func Describe(applied AppliedFilters, codes map[string]string) Description {
	items := make([]LineItem, 0, len(applied.Products))
	for _, name := range applied.Products {
		code, ok := codes[name]
		if !ok || code == "" {
			code = shared.MsgCodeUnavailable
		}
		items = append(items, LineItem{Name: name, Code: code})
	}

	return Description{
		Title: productClause(applied.Products) + phraseIn + warehouseClause(applied.Warehouses),
		Items: items,
	}
}

func productClause(products []string) string {
	switch len(products) {
	case 0:
		return phraseAllProducts
	case 1:
		return products[0]
	default:
		return fmt.Sprintf(phraseSelectedProducts, len(products))
	}
}

func warehouseClause(warehouses []string) string {
	switch len(warehouses) {
	case 0:
		return phraseAllWarehouses
	case 1:
		return strings.TrimPrefix(warehouses[0], warehouseDisplayPrefix)
	default:
		return fmt.Sprintf(phraseSelectedWarehouses, len(warehouses))
	}
}
