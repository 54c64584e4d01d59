package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pocketbase/pocketbase"
)

// LowStockThreshold marks products that need restocking on the dashboard.
const LowStockThreshold = 10

// MonthlySales is one aggregated point of the sales-by-month chart.
type MonthlySales struct {
	MonthYear   string  `json:"month_year"`
	Label       string  `json:"label"`
	TotalValue  float64 `json:"total_value"`
	TotalOrders int     `json:"total_orders"`
}

// SalesByMonth groups all orders by the month they were created and sums
// their values. Cancelled orders are included: the chart reports recorded
// volume, not revenue.
func SalesByMonth(app *pocketbase.PocketBase) ([]MonthlySales, error) {
	records, err := app.FindAllRecords("orders")
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	byMonth := make(map[string]*MonthlySales)
	for _, r := range records {
		created := r.GetDateTime("created").Time()
		key := created.Format("2006-01")

		entry, ok := byMonth[key]
		if !ok {
			entry = &MonthlySales{
				MonthYear: key,
				Label:     created.Format("Jan/06"),
			}
			byMonth[key] = entry
		}

		value, err := strconv.ParseFloat(r.GetString("value"), 64)
		if err == nil {
			entry.TotalValue += value
		}
		entry.TotalOrders++
	}

	result := make([]MonthlySales, 0, len(byMonth))
	for _, entry := range byMonth {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MonthYear < result[j].MonthYear
	})
	return result, nil
}

// LowStockProduct is one row of the restock warning list.
type LowStockProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
	Unit  string `json:"unit"`
}

// LowStockProducts returns the products at or below the restock threshold.
func LowStockProducts(app *pocketbase.PocketBase) ([]LowStockProduct, error) {
	records, err := app.FindRecordsByFilter(
		"products",
		"stock <= {:threshold}",
		"stock",
		0,
		0,
		map[string]any{"threshold": LowStockThreshold},
	)
	if err != nil {
		return nil, fmt.Errorf("load low stock products: %w", err)
	}

	result := make([]LowStockProduct, 0, len(records))
	for _, r := range records {
		result = append(result, LowStockProduct{
			ID:    r.Id,
			Name:  r.GetString("name"),
			SKU:   r.GetString("sku"),
			Stock: r.GetInt("stock"),
			Unit:  r.GetString("unit"),
		})
	}
	return result, nil
}
