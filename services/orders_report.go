package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
)

// OrdersReportRow is one order line in the tabular orders report.
type OrdersReportRow struct {
	Number     string
	ClientName string
	Material   string
	Dimensions string
	Quantity   int
	Value      float64
	Status     string
	Date       string
}

// OrdersReportData holds everything the orders report PDF needs.
type OrdersReportData struct {
	GeneratedDate string
	Rows          []OrdersReportRow
	TotalValue    float64
	TotalOrders   int
}

// BuildOrdersReport collects every order, resolves client names and
// aggregates the grand total.
func BuildOrdersReport(app *pocketbase.PocketBase, generatedAt time.Time) (*OrdersReportData, error) {
	records, err := app.FindRecordsByFilter("orders", "id != ''", "-created", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	data := &OrdersReportData{
		GeneratedDate: FormatDateBR(generatedAt),
		TotalOrders:   len(records),
	}

	for _, r := range records {
		clientName := ""
		if client, err := app.FindRecordById("clients", r.GetString("client")); err == nil {
			clientName = client.GetString("name")
		}

		value, _ := strconv.ParseFloat(r.GetString("value"), 64)

		data.Rows = append(data.Rows, OrdersReportRow{
			Number:     r.GetString("order_number"),
			ClientName: clientName,
			Material:   r.GetString("material"),
			Dimensions: fmt.Sprintf("%s x %s mm", formatDimension(r.GetFloat("width")), formatDimension(r.GetFloat("length"))),
			Quantity:   r.GetInt("quantity"),
			Value:      value,
			Status:     r.GetString("status"),
			Date:       FormatDateBR(r.GetDateTime("created").Time()),
		})
		data.TotalValue += value
	}

	return data, nil
}
