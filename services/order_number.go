package services

import (
	"fmt"
	"strconv"

	"github.com/pocketbase/pocketbase"
)

// NextOrderNumber produces the next display code for an order, a
// zero-padded sequence like "0001" that continues from the highest
// number currently stored.
func NextOrderNumber(app *pocketbase.PocketBase) (string, error) {
	records, err := app.FindAllRecords("orders")
	if err != nil {
		return "", fmt.Errorf("scan existing orders: %w", err)
	}

	highest := 0
	for _, r := range records {
		n, err := strconv.Atoi(r.GetString("order_number"))
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%04d", highest+1), nil
}
