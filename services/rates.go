package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// LoadRateTable reads the material_rates collection into a RateTable.
func LoadRateTable(app *pocketbase.PocketBase) (RateTable, error) {
	records, err := app.FindAllRecords("material_rates")
	if err != nil {
		return nil, fmt.Errorf("load material rates: %w", err)
	}

	rates := make(RateTable, len(records))
	for _, r := range records {
		name := r.GetString("name")
		rates[name] = MaterialRate{
			Name:      name,
			UnitPrice: r.GetFloat("unit_price"),
		}
	}
	return rates, nil
}
