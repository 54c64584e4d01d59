// Package services provides pricing, formatting and document generation
// for the GBL order management backend.
package services

// MaterialRate is one entry of the material rate table: price per square
// meter of sheet for a given material.
type MaterialRate struct {
	Name      string  `json:"nome"`
	UnitPrice float64 `json:"preco"`
}

// RateTable maps material name to its rate. Loaded once per request from
// the material_rates collection; treated as immutable.
type RateTable map[string]MaterialRate

// ComputeOrderValue calculates the total value of an order from the sheet
// dimensions (millimeters), the piece count and the material rate table.
//
// area (m²) = width × length / 1_000_000
// total     = area × unit price × quantity
//
// A zero result is the partial-form state, not an error: any missing input
// or a material absent from the table yields 0. No rounding is applied
// here; callers format with FormatAmount or FormatBRL.
func ComputeOrderValue(materialName string, widthMm, lengthMm float64, quantity int, rates RateTable) float64 {
	if materialName == "" || widthMm <= 0 || lengthMm <= 0 || quantity <= 0 {
		return 0
	}

	rate, ok := rates[materialName]
	if !ok {
		return 0
	}

	area := (widthMm * lengthMm) / 1_000_000
	return area * rate.UnitPrice * float64(quantity)
}
