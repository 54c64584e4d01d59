package services_test

import (
	"testing"

	"gblcortedobra/services"
	"gblcortedobra/testhelpers"
)

func TestLoadRateTable(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedDefaults(t, app)

	rates, err := services.LoadRateTable(app)
	if err != nil {
		t.Fatalf("LoadRateTable failed: %v", err)
	}

	expected := map[string]float64{
		"Aço Carbono":     25.00,
		"Aço Galvanizado": 32.00,
		"Aço Inox":        85.00,
		"Alumínio":        45.00,
		"Ferro":           18.00,
	}

	if len(rates) != len(expected) {
		t.Fatalf("got %d rates, want %d", len(rates), len(expected))
	}
	for name, price := range expected {
		rate, ok := rates[name]
		if !ok {
			t.Errorf("missing material %q", name)
			continue
		}
		if rate.UnitPrice != price {
			t.Errorf("%s: unit price = %v, want %v", name, rate.UnitPrice, price)
		}
	}
}

func TestLoadRateTable_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rates, err := services.LoadRateTable(app)
	if err != nil {
		t.Fatalf("LoadRateTable failed: %v", err)
	}
	if len(rates) != 0 {
		t.Errorf("expected empty rate table, got %d entries", len(rates))
	}
}
